package cubed

import (
	"math"
	"sync"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"go.uber.org/zap"
)

// ProbeEpsilon is how far probes are shifted away from cell centers and
// cell corners, so that they rarely land exactly on a vertex or edge.
const ProbeEpsilon = 1e-6

// A Rasterizer marks every grid cell that a triangle mesh passes through.
type Rasterizer struct {
	// Thick enables four probes per axis near the cell corners instead of a
	// single probe near the cell center.
	Thick bool

	// Concurrency is the number of Goroutines to use.
	// If 0, GOMAXPROCS is used.
	Concurrency int

	// Progress, if non-nil, is incremented once per candidate cell.
	Progress Progress

	// Logger, if non-nil, receives debug diagnostics.
	Logger *zap.Logger
}

// Rasterize creates a grid around the triangles and marks every cell that
// they intersect as SolidCube.
//
// There must be at least one triangle.
func (r *Rasterizer) Rasterize(tris []*model3d.Triangle) *Grid {
	if len(tris) == 0 {
		panic("cannot rasterize an empty mesh")
	}
	min, max := TrianglesBounds(tris)
	grid := NewGridBounds(min, max)
	r.RasterizeInto(grid, tris)
	return grid
}

// RasterizeInto marks intersected cells of an existing grid as SolidCube.
// Triangles outside of the grid are clipped.
func (r *Rasterizer) RasterizeInto(grid *Grid, tris []*model3d.Triangle) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ranges := make([]cellRange, len(tris))
	valid := make([]int, 0, len(tris))
	var total, degenerate int
	for i, t := range tris {
		if Degenerate(t) {
			degenerate++
			continue
		}
		cr := grid.candidateCells(t)
		if cr.Empty() {
			continue
		}
		ranges[i] = cr
		valid = append(valid, i)
		total += cr.NumCells()
	}
	if degenerate > 0 {
		logger.Debug("skipping degenerate triangles", zap.Int("count", degenerate))
	}
	logger.Debug(
		"rasterizing",
		zap.Int("triangles", len(valid)),
		zap.Int("candidate_cells", total),
		zap.Bool("thick", r.Thick),
	)
	if r.Progress != nil {
		r.Progress.Reset(total)
	}

	var lock sync.Mutex
	essentials.StatefulConcurrentMap(r.Concurrency, len(valid), func() func(int) {
		var probes []model3d.Segment
		var marked [][3]int
		return func(i int) {
			t := tris[valid[i]]
			cr := ranges[valid[i]]
			marked = marked[:0]
			for x := cr.Min[0]; x <= cr.Max[0]; x++ {
				for y := cr.Min[1]; y <= cr.Max[1]; y++ {
					for z := cr.Min[2]; z <= cr.Max[2]; z++ {
						probes = r.appendProbes(probes[:0], grid, x, y, z)
						for j := range probes {
							if probeOccupies(t, &probes[j]) {
								marked = append(marked, [3]int{x, y, z})
								break
							}
						}
						if r.Progress != nil {
							r.Progress.Increment()
						}
					}
				}
			}
			if len(marked) == 0 {
				return
			}
			lock.Lock()
			defer lock.Unlock()
			for _, idx := range marked {
				grid.Set(idx[0], idx[1], idx[2], SolidCube)
			}
		}
	})
}

// appendProbes adds the probe segments for the cell at an index.
// Each probe spans the cell along one axis.
func (r *Rasterizer) appendProbes(probes []model3d.Segment, g *Grid, x, y, z int) []model3d.Segment {
	world := g.World(x, y, z)
	min := [3]float64{float64(world[0]), float64(world[1]), float64(world[2])}

	var offsets [][2]float64
	if r.Thick {
		offsets = [][2]float64{
			{ProbeEpsilon, ProbeEpsilon},
			{ProbeEpsilon, 1 - ProbeEpsilon},
			{1 - ProbeEpsilon, ProbeEpsilon},
			{1 - ProbeEpsilon, 1 - ProbeEpsilon},
		}
	} else {
		offsets = [][2]float64{{0.5 + ProbeEpsilon, 0.5 + ProbeEpsilon}}
	}

	for axis := 0; axis < 3; axis++ {
		a1 := (axis + 1) % 3
		a2 := (axis + 2) % 3
		for _, off := range offsets {
			var start, end [3]float64
			start[axis] = min[axis]
			end[axis] = min[axis] + 1
			start[a1] = min[a1] + off[0]
			end[a1] = start[a1]
			start[a2] = min[a2] + off[1]
			end[a2] = start[a2]
			probes = append(probes, model3d.Segment{
				model3d.NewCoord3DArray(start),
				model3d.NewCoord3DArray(end),
			})
		}
	}
	return probes
}

// probeOccupies checks if a triangle crossing a probe makes the probe's cell
// occupied.
//
// A hit on the plane where the probe starts only counts if the probe enters
// the solid there, and a hit on the plane where it ends only counts if the
// probe leaves the solid. This way, a face lying on a cell boundary belongs
// to the cell on its inner side and never to the empty cell beside it.
// Triangles must follow the model3d convention of outward normals.
func probeOccupies(t *model3d.Triangle, probe *model3d.Segment) bool {
	hit, ok := IntersectSegment(t, probe)
	if !ok {
		return false
	}
	switch hit.Scale {
	case 0:
		return hit.Side == 1
	case 1:
		return hit.Side == -1
	}
	return true
}

// TrianglesBounds computes the bounding box of a non-empty triangle list.
func TrianglesBounds(tris []*model3d.Triangle) (min, max model3d.Coord3D) {
	min = tris[0][0]
	max = tris[0][0]
	for _, t := range tris {
		for _, p := range t {
			min = min.Min(p)
			max = max.Max(p)
		}
	}
	return
}

// A cellRange is an inclusive range of grid indices.
type cellRange struct {
	Min [3]int
	Max [3]int
}

func (c cellRange) Empty() bool {
	for i := 0; i < 3; i++ {
		if c.Max[i] < c.Min[i] {
			return true
		}
	}
	return false
}

func (c cellRange) NumCells() int {
	if c.Empty() {
		return 0
	}
	res := 1
	for i := 0; i < 3; i++ {
		res *= c.Max[i] - c.Min[i] + 1
	}
	return res
}

// candidateCells finds the cells whose closed range overlaps the bounding
// box of a triangle, clamped to the grid.
func (g *Grid) candidateCells(t *model3d.Triangle) cellRange {
	min := t.Min().Array()
	max := t.Max().Array()
	var res cellRange
	for i := 0; i < 3; i++ {
		lo := int(math.Ceil(min[i])) - 1 - g.Origin[i]
		hi := int(math.Floor(max[i])) - g.Origin[i]
		if hi < 0 || lo >= g.Size[i] {
			return cellRange{Min: [3]int{0, 0, 0}, Max: [3]int{-1, -1, -1}}
		}
		res.Min[i] = clamp(lo, 0, g.Size[i]-1)
		res.Max[i] = clamp(hi, 0, g.Size[i]-1)
	}
	return res
}
