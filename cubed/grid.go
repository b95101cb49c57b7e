package cubed

import (
	"math"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/exp/constraints"
)

// A Grid is a dense three-dimensional array of cells.
//
// Index (x, y, z) corresponds to the world-aligned unit cell whose minimum
// corner is Origin + (x, y, z).
type Grid struct {
	Origin [3]int
	Size   [3]int

	cells []CellType
}

// NewGrid creates an empty grid with the given origin and dimensions.
func NewGrid(origin, size [3]int) *Grid {
	for _, s := range size {
		if s <= 0 {
			panic("grid dimensions must be positive")
		}
	}
	return &Grid{
		Origin: origin,
		Size:   size,
		cells:  make([]CellType, size[0]*size[1]*size[2]),
	}
}

// NewGridBounds creates an empty grid covering the bounding box, expanded to
// whole cells. Every axis gets at least one cell.
func NewGridBounds(min, max model3d.Coord3D) *Grid {
	minArr := min.Array()
	maxArr := max.Array()
	var origin, size [3]int
	for i := 0; i < 3; i++ {
		lo := int(math.Floor(minArr[i]))
		hi := int(math.Ceil(maxArr[i]))
		origin[i] = lo
		size[i] = essentials.MaxInt(hi-lo, 1)
	}
	return NewGrid(origin, size)
}

// NumCells gets the total number of cells.
func (g *Grid) NumCells() int {
	return len(g.cells)
}

// InBounds checks if an index lies within the grid.
func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < g.Size[0] && y < g.Size[1] && z < g.Size[2]
}

// At gets the cell at an index.
// Indices outside of the grid read as None.
func (g *Grid) At(x, y, z int) CellType {
	if !g.InBounds(x, y, z) {
		return None
	}
	return g.cells[g.index(x, y, z)]
}

// Set updates the cell at an index, which must be in bounds.
func (g *Grid) Set(x, y, z int, c CellType) {
	if !g.InBounds(x, y, z) {
		panic("grid index out of bounds")
	}
	g.cells[g.index(x, y, z)] = c
}

// World converts an index into world-aligned cell coordinates.
func (g *Grid) World(x, y, z int) [3]int {
	return [3]int{x + g.Origin[0], y + g.Origin[1], z + g.Origin[2]}
}

// Min gets the minimum world coordinate covered by the grid.
func (g *Grid) Min() model3d.Coord3D {
	return model3d.XYZ(float64(g.Origin[0]), float64(g.Origin[1]), float64(g.Origin[2]))
}

// Max gets the maximum world coordinate covered by the grid.
func (g *Grid) Max() model3d.Coord3D {
	return g.Min().Add(model3d.XYZ(float64(g.Size[0]), float64(g.Size[1]), float64(g.Size[2])))
}

// Iterate calls f for every cell in enumeration order: x outermost, then y,
// then z.
func (g *Grid) Iterate(f func(x, y, z int, c CellType)) {
	var i int
	for x := 0; x < g.Size[0]; x++ {
		for y := 0; y < g.Size[1]; y++ {
			for z := 0; z < g.Size[2]; z++ {
				f(x, y, z, g.cells[i])
				i++
			}
		}
	}
}

// Counts gets the number of cells of each type which occurs in the grid.
func (g *Grid) Counts() map[CellType]int {
	res := map[CellType]int{}
	for _, c := range g.cells {
		res[c]++
	}
	return res
}

// CountCategory gets the number of cells whose type is in a category.
func (g *Grid) CountCategory(category Category) int {
	var res int
	for _, c := range g.cells {
		if c.Category() == category {
			res++
		}
	}
	return res
}

// Clone creates a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		Origin: g.Origin,
		Size:   g.Size,
		cells:  append([]CellType{}, g.cells...),
	}
}

// Cells gets a copy of the flat cell array in enumeration order.
func (g *Grid) Cells() []CellType {
	return append([]CellType{}, g.cells...)
}

func (g *Grid) index(x, y, z int) int {
	return z + g.Size[2]*(y+g.Size[1]*x)
}

func clamp[T constraints.Integer](x, min, max T) T {
	if x < min {
		return min
	} else if x > max {
		return max
	}
	return x
}
