package cubed

import (
	"github.com/unixpickle/essentials"
	"go.uber.org/zap"
)

// A Refiner replaces cubes and empty cells along the surface of a grid with
// slopes and corners.
type Refiner struct {
	// Passes are run in order. Each pass sees the grid as it was when the
	// pass started.
	Passes []*RefinePass

	// Concurrency is the number of Goroutines to use.
	// If 0, GOMAXPROCS is used. If 1, passes run sequentially.
	Concurrency int

	Logger *zap.Logger
}

// NewAdditiveRefiner creates a Refiner which builds shapes into empty cells.
func NewAdditiveRefiner() *Refiner {
	return &Refiner{Passes: AdditivePasses}
}

// NewSubtractiveRefiner creates a Refiner which bevels solid cubes.
func NewSubtractiveRefiner() *Refiner {
	return &Refiner{Passes: SubtractivePasses}
}

// Refine runs every pass on the grid in place.
func (r *Refiner) Refine(g *Grid) {
	for _, pass := range r.Passes {
		changed := r.runPass(g, pass)
		if r.Logger != nil {
			r.Logger.Debug(
				"refine pass",
				zap.String("pass", pass.Name),
				zap.Int("changed", changed),
			)
		}
	}
}

// runPass classifies every cell against a snapshot of the grid taken before
// the pass, so the result does not depend on traversal order.
func (r *Refiner) runPass(g *Grid, pass *RefinePass) int {
	snapshot := g.Clone()
	changed := make([]int, g.Size[0])
	slab := func(x int) {
		for y := 0; y < g.Size[1]; y++ {
			for z := 0; z < g.Size[2]; z++ {
				if shape, ok := pass.Match(snapshot, x, y, z); ok {
					g.cells[g.index(x, y, z)] = shape
					changed[x]++
				}
			}
		}
	}
	if r.Concurrency == 1 {
		for x := 0; x < g.Size[0]; x++ {
			slab(x)
		}
	} else {
		essentials.ConcurrentMap(r.Concurrency, g.Size[0], slab)
	}
	var total int
	for _, c := range changed {
		total += c
	}
	return total
}
