package cubed

import "go.uber.org/zap"

// ClassifyOptions controls how empty cells are split into interior and
// exterior space.
type ClassifyOptions struct {
	// SeedBoundary starts the exterior search from every empty cell on the
	// faces of the grid rather than only from the eight corner cells.
	//
	// Corner seeding misses exterior pockets which are walled off from every
	// corner of the grid, and marks them Interior.
	SeedBoundary bool

	Logger *zap.Logger
}

// Classify marks every empty cell that cannot be reached from the outside of
// the grid as Interior.
//
// The search moves between face-adjacent None cells. Reached cells are left
// None, so that when Classify returns, the grid contains no Exterior cells.
func Classify(g *Grid, opts *ClassifyOptions) {
	if opts == nil {
		opts = &ClassifyOptions{}
	}

	var queue [][3]int
	enqueue := func(x, y, z int) {
		if g.InBounds(x, y, z) && g.At(x, y, z) == None {
			g.Set(x, y, z, Exterior)
			queue = append(queue, [3]int{x, y, z})
		}
	}

	if opts.SeedBoundary {
		g.iterateBoundary(enqueue)
	} else {
		for _, x := range [2]int{0, g.Size[0] - 1} {
			for _, y := range [2]int{0, g.Size[1] - 1} {
				for _, z := range [2]int{0, g.Size[2] - 1} {
					enqueue(x, y, z)
				}
			}
		}
	}
	seeds := len(queue)

	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		for _, d := range AllDirections {
			o := d.Offset()
			enqueue(cell[0]+o[0], cell[1]+o[1], cell[2]+o[2])
		}
	}

	var interior int
	for i, c := range g.cells {
		switch c {
		case Exterior:
			g.cells[i] = None
		case None:
			g.cells[i] = Interior
			interior++
		}
	}

	if opts.Logger != nil {
		opts.Logger.Debug(
			"classified cells",
			zap.Int("seeds", seeds),
			zap.Int("interior", interior),
		)
	}
}

// iterateBoundary calls f for every cell on a face of the grid.
// Cells on edges may be visited more than once.
func (g *Grid) iterateBoundary(f func(x, y, z int)) {
	for axis := 0; axis < 3; axis++ {
		a1 := (axis + 1) % 3
		a2 := (axis + 2) % 3
		for _, side := range [2]int{0, g.Size[axis] - 1} {
			for i := 0; i < g.Size[a1]; i++ {
				for j := 0; j < g.Size[a2]; j++ {
					var idx [3]int
					idx[axis] = side
					idx[a1] = i
					idx[a2] = j
					f(idx[0], idx[1], idx[2])
				}
			}
		}
	}
}
