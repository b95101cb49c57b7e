package cubed

import "testing"

func TestClassifyShell(t *testing.T) {
	grid := NewGrid([3]int{}, [3]int{3, 3, 3})
	grid.Iterate(func(x, y, z int, c CellType) {
		if x != 1 || y != 1 || z != 1 {
			grid.Set(x, y, z, SolidCube)
		}
	})
	Classify(grid, nil)
	counts := grid.Counts()
	if counts[Interior] != 1 || grid.At(1, 1, 1) != Interior {
		t.Errorf("expected center to be the only interior cell: %v", counts)
	}
	if counts[Exterior] != 0 {
		t.Errorf("found %d exterior cells", counts[Exterior])
	}
	if counts[SolidCube] != 26 {
		t.Errorf("expected 26 solid cells but got %d", counts[SolidCube])
	}
}

func TestClassifyOpen(t *testing.T) {
	grid := NewGrid([3]int{}, [3]int{5, 4, 3})
	grid.Set(2, 2, 1, SolidCube)
	grid.Set(0, 0, 0, SolidCube)
	Classify(grid, &ClassifyOptions{})
	counts := grid.Counts()
	if counts[Interior] != 0 || counts[Exterior] != 0 {
		t.Errorf("unexpected counts: %v", counts)
	}
	if counts[None] != grid.NumCells()-2 {
		t.Errorf("expected %d empty cells but got %d", grid.NumCells()-2, counts[None])
	}
}

func TestClassifyHollowBox(t *testing.T) {
	grid := NewGrid([3]int{}, [3]int{6, 6, 6})
	grid.Iterate(func(x, y, z int, c CellType) {
		if x >= 1 && x <= 4 && y >= 1 && y <= 4 && z >= 1 && z <= 4 {
			inner := x >= 2 && x <= 3 && y >= 2 && y <= 3 && z >= 2 && z <= 3
			if !inner {
				grid.Set(x, y, z, SolidCube)
			}
		}
	})
	Classify(grid, nil)
	if n := grid.Counts()[Interior]; n != 8 {
		t.Errorf("expected 8 interior cells but got %d", n)
	}
}

func TestClassifySeedBoundary(t *testing.T) {
	// An empty pocket touching the front face but none of the corners.
	makeGrid := func() *Grid {
		grid := NewGrid([3]int{}, [3]int{3, 3, 3})
		grid.Iterate(func(x, y, z int, c CellType) {
			grid.Set(x, y, z, SolidCube)
		})
		grid.Set(1, 1, 0, None)
		grid.Set(1, 1, 1, None)
		return grid
	}

	corners := makeGrid()
	Classify(corners, nil)
	if n := corners.Counts()[Interior]; n != 2 {
		t.Errorf("corner seeding: expected 2 interior cells but got %d", n)
	}

	boundary := makeGrid()
	Classify(boundary, &ClassifyOptions{SeedBoundary: true})
	counts := boundary.Counts()
	if counts[Interior] != 0 || counts[None] != 2 {
		t.Errorf("boundary seeding: unexpected counts %v", counts)
	}
}

func TestClassifySolidCorners(t *testing.T) {
	grid := NewGrid([3]int{}, [3]int{2, 2, 3})
	for _, x := range []int{0, 1} {
		for _, y := range []int{0, 1} {
			for _, z := range []int{0, 2} {
				grid.Set(x, y, z, SolidCube)
			}
		}
	}
	Classify(grid, nil)
	if n := grid.Counts()[Interior]; n != 4 {
		t.Errorf("expected 4 interior cells but got %d", n)
	}
}
