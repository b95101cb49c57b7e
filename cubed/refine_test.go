package cubed

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRefineSubtractiveBox(t *testing.T) {
	grid := NewGrid([3]int{}, [3]int{3, 3, 3})
	grid.Iterate(func(x, y, z int, c CellType) {
		grid.Set(x, y, z, SolidCube)
	})
	NewSubtractiveRefiner().Refine(grid)

	if n := grid.CountCategory(CategoryNormalCorner); n != 8 {
		t.Errorf("expected 8 corners but got %d", n)
	}
	if n := grid.CountCategory(CategorySlope); n != 12 {
		t.Errorf("expected 12 slopes but got %d", n)
	}
	if n := grid.CountCategory(CategoryCube); n != 7 {
		t.Errorf("expected 7 cubes but got %d", n)
	}
	if n := grid.CountCategory(CategoryInverseCorner); n != 0 {
		t.Errorf("expected no inverse corners but got %d", n)
	}
	if c := grid.At(0, 0, 0); c != NormalCornerLeftFrontBottom {
		t.Errorf("unexpected corner: %v", c)
	}
	if c := grid.At(2, 2, 1); c != SlopeRightCenterTop {
		t.Errorf("unexpected edge: %v", c)
	}
}

func TestRefineAdditivePillar(t *testing.T) {
	grid := NewGrid([3]int{}, [3]int{5, 3, 5})
	for x := 0; x < 5; x++ {
		for z := 0; z < 5; z++ {
			grid.Set(x, 0, z, SolidCube)
		}
	}
	grid.Set(2, 1, 2, SolidCube)
	grid.Set(2, 2, 2, SolidCube)
	NewAdditiveRefiner().Refine(grid)

	expected := map[[3]int]CellType{
		{1, 1, 2}: SlopeLeftCenterTop,
		{3, 1, 2}: SlopeRightCenterTop,
		{2, 1, 1}: SlopeCenterFrontTop,
		{2, 1, 3}: SlopeCenterBackTop,
		{1, 1, 1}: NormalCornerLeftFrontTop,
		{3, 1, 1}: NormalCornerRightFrontTop,
		{1, 1, 3}: NormalCornerLeftBackTop,
		{3, 1, 3}: NormalCornerRightBackTop,
	}
	for idx, want := range expected {
		if actual := grid.At(idx[0], idx[1], idx[2]); actual != want {
			t.Errorf("cell %v: expected %v but got %v", idx, want, actual)
		}
	}
	if n := grid.CountCategory(CategorySlope); n != 4 {
		t.Errorf("expected 4 slopes but got %d", n)
	}
	if n := grid.CountCategory(CategoryNormalCorner); n != 4 {
		t.Errorf("expected 4 corners but got %d", n)
	}
	if n := grid.CountCategory(CategoryInverseCorner); n != 0 {
		t.Errorf("expected no inverse corners but got %d", n)
	}
}

func TestRefineAdditiveConcaveCorner(t *testing.T) {
	grid := NewGrid([3]int{}, [3]int{3, 3, 3})
	grid.Iterate(func(x, y, z int, c CellType) {
		if x == 0 || y == 0 || z == 0 {
			grid.Set(x, y, z, SolidCube)
		}
	})
	NewAdditiveRefiner().Refine(grid)
	if c := grid.At(1, 1, 1); c != InverseCornerRightBackTop {
		t.Errorf("expected %v but got %v", InverseCornerRightBackTop, c)
	}
	if n := grid.CountCategory(CategoryInverseCorner); n != 1 {
		t.Errorf("expected one inverse corner but got %d", n)
	}
	if c := grid.At(1, 1, 2); c != SlopeRightCenterTop {
		t.Errorf("expected %v but got %v", SlopeRightCenterTop, c)
	}
}

func TestRefineDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))
	start := NewGrid([3]int{-4, 0, 7}, [3]int{9, 7, 8})
	start.Iterate(func(x, y, z int, c CellType) {
		if rng.Intn(5) < 2 {
			start.Set(x, y, z, SolidCube)
		}
	})

	for _, passes := range [][]*RefinePass{AdditivePasses, SubtractivePasses} {
		var results []*Grid
		for _, concurrency := range []int{1, 1, 0, 4} {
			grid := start.Clone()
			(&Refiner{Passes: passes, Concurrency: concurrency}).Refine(grid)
			results = append(results, grid)
		}
		for i := 1; i < len(results); i++ {
			if diff := cmp.Diff(results[0].Cells(), results[i].Cells()); diff != "" {
				t.Errorf("run %d differs (-first +run):\n%s", i, diff)
			}
		}
	}
}

func TestRefineTransitions(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	start := NewGrid([3]int{}, [3]int{8, 8, 8})
	start.Iterate(func(x, y, z int, c CellType) {
		switch rng.Intn(6) {
		case 0, 1:
			start.Set(x, y, z, SolidCube)
		case 2:
			start.Set(x, y, z, Interior)
		}
	})
	for _, refiner := range []*Refiner{NewAdditiveRefiner(), NewSubtractiveRefiner()} {
		grid := start.Clone()
		refiner.Refine(grid)
		before := start.Cells()
		for i, c := range grid.Cells() {
			if c == before[i] {
				continue
			}
			if before[i] != None && before[i] != SolidCube {
				t.Fatalf("refined a %v cell into %v", before[i], c)
			}
			if !c.IsShape() || c == SolidCube {
				t.Fatalf("refined a %v cell into %v", before[i], c)
			}
		}
	}
}

func TestRefineStaircase(t *testing.T) {
	grid := NewGrid([3]int{}, [3]int{4, 4, 1})
	for x := 0; x < 4; x++ {
		for y := 0; y <= x; y++ {
			grid.Set(x, y, 0, SolidCube)
		}
	}
	NewAdditiveRefiner().Refine(grid)
	for x := 0; x < 3; x++ {
		if c := grid.At(x, x+1, 0); c != SlopeLeftCenterTop {
			t.Errorf("step %d: expected %v but got %v", x, SlopeLeftCenterTop, c)
		}
	}
	if n := grid.CountCategory(CategorySlope); n != 3 {
		t.Errorf("expected 3 slopes but got %d", n)
	}
}
