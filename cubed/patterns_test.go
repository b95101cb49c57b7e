package cubed

import (
	"fmt"
	"testing"
)

func TestPatternTableSizes(t *testing.T) {
	for name, passes := range map[string][]*RefinePass{
		"additive":    AdditivePasses,
		"subtractive": SubtractivePasses,
	} {
		counts := map[Category]int{}
		for _, pass := range passes {
			for _, p := range pass.Patterns {
				counts[p.Shape.Category()]++
			}
		}
		if counts[CategorySlope] != 12 {
			t.Errorf("%s: expected 12 slope rows but got %d", name, counts[CategorySlope])
		}
		if counts[CategoryNormalCorner] != 8 && counts[CategoryNormalCorner] != 24 {
			t.Errorf("%s: unexpected corner rows: %d", name, counts[CategoryNormalCorner])
		}
		if counts[CategoryNormalCorner]+counts[CategoryInverseCorner] != 32 {
			t.Errorf("%s: unexpected corner rows: %v", name, counts)
		}
	}
}

func TestPatternRows(t *testing.T) {
	for _, group := range []struct {
		Name   string
		Passes []*RefinePass
	}{
		{"Additive", AdditivePasses},
		{"Subtractive", SubtractivePasses},
	} {
		for passIdx, pass := range group.Passes {
			for rowIdx, row := range pass.Patterns {
				name := fmt.Sprintf("%s/%s/%d/%v", group.Name, pass.Name, rowIdx, row.Shape)
				t.Run(name, func(t *testing.T) {
					testPatternRow(t, group.Passes, passIdx, &row)
				})
			}
		}
	}
}

func testPatternRow(t *testing.T, passes []*RefinePass, passIdx int, row *Pattern) {
	pass := passes[passIdx]
	grid := patternGrid(pass.Target, row)

	if !row.Matches(grid, 1, 1, 1) {
		t.Fatal("row does not match its own neighborhood")
	}
	if shape, ok := pass.Match(grid, 1, 1, 1); !ok || shape != row.Shape {
		t.Fatalf("pass matched %v (ok=%v)", shape, ok)
	}

	refiner := &Refiner{Passes: passes, Concurrency: 1}
	refined := grid.Clone()
	refiner.Refine(refined)
	if actual := refined.At(1, 1, 1); actual != row.Shape {
		t.Errorf("refined center to %v", actual)
	}

	// Breaking any single check must break the row.
	for i, check := range row.Checks {
		broken := grid.Clone()
		o := check.Offset
		replacement := SolidCube
		if check.Want == SolidCube {
			replacement = Interior
		}
		broken.Set(1+o[0], 1+o[1], 1+o[2], replacement)
		if row.Matches(broken, 1, 1, 1) {
			t.Errorf("row matched with check %d replaced", i)
		}
	}
}

// patternGrid creates a 3x3x3 grid whose center is target and whose
// neighbors satisfy exactly the checks of a pattern.
func patternGrid(target CellType, row *Pattern) *Grid {
	grid := NewGrid([3]int{}, [3]int{3, 3, 3})
	grid.Set(1, 1, 1, target)
	for _, check := range row.Checks {
		o := check.Offset
		grid.Set(1+o[0], 1+o[1], 1+o[2], check.Want)
	}
	return grid
}

func TestPatternOutOfBounds(t *testing.T) {
	// Cells beyond the grid read as empty.
	grid := NewGrid([3]int{}, [3]int{1, 2, 2})
	grid.Set(0, 1, 0, SolidCube)
	grid.Set(0, 0, 1, SolidCube)
	shape, ok := AdditivePasses[1].Match(grid, 0, 0, 0)
	if !ok || shape != SlopeCenterFrontBottom {
		t.Errorf("expected %v but got %v (ok=%v)", SlopeCenterFrontBottom, shape, ok)
	}
}
