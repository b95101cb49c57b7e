package cubed

import "fmt"

// A PatternCheck requires the cell at a relative offset to have a type.
type PatternCheck struct {
	Offset [3]int
	Want   CellType
}

// A Pattern is one row of a refinement table. A cell matching every check
// becomes Shape.
type Pattern struct {
	Shape  CellType
	Checks []PatternCheck
}

// Matches checks if the cell at an index satisfies the pattern.
func (p *Pattern) Matches(g *Grid, x, y, z int) bool {
	for _, c := range p.Checks {
		if g.At(x+c.Offset[0], y+c.Offset[1], z+c.Offset[2]) != c.Want {
			return false
		}
	}
	return true
}

// A RefinePass reclassifies every cell of type Target which matches one of
// its patterns. Patterns are tried in order and the first match wins.
type RefinePass struct {
	Name     string
	Target   CellType
	Patterns []Pattern
}

// Match finds the first pattern which a cell matches.
func (r *RefinePass) Match(g *Grid, x, y, z int) (CellType, bool) {
	if g.At(x, y, z) != r.Target {
		return None, false
	}
	for i := range r.Patterns {
		if r.Patterns[i].Matches(g, x, y, z) {
			return r.Patterns[i].Shape, true
		}
	}
	return None, false
}

var (
	// AdditivePasses build shapes into empty cells resting against solid
	// cubes, rounding the surface outward.
	AdditivePasses = []*RefinePass{
		{
			Name:     "inverse_corner",
			Target:   None,
			Patterns: facePatterns(CategoryInverseCorner, SolidCube, None),
		},
		{
			Name:     "slope",
			Target:   None,
			Patterns: facePatterns(CategorySlope, SolidCube, None),
		},
		{
			Name:     "normal_corner",
			Target:   None,
			Patterns: slopePairPatterns(CategoryNormalCorner, -1),
		},
	}

	// SubtractivePasses bevel solid cubes which are exposed to empty space,
	// rounding the surface inward.
	SubtractivePasses = []*RefinePass{
		{
			Name:     "normal_corner",
			Target:   SolidCube,
			Patterns: facePatterns(CategoryNormalCorner, SolidCube, None),
		},
		{
			Name:     "slope",
			Target:   SolidCube,
			Patterns: facePatterns(CategorySlope, SolidCube, None),
		},
		{
			Name:     "inverse_corner",
			Target:   SolidCube,
			Patterns: slopePairPatterns(CategoryInverseCorner, 1),
		},
	}
)

// facePatterns creates one row per shape of a category: the neighbors away
// from the beveled edge or corner must be behind and the neighbors toward it
// must be ahead.
func facePatterns(category Category, behind, ahead CellType) []Pattern {
	var res []Pattern
	for _, shape := range AllCellTypes() {
		if shape.Category() != category {
			continue
		}
		p := Pattern{Shape: shape}
		for _, d := range shape.Directions() {
			p.Checks = append(p.Checks, PatternCheck{d.Opposite().Offset(), behind})
		}
		for _, d := range shape.Directions() {
			p.Checks = append(p.Checks, PatternCheck{d.Offset(), ahead})
		}
		res = append(res, p)
	}
	return res
}

// slopePairPatterns creates three rows per corner of a category, one for
// each pair of the corner's directions.
//
// For a pair (di, dj) of a corner (di, dj, dk), the neighbor sign*di must
// be the slope (dj, dk) and the neighbor sign*dj must be the slope
// (di, dk). A sign of -1 looks at the faces away from the corner.
func slopePairPatterns(category Category, sign int) []Pattern {
	pairs := [3][3]int{{0, 1, 2}, {0, 2, 1}, {1, 2, 0}}
	var res []Pattern
	for _, shape := range AllCellTypes() {
		if shape.Category() != category {
			continue
		}
		dirs := shape.Directions()
		for _, pair := range pairs {
			p := Pattern{Shape: shape}
			for _, idx := range [2][2]int{{pair[0], pair[1]}, {pair[1], pair[0]}} {
				facing := dirs[idx[0]]
				if sign < 0 {
					facing = facing.Opposite()
				}
				p.Checks = append(p.Checks, PatternCheck{
					Offset: facing.Offset(),
					Want:   mustSlope(dirs[idx[1]], dirs[pair[2]]),
				})
			}
			res = append(res, p)
		}
	}
	return res
}

func mustSlope(d1, d2 Direction) CellType {
	res, ok := SlopeFor(d1, d2)
	if !ok {
		panic(fmt.Sprintf("no slope for directions %v and %v", d1, d2))
	}
	return res
}
