package cubed

import (
	"fmt"

	"github.com/pkg/errors"
)

// A CellType is the content of one cell of a Grid.
type CellType uint8

const (
	None CellType = iota
	SolidCube

	// Interior marks empty cells enclosed by the mesh surface.
	Interior

	// Exterior is only used while classifying cells, and never survives
	// Classify.
	Exterior

	SlopeCenterFrontTop
	SlopeCenterBackTop
	SlopeCenterFrontBottom
	SlopeCenterBackBottom
	SlopeLeftCenterTop
	SlopeRightCenterTop
	SlopeLeftCenterBottom
	SlopeRightCenterBottom
	SlopeLeftFrontCenter
	SlopeRightFrontCenter
	SlopeLeftBackCenter
	SlopeRightBackCenter

	NormalCornerLeftFrontTop
	NormalCornerRightFrontTop
	NormalCornerLeftBackTop
	NormalCornerRightBackTop
	NormalCornerLeftFrontBottom
	NormalCornerRightFrontBottom
	NormalCornerLeftBackBottom
	NormalCornerRightBackBottom

	InverseCornerLeftFrontTop
	InverseCornerRightFrontTop
	InverseCornerLeftBackTop
	InverseCornerRightBackTop
	InverseCornerLeftFrontBottom
	InverseCornerRightFrontBottom
	InverseCornerLeftBackBottom
	InverseCornerRightBackBottom

	numCellTypes
)

// A Category groups cell types by the kind of block they become.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryCube
	CategoryInterior
	CategoryExterior
	CategorySlope
	CategoryNormalCorner
	CategoryInverseCorner
)

type cellInfo struct {
	Category Category

	// Directions names the beveled edge (two directions) or corner (three
	// directions), ordered X, Z, Y.
	Directions []Direction
}

var cellInfos = [numCellTypes]cellInfo{
	None:      {Category: CategoryNone},
	SolidCube: {Category: CategoryCube},
	Interior:  {Category: CategoryInterior},
	Exterior:  {Category: CategoryExterior},

	SlopeCenterFrontTop:    {CategorySlope, []Direction{Forward, Up}},
	SlopeCenterBackTop:     {CategorySlope, []Direction{Backward, Up}},
	SlopeCenterFrontBottom: {CategorySlope, []Direction{Forward, Down}},
	SlopeCenterBackBottom:  {CategorySlope, []Direction{Backward, Down}},
	SlopeLeftCenterTop:     {CategorySlope, []Direction{Left, Up}},
	SlopeRightCenterTop:    {CategorySlope, []Direction{Right, Up}},
	SlopeLeftCenterBottom:  {CategorySlope, []Direction{Left, Down}},
	SlopeRightCenterBottom: {CategorySlope, []Direction{Right, Down}},
	SlopeLeftFrontCenter:   {CategorySlope, []Direction{Left, Forward}},
	SlopeRightFrontCenter:  {CategorySlope, []Direction{Right, Forward}},
	SlopeLeftBackCenter:    {CategorySlope, []Direction{Left, Backward}},
	SlopeRightBackCenter:   {CategorySlope, []Direction{Right, Backward}},

	NormalCornerLeftFrontTop:     {CategoryNormalCorner, []Direction{Left, Forward, Up}},
	NormalCornerRightFrontTop:    {CategoryNormalCorner, []Direction{Right, Forward, Up}},
	NormalCornerLeftBackTop:      {CategoryNormalCorner, []Direction{Left, Backward, Up}},
	NormalCornerRightBackTop:     {CategoryNormalCorner, []Direction{Right, Backward, Up}},
	NormalCornerLeftFrontBottom:  {CategoryNormalCorner, []Direction{Left, Forward, Down}},
	NormalCornerRightFrontBottom: {CategoryNormalCorner, []Direction{Right, Forward, Down}},
	NormalCornerLeftBackBottom:   {CategoryNormalCorner, []Direction{Left, Backward, Down}},
	NormalCornerRightBackBottom:  {CategoryNormalCorner, []Direction{Right, Backward, Down}},

	InverseCornerLeftFrontTop:     {CategoryInverseCorner, []Direction{Left, Forward, Up}},
	InverseCornerRightFrontTop:    {CategoryInverseCorner, []Direction{Right, Forward, Up}},
	InverseCornerLeftBackTop:      {CategoryInverseCorner, []Direction{Left, Backward, Up}},
	InverseCornerRightBackTop:     {CategoryInverseCorner, []Direction{Right, Backward, Up}},
	InverseCornerLeftFrontBottom:  {CategoryInverseCorner, []Direction{Left, Forward, Down}},
	InverseCornerRightFrontBottom: {CategoryInverseCorner, []Direction{Right, Forward, Down}},
	InverseCornerLeftBackBottom:   {CategoryInverseCorner, []Direction{Left, Backward, Down}},
	InverseCornerRightBackBottom:  {CategoryInverseCorner, []Direction{Right, Backward, Down}},
}

var cellTypeNames = buildCellTypeNames()

// shapesByDirections maps a category and a direction bitmask to the cell type
// with exactly those directions.
var shapesByDirections = buildShapesByDirections()

// AllCellTypes lists every defined cell type in declaration order.
func AllCellTypes() []CellType {
	res := make([]CellType, numCellTypes)
	for i := range res {
		res[i] = CellType(i)
	}
	return res
}

// Valid checks if c is a defined cell type.
func (c CellType) Valid() bool {
	return c < numCellTypes
}

// Category gets the shape category of the cell type.
//
// Undefined values report CategoryNone.
func (c CellType) Category() Category {
	if !c.Valid() {
		return CategoryNone
	}
	return cellInfos[c].Category
}

// IsShape checks if the cell type is a cube, slope, or corner, i.e. a
// cell that becomes a block.
func (c CellType) IsShape() bool {
	switch c.Category() {
	case CategoryCube, CategorySlope, CategoryNormalCorner, CategoryInverseCorner:
		return true
	}
	return false
}

// Directions gets the directions of the beveled edge or corner of a shaped
// cell. The result is nil for cubes and markers.
func (c CellType) Directions() []Direction {
	if !c.Valid() || len(cellInfos[c].Directions) == 0 {
		return nil
	}
	return append([]Direction{}, cellInfos[c].Directions...)
}

func (c CellType) String() string {
	if c.Valid() {
		return cellTypeNames[c]
	}
	return fmt.Sprintf("CellType(%d)", c)
}

func (c CellType) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, errors.Errorf("marshal cell type: invalid value %d", c)
	}
	return []byte(c.String()), nil
}

func (c *CellType) UnmarshalText(text []byte) error {
	for i, name := range cellTypeNames {
		if name == string(text) {
			*c = CellType(i)
			return nil
		}
	}
	return errors.Errorf("unmarshal cell type: unknown name %q", text)
}

// SlopeFor finds the slope which bevels the edge between two faces.
func SlopeFor(d1, d2 Direction) (CellType, bool) {
	return shapeFor(CategorySlope, d1, d2)
}

// NormalCornerFor finds the corner cell named by three directions.
func NormalCornerFor(d1, d2, d3 Direction) (CellType, bool) {
	return shapeFor(CategoryNormalCorner, d1, d2, d3)
}

// InverseCornerFor finds the inverse corner cell named by three directions.
func InverseCornerFor(d1, d2, d3 Direction) (CellType, bool) {
	return shapeFor(CategoryInverseCorner, d1, d2, d3)
}

func shapeFor(category Category, dirs ...Direction) (CellType, bool) {
	res, ok := shapesByDirections[category][directionMask(dirs)]
	return res, ok
}

func directionMask(dirs []Direction) uint8 {
	var mask uint8
	for _, d := range dirs {
		mask |= 1 << d
	}
	return mask
}

func buildCellTypeNames() [numCellTypes]string {
	var res [numCellTypes]string
	res[None] = "None"
	res[SolidCube] = "SolidCube"
	res[Interior] = "Interior"
	res[Exterior] = "Exterior"
	for i := SlopeCenterFrontTop; i < numCellTypes; i++ {
		info := cellInfos[i]
		parts := [3]string{"Center", "Center", "Center"}
		for _, d := range info.Directions {
			switch d {
			case Left:
				parts[0] = "Left"
			case Right:
				parts[0] = "Right"
			case Forward:
				parts[1] = "Front"
			case Backward:
				parts[1] = "Back"
			case Up:
				parts[2] = "Top"
			case Down:
				parts[2] = "Bottom"
			}
		}
		var prefix string
		switch info.Category {
		case CategorySlope:
			prefix = "Slope"
		case CategoryNormalCorner:
			prefix = "NormalCorner"
		case CategoryInverseCorner:
			prefix = "InverseCorner"
		}
		res[i] = prefix + parts[0] + parts[1] + parts[2]
	}
	return res
}

func buildShapesByDirections() map[Category]map[uint8]CellType {
	res := map[Category]map[uint8]CellType{}
	for i, info := range cellInfos {
		if len(info.Directions) == 0 {
			continue
		}
		m, ok := res[info.Category]
		if !ok {
			m = map[uint8]CellType{}
			res[info.Category] = m
		}
		m[directionMask(info.Directions)] = CellType(i)
	}
	return res
}
