package cubed

import "github.com/unixpickle/model3d/model3d"

// An Orientation places a block by naming where its front face and its top
// face point.
type Orientation struct {
	Forward Direction
	Up      Direction
}

// DefaultOrientation is the placement of the canonical block models.
var DefaultOrientation = Orientation{Forward: Forward, Up: Up}

// Valid checks if the two directions are perpendicular.
func (o Orientation) Valid() bool {
	return o.Forward.Valid() && o.Up.Valid() && o.Forward.Axis() != o.Up.Axis()
}

// Right gets the direction the block's right face points.
func (o Orientation) Right() Direction {
	res, _ := directionForVector(o.Forward.Vector().Cross(o.Up.Vector()))
	return res
}

// Matrix gets the rotation which carries a canonical block onto a block
// with this orientation.
func (o Orientation) Matrix() *model3d.Matrix3 {
	return model3d.NewMatrix3Columns(
		o.Right().Vector(),
		o.Up.Vector(),
		o.Forward.Vector().Scale(-1),
	)
}

// Apply rotates a direction of a canonical block into this orientation.
func (o Orientation) Apply(d Direction) Direction {
	res, _ := directionForVector(o.Matrix().MulColumn(d.Vector()))
	return res
}

// orientations is defined for every shape cell type.
var orientations = map[CellType]Orientation{
	SolidCube: {Forward, Up},

	SlopeCenterFrontTop:    {Forward, Up},
	SlopeCenterBackTop:     {Backward, Up},
	SlopeCenterFrontBottom: {Forward, Down},
	SlopeCenterBackBottom:  {Backward, Down},
	SlopeLeftCenterTop:     {Left, Up},
	SlopeRightCenterTop:    {Right, Up},
	SlopeLeftCenterBottom:  {Left, Down},
	SlopeRightCenterBottom: {Right, Down},
	SlopeLeftFrontCenter:   {Forward, Left},
	SlopeRightFrontCenter:  {Forward, Right},
	SlopeLeftBackCenter:    {Backward, Left},
	SlopeRightBackCenter:   {Backward, Right},

	NormalCornerLeftFrontTop:     {Forward, Up},
	NormalCornerRightFrontTop:    {Right, Up},
	NormalCornerLeftBackTop:      {Left, Up},
	NormalCornerRightBackTop:     {Backward, Up},
	NormalCornerLeftFrontBottom:  {Left, Down},
	NormalCornerRightFrontBottom: {Forward, Down},
	NormalCornerLeftBackBottom:   {Backward, Down},
	NormalCornerRightBackBottom:  {Right, Down},

	InverseCornerLeftFrontTop:     {Forward, Up},
	InverseCornerRightFrontTop:    {Right, Up},
	InverseCornerLeftBackTop:      {Left, Up},
	InverseCornerRightBackTop:     {Backward, Up},
	InverseCornerLeftFrontBottom:  {Left, Down},
	InverseCornerRightFrontBottom: {Forward, Down},
	InverseCornerLeftBackBottom:   {Backward, Down},
	InverseCornerRightBackBottom:  {Right, Down},
}

// LookupOrientation finds the placement of the block for a cell type.
// The second return value is false for cell types which never become
// blocks.
func LookupOrientation(c CellType) (Orientation, bool) {
	res, ok := orientations[c]
	return res, ok
}

// Orient is like LookupOrientation, but falls back to DefaultOrientation.
func Orient(c CellType) Orientation {
	if res, ok := orientations[c]; ok {
		return res
	}
	return DefaultOrientation
}
