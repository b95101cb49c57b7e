package cubed

import (
	"github.com/unixpickle/model3d/model3d"
)

// ShapePolytope gets the solid occupied by a cell type within the unit cell
// [0, 1]^3.
//
// The result is nil for cell types which are not shapes.
func ShapePolytope(c CellType) model3d.ConvexPolytope {
	var limit float64
	switch c.Category() {
	case CategoryCube:
		return model3d.NewConvexPolytopeRect(model3d.Origin, model3d.XYZ(1, 1, 1))
	case CategorySlope, CategoryNormalCorner:
		limit = 1
	case CategoryInverseCorner:
		limit = 2
	default:
		return nil
	}

	// With a_d the distance from the face opposite to d, keep
	// sum(a_d) <= limit over the shape's directions.
	var normal model3d.Coord3D
	var negative float64
	for _, d := range c.Directions() {
		normal = normal.Add(d.Vector())
		if o := d.Offset(); o[0]+o[1]+o[2] < 0 {
			negative++
		}
	}
	res := model3d.NewConvexPolytopeRect(model3d.Origin, model3d.XYZ(1, 1, 1))
	norm := normal.Norm()
	return append(res, &model3d.LinearConstraint{
		Normal: normal.Scale(1 / norm),
		Max:    (limit - negative) / norm,
	})
}

// canonicalShapes are the cell types whose models are rotated by an
// Orientation to produce every other shape.
var canonicalShapes = map[Category]CellType{
	CategoryCube:          SolidCube,
	CategorySlope:         SlopeCenterFrontTop,
	CategoryNormalCorner:  NormalCornerLeftFrontTop,
	CategoryInverseCorner: InverseCornerLeftFrontTop,
}

// BlockTransform gets the transformation from the unit cell of a canonical
// model to the placed block.
func BlockTransform(b *BlockRecord) model3d.Transform {
	center := model3d.XYZ(0.5, 0.5, 0.5)
	pos := model3d.XYZ(float64(b.Position[0]), float64(b.Position[1]), float64(b.Position[2]))
	return model3d.JoinedTransform{
		&model3d.Translate{Offset: center.Scale(-1)},
		&model3d.Matrix3Transform{Matrix: b.Orientation.Matrix()},
		&model3d.Translate{Offset: pos.Add(center)},
	}
}

// BlocksMesh creates a mesh of every placed block, built by rotating the
// canonical model of each block's category.
func BlocksMesh(blocks []BlockRecord) *model3d.Mesh {
	models := map[Category]*model3d.Mesh{}
	for category, shape := range canonicalShapes {
		models[category] = ShapePolytope(shape).Mesh()
	}
	res := model3d.NewMesh()
	for i := range blocks {
		model, ok := models[blocks[i].Type.Category()]
		if !ok {
			continue
		}
		res.AddMesh(model.MapCoords(BlockTransform(&blocks[i]).Apply))
	}
	return res
}
