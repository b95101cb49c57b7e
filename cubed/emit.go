package cubed

import "github.com/pkg/errors"

// A BlockSet names the block subtype used for each shape category.
type BlockSet struct {
	Cube          string `yaml:"cube" json:"cube"`
	Slope         string `yaml:"slope" json:"slope"`
	Corner        string `yaml:"corner" json:"corner"`
	InverseCorner string `yaml:"inverse_corner" json:"inverse_corner"`
}

// DefaultBlockSet uses large light armor blocks.
var DefaultBlockSet = BlockSet{
	Cube:          "LargeBlockArmorBlock",
	Slope:         "LargeBlockArmorSlope",
	Corner:        "LargeBlockArmorCorner",
	InverseCorner: "LargeBlockArmorCornerInv",
}

// Subtype gets the subtype name for a cell type.
func (b *BlockSet) Subtype(c CellType) (string, error) {
	switch c.Category() {
	case CategoryCube:
		return b.Cube, nil
	case CategorySlope:
		return b.Slope, nil
	case CategoryNormalCorner:
		return b.Corner, nil
	case CategoryInverseCorner:
		return b.InverseCorner, nil
	}
	return "", errors.Wrapf(ErrUnclassifiedShape, "subtype for %v", c)
}

// A BlockRecord is one placed block.
type BlockRecord struct {
	Type        CellType    `json:"type"`
	Position    [3]int      `json:"position"`
	Orientation Orientation `json:"orientation"`
	Subtype     string      `json:"subtype"`
}

// Emit creates a block for every shaped cell in the grid, in enumeration
// order. Positions are grid indices.
//
// If fillInterior is true, Interior cells are emitted as cubes and become
// SolidCube in the grid. Otherwise, they are skipped.
//
// Any cell which is neither empty, Interior, nor a shape aborts emission
// with ErrUnclassifiedShape.
func Emit(g *Grid, blocks BlockSet, fillInterior bool) ([]BlockRecord, error) {
	var res []BlockRecord
	var err error
	g.Iterate(func(x, y, z int, c CellType) {
		if err != nil || c == None {
			return
		}
		if c == Interior {
			if !fillInterior {
				return
			}
			c = SolidCube
			g.Set(x, y, z, c)
		}
		subtype, subErr := blocks.Subtype(c)
		if subErr != nil {
			err = errors.Wrapf(subErr, "emit cell (%d, %d, %d)", x, y, z)
			return
		}
		res = append(res, BlockRecord{
			Type:        c,
			Position:    [3]int{x, y, z},
			Orientation: Orient(c),
			Subtype:     subtype,
		})
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
