package cubed

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// A Direction is one of the six cardinal directions of the block grid.
//
// Forward points toward -Z, matching the front face of a block in its
// default placement.
type Direction uint8

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// AllDirections lists every Direction in declaration order.
var AllDirections = [6]Direction{Forward, Backward, Left, Right, Up, Down}

var directionNames = [6]string{"Forward", "Backward", "Left", "Right", "Up", "Down"}

var directionOffsets = [6][3]int{
	Forward:  {0, 0, -1},
	Backward: {0, 0, 1},
	Left:     {-1, 0, 0},
	Right:    {1, 0, 0},
	Up:       {0, 1, 0},
	Down:     {0, -1, 0},
}

// Offset gets the integer grid step for the direction.
func (d Direction) Offset() [3]int {
	return directionOffsets[d]
}

// Vector gets the unit vector for the direction.
func (d Direction) Vector() model3d.Coord3D {
	o := d.Offset()
	return model3d.XYZ(float64(o[0]), float64(o[1]), float64(o[2]))
}

// Opposite gets the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return d ^ 1
}

// Axis gets the index (0, 1, or 2) of the axis the direction lies on.
func (d Direction) Axis() int {
	switch d {
	case Left, Right:
		return 0
	case Up, Down:
		return 1
	default:
		return 2
	}
}

// Valid checks if d is one of the six defined directions.
func (d Direction) Valid() bool {
	return int(d) < len(directionNames)
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", d)
}

func (d Direction) MarshalText() ([]byte, error) {
	if int(d) >= len(directionNames) {
		return nil, errors.Errorf("marshal direction: invalid value %d", d)
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	for i, name := range directionNames {
		if name == string(text) {
			*d = Direction(i)
			return nil
		}
	}
	return errors.Errorf("unmarshal direction: unknown name %q", text)
}

// directionForVector finds the direction nearest to an axis-aligned unit
// vector.
func directionForVector(v model3d.Coord3D) (Direction, bool) {
	for _, d := range AllDirections {
		if d.Vector().Dist(v) < 1e-8 {
			return d, true
		}
	}
	return 0, false
}
