// pkg/hexmap/coord.go
package hexmap

import (
	"fmt"

	"go-space4x/pkg/utils"
)

// OffsetCoordinate addresses a tile by column (X) and row (Y) in the
// "even-r" horizontal layout: even rows are shifted right by half a tile.
type OffsetCoordinate struct {
	X, Y int
}

// CubeCoordinate is the three-axis form of a hex position. X+Y+Z is always 0.
type CubeCoordinate struct {
	X, Y, Z int
}

// CubeDirections are the six unit vectors around a hex. The order is fixed:
// neighbor enumeration and therefore search tie-breaking depend on it.
var CubeDirections = [6]CubeCoordinate{
	{X: 1, Y: -1, Z: 0},
	{X: 1, Y: 0, Z: -1},
	{X: 0, Y: 1, Z: -1},
	{X: -1, Y: 1, Z: 0},
	{X: -1, Y: 0, Z: 1},
	{X: 0, Y: -1, Z: 1},
}

// FromOffset converts an even-r offset coordinate into cube space.
func FromOffset(o OffsetCoordinate) CubeCoordinate {
	// >> 1 floors for negative rows as well
	x := o.X - ((o.Y + (o.Y & 1)) >> 1)
	z := o.Y
	return CubeCoordinate{X: x, Y: -x - z, Z: z}
}

// ToOffset is the inverse of FromOffset.
func (c CubeCoordinate) ToOffset() OffsetCoordinate {
	return OffsetCoordinate{X: c.X + ((c.Z + (c.Z & 1)) >> 1), Y: c.Z}
}

// Add returns c+d.
func (c CubeCoordinate) Add(d CubeCoordinate) CubeCoordinate {
	return CubeCoordinate{X: c.X + d.X, Y: c.Y + d.Y, Z: c.Z + d.Z}
}

// Valid reports whether the cube constraint holds.
func (c CubeCoordinate) Valid() bool {
	return c.X+c.Y+c.Z == 0
}

// Distance is the number of steps between two hexes.
func Distance(a, b CubeCoordinate) int {
	return (utils.Abs(a.X-b.X) + utils.Abs(a.Y-b.Y) + utils.Abs(a.Z-b.Z)) / 2
}

func (o OffsetCoordinate) String() string {
	return fmt.Sprintf("(%d,%d)", o.X, o.Y)
}

func (c CubeCoordinate) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}
