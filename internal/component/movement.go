// internal/component/movement.go
package component

import "go-space4x/pkg/hexmap"

// Position is the logical tile and the pixel position of an entity.
type Position struct {
	Offset hexmap.OffsetCoordinate
	Cube   hexmap.CubeCoordinate
	X, Y   float64
	Angle  float64 // degrees, 0 when heading towards +y
}

// PlaceOn moves the position onto tile.
func (p *Position) PlaceOn(tile *hexmap.Tile) {
	p.Offset = tile.Offset()
	p.Cube = tile.Cube()
	p.X, p.Y = tile.Center()
}

// Mover throttles path stepping to Speed steps per second.
type Mover struct {
	Speed float64
	Timer float64
}

// Path is a FIFO queue of waypoints; the front is the next target.
type Path struct {
	Waypoints []*hexmap.Tile
}

func (p *Path) Empty() bool { return len(p.Waypoints) == 0 }

func (p *Path) Front() *hexmap.Tile { return p.Waypoints[0] }

func (p *Path) Pop() *hexmap.Tile {
	t := p.Waypoints[0]
	p.Waypoints = p.Waypoints[1:]
	return t
}
