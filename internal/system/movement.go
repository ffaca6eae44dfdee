// internal/system/movement.go
package system

import (
	"math"

	"go-space4x/internal/component"
	"go-space4x/internal/entity"
	"go-space4x/internal/event"
	"go-space4x/internal/types"
	"go-space4x/pkg/hexmap"
)

// MoveState is the state of an entity's movement controller.
type MoveState uint8

const (
	Idle MoveState = iota
	EnRoute
)

func (s MoveState) String() string {
	if s == EnRoute {
		return "en_route"
	}
	return "idle"
}

// MovementSystem advances entities along their paths one tile per step.
// Step rate is Mover.Speed steps per second, independent of the frame rate.
type MovementSystem struct {
	ecs    *entity.ECS
	events *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, events *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, events: events}
}

// SetPath replaces whatever remains of the entity's path with a copy of
// path. An empty path leaves the entity idle.
func (s *MovementSystem) SetPath(id types.EntityID, path []*hexmap.Tile) {
	waypoints := make([]*hexmap.Tile, len(path))
	copy(waypoints, path)

	p, ok := s.ecs.Paths[id]
	if !ok {
		p = &component.Path{}
		s.ecs.Paths[id] = p
	}
	p.Waypoints = waypoints
	if mover, ok := s.ecs.Movers[id]; ok {
		mover.Timer = 0
	}
	if len(waypoints) > 0 {
		s.dispatch(event.PathAssigned, event.PathData{Entity: id, Path: waypoints})
	}
}

// State reports whether the entity still has waypoints to visit.
func (s *MovementSystem) State(id types.EntityID) MoveState {
	if p, ok := s.ecs.Paths[id]; ok && !p.Empty() {
		return EnRoute
	}
	return Idle
}

// Remaining returns a copy of the entity's pending waypoints.
func (s *MovementSystem) Remaining(id types.EntityID) []*hexmap.Tile {
	p, ok := s.ecs.Paths[id]
	if !ok {
		return nil
	}
	out := make([]*hexmap.Tile, len(p.Waypoints))
	copy(out, p.Waypoints)
	return out
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, path := range s.ecs.Paths {
		if path.Empty() {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		mover, hasMover := s.ecs.Movers[id]
		if !hasPos || !hasMover || mover.Speed <= 0 {
			continue
		}

		mover.Timer += deltaTime
		if mover.Timer <= 1/mover.Speed {
			continue
		}
		mover.Timer = 0

		target := path.Front()
		if target.Offset() == pos.Offset {
			// Arriving on a tile and leaving it take separate steps.
			path.Pop()
			s.dispatch(event.WaypointReached, event.WaypointData{Entity: id, Tile: target})
			if path.Empty() {
				s.dispatch(event.PathCompleted, event.WaypointData{Entity: id, Tile: target})
			}
			continue
		}

		tx, ty := target.Center()
		dx, dy := tx-pos.X, ty-pos.Y
		pos.PlaceOn(target)
		pos.Angle = Heading(dx, dy)
	}
}

// Heading converts a movement vector into a sprite angle in degrees.
// Angle 0 faces +y, so the atan2 angle is turned by 90 degrees.
func Heading(dx, dy float64) float64 {
	return math.Atan2(dy, dx)*180/math.Pi - 90
}

func (s *MovementSystem) dispatch(t event.EventType, data any) {
	if s.events != nil {
		s.events.Dispatch(event.Event{Type: t, Data: data})
	}
}
