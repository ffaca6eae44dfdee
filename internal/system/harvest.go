// internal/system/harvest.go
package system

import (
	"math"

	"go-space4x/internal/entity"
	"go-space4x/internal/event"
	"go-space4x/internal/types"
	"go-space4x/pkg/hexmap"
)

// HarvestSystem lets idle ships drain the resource node of the star system
// they are parked on.
type HarvestSystem struct {
	ecs      *entity.ECS
	events   *event.Dispatcher
	movement *MovementSystem
	rate     float64 // units per second

	// nodes by tile, rebuilt lazily when the node count changes
	byOffset map[hexmap.OffsetCoordinate]types.EntityID
	indexed  int
}

func NewHarvestSystem(ecs *entity.ECS, events *event.Dispatcher, movement *MovementSystem, rate float64) *HarvestSystem {
	return &HarvestSystem{ecs: ecs, events: events, movement: movement, rate: rate}
}

func (s *HarvestSystem) Update(deltaTime float64) {
	if s.rate <= 0 || deltaTime <= 0 {
		return
	}
	s.reindex()
	for id, cargo := range s.ecs.Cargos {
		if s.movement.State(id) != Idle {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		nodeID, ok := s.byOffset[pos.Offset]
		if !ok {
			continue
		}
		node := s.ecs.ResourceNodes[nodeID]
		if node == nil || node.Depleted() {
			continue
		}

		amount := math.Min(s.rate*deltaTime, node.Amount)
		if cargo.Capacity > 0 {
			amount = math.Min(amount, cargo.Capacity-cargo.Amount)
		}
		if amount <= 0 {
			continue
		}
		node.Amount -= amount
		cargo.Amount += amount

		if node.Depleted() {
			node.Amount = 0
			node.Tile.SetHasStar(false)
			if s.events != nil {
				s.events.Dispatch(event.Event{
					Type: event.ResourceDepleted,
					Data: event.ResourceData{Node: nodeID, Harvester: id, Tile: node.Tile},
				})
			}
		}
	}
}

func (s *HarvestSystem) reindex() {
	if s.byOffset != nil && s.indexed == len(s.ecs.ResourceNodes) {
		return
	}
	s.byOffset = make(map[hexmap.OffsetCoordinate]types.EntityID, len(s.ecs.ResourceNodes))
	for id, node := range s.ecs.ResourceNodes {
		s.byOffset[node.Tile.Offset()] = id
	}
	s.indexed = len(s.ecs.ResourceNodes)
}
