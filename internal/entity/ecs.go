// internal/entity/ecs.go
package entity

import (
	"go-space4x/internal/component"
	"go-space4x/internal/types"
)

// ECS stores components in one map per component type.
type ECS struct {
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Movers        map[types.EntityID]*component.Mover
	Paths         map[types.EntityID]*component.Path
	Spaceships    map[types.EntityID]*component.Spaceship
	Cargos        map[types.EntityID]*component.Cargo
	ResourceNodes map[types.EntityID]*component.ResourceNode
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Movers:        make(map[types.EntityID]*component.Mover),
		Paths:         make(map[types.EntityID]*component.Path),
		Spaceships:    make(map[types.EntityID]*component.Spaceship),
		Cargos:        make(map[types.EntityID]*component.Cargo),
		ResourceNodes: make(map[types.EntityID]*component.ResourceNode),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity drops every component of id.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Movers, id)
	delete(ecs.Paths, id)
	delete(ecs.Spaceships, id)
	delete(ecs.Cargos, id)
	delete(ecs.ResourceNodes, id)
}
