// internal/entity/ecs.go
package entity

import "go-spin-wheel/internal/component"

// EntityID — идентификатор сущности
type EntityID uint64

type ECS struct {
	NextID      EntityID
	Positions   map[EntityID]*component.Position
	Velocities  map[EntityID]*component.Velocity
	Renderables map[EntityID]*component.Renderable
	Particles   map[EntityID]*component.Particle
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[EntityID]*component.Position),
		Velocities:  make(map[EntityID]*component.Velocity),
		Renderables: make(map[EntityID]*component.Renderable),
		Particles:   make(map[EntityID]*component.Particle),
	}
}

func (ecs *ECS) NewEntity() EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности
func (ecs *ECS) RemoveEntity(id EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Renderables, id)
	delete(ecs.Particles, id)
}

// EntityCount — число сущностей, у которых есть хоть один компонент
func (ecs *ECS) EntityCount() int {
	seen := make(map[EntityID]struct{})
	for id := range ecs.Positions {
		seen[id] = struct{}{}
	}
	for id := range ecs.Velocities {
		seen[id] = struct{}{}
	}
	for id := range ecs.Renderables {
		seen[id] = struct{}{}
	}
	for id := range ecs.Particles {
		seen[id] = struct{}{}
	}
	return len(seen)
}
