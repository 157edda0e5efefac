// internal/system/movement.go
package system

import (
	"go-spin-wheel/internal/entity"
	"go-spin-wheel/internal/utils"
)

// MovementSystem двигает частицы по прямой от точки вылета. Позиция
// считается от прогресса жизни, а не интегрируется, поэтому к концу
// частица ровно на Distance от начала.
type MovementSystem struct {
	ecs    *entity.ECS
	easing utils.CubicBezier
}

func NewMovementSystem(ecs *entity.ECS, easing utils.CubicBezier) *MovementSystem {
	return &MovementSystem{ecs: ecs, easing: easing}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, pos := range s.ecs.Positions {
		vel, hasVel := s.ecs.Velocities[id]
		p, hasParticle := s.ecs.Particles[id]
		if !hasVel || !hasParticle || p.Duration <= 0 {
			continue
		}
		k := s.easing.At(p.Age / p.Duration)
		pos.X = p.OriginX + vel.DirX*vel.Distance*k
		pos.Y = p.OriginY + vel.DirY*vel.Distance*k
	}
}
