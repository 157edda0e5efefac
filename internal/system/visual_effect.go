// internal/system/visual_effect.go
package system

import (
	"image/color"
	"math"
	"time"

	"go-spin-wheel/internal/component"
	"go-spin-wheel/internal/config"
	"go-spin-wheel/internal/entity"
	"go-spin-wheel/internal/utils"
)

// Random — источник равномерных чисел
type Random interface {
	Float64() float64
	Range(lo, hi float64) float64
}

// BurstOptions — параметры салюта
type BurstOptions struct {
	Count    int
	Duration time.Duration
	SpeedMin float64
	SpeedMax float64
	Radius   float32
}

// DefaultBurstOptions возвращает параметры из конфига
func DefaultBurstOptions() BurstOptions {
	return BurstOptions{
		Count:    config.ParticleCount,
		Duration: config.ParticleDuration,
		SpeedMin: config.ParticleSpeedMin,
		SpeedMax: config.ParticleSpeedMax,
		Radius:   config.ParticleRadius,
	}
}

// VisualEffectSystem управляет частицами: создаёт салют, старит частицы,
// гасит их и удаляет по истечении срока жизни.
type VisualEffectSystem struct {
	ecs    *entity.ECS
	rng    Random
	easing utils.CubicBezier
	opts   BurstOptions
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, rng Random, easing utils.CubicBezier, opts BurstOptions) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs, rng: rng, easing: easing, opts: opts}
}

// Burst spawns opts.Count particles at (x, y), each flying in a random
// direction at a random speed.
func (s *VisualEffectSystem) Burst(x, y float64, clr color.RGBA) []entity.EntityID {
	ids := make([]entity.EntityID, 0, s.opts.Count)
	for i := 0; i < s.opts.Count; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := s.rng.Range(s.opts.SpeedMin, s.opts.SpeedMax)

		id := s.ecs.NewEntity()
		s.ecs.Positions[id] = &component.Position{X: x, Y: y}
		s.ecs.Velocities[id] = &component.Velocity{
			DirX:     math.Cos(angle),
			DirY:     math.Sin(angle),
			Distance: speed,
		}
		s.ecs.Renderables[id] = &component.Renderable{
			Color:  clr,
			Radius: s.opts.Radius,
			Scale:  1,
			Alpha:  1,
		}
		s.ecs.Particles[id] = &component.Particle{
			OriginX:  x,
			OriginY:  y,
			Duration: s.opts.Duration.Seconds(),
		}
		ids = append(ids, id)
	}
	return ids
}

// Update обновляет все активные частицы.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, p := range s.ecs.Particles {
		p.Age += deltaTime

		if p.Age >= p.Duration {
			// Срок вышел, удаляем сущность целиком
			s.ecs.RemoveEntity(id)
			continue
		}

		if renderable, ok := s.ecs.Renderables[id]; ok {
			k := s.easing.At(p.Age / p.Duration)
			renderable.Scale = 1 - k
			renderable.Alpha = 1 - k
		}
	}
}

// Active returns the number of live particles.
func (s *VisualEffectSystem) Active() int {
	return len(s.ecs.Particles)
}
