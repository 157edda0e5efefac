// internal/system/render.go
package system

import (
	"go-spin-wheel/internal/entity"
	"go-spin-wheel/pkg/render/paint"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for id, r := range s.ecs.Renderables {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos || r.Scale <= 0 || r.Alpha <= 0 {
			continue
		}
		radius := r.Radius * float32(r.Scale)
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), radius, paint.WithAlpha(r.Color, r.Alpha), true)
	}
}
