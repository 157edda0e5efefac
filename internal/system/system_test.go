package system

import (
	"image/color"
	"math"
	"testing"

	"go-spin-wheel/internal/entity"
	"go-spin-wheel/internal/utils"
)

func newSystems(seed int64) (*entity.ECS, *VisualEffectSystem, *MovementSystem) {
	ecs := entity.NewECS()
	easing := utils.CubicBezier{X1: 0.1, Y1: 0.8, X2: 0.3, Y2: 1}
	fx := NewVisualEffectSystem(ecs, utils.NewPRNGService(seed), easing, DefaultBurstOptions())
	return ecs, fx, NewMovementSystem(ecs, easing)
}

func TestBurstSpawnsTwentyAtCenter(t *testing.T) {
	ecs, fx, _ := newSystems(1)
	ids := fx.Burst(340, 360, color.RGBA{255, 0, 0, 255})

	if len(ids) != 20 || fx.Active() != 20 {
		t.Fatalf("expected 20 particles, got %d/%d", len(ids), fx.Active())
	}
	for _, id := range ids {
		pos := ecs.Positions[id]
		if pos.X != 340 || pos.Y != 360 {
			t.Errorf("particle %d spawned at %v,%v", id, pos.X, pos.Y)
		}
		vel := ecs.Velocities[id]
		if vel.Distance < 50 || vel.Distance >= 150 {
			t.Errorf("speed %v out of [50, 150)", vel.Distance)
		}
		if l := math.Hypot(vel.DirX, vel.DirY); math.Abs(l-1) > 1e-9 {
			t.Errorf("direction not normalised: %v", l)
		}
		if ecs.Renderables[id].Color != (color.RGBA{255, 0, 0, 255}) {
			t.Error("particle lost the winner colour")
		}
	}
}

func TestParticlesFlyOutAndFade(t *testing.T) {
	ecs, fx, mv := newSystems(2)
	ids := fx.Burst(0, 0, color.RGBA{0, 0, 255, 255})

	fx.Update(0.4)
	mv.Update(0.4)
	for _, id := range ids {
		pos, vel, r := ecs.Positions[id], ecs.Velocities[id], ecs.Renderables[id]
		d := math.Hypot(pos.X, pos.Y)
		if d <= 0 || d > vel.Distance {
			t.Errorf("particle %d at distance %v of %v", id, d, vel.Distance)
		}
		if r.Alpha >= 1 || r.Alpha <= 0 || r.Scale != r.Alpha {
			t.Errorf("particle %d alpha %v scale %v", id, r.Alpha, r.Scale)
		}
	}
}

func TestParticlesRemovedAfterLifetime(t *testing.T) {
	ecs, fx, mv := newSystems(3)
	fx.Burst(10, 10, color.RGBA{0, 255, 0, 255})
	fx.Burst(20, 20, color.RGBA{0, 255, 0, 255})

	for i := 0; i < 47; i++ {
		fx.Update(1.0 / 60)
		mv.Update(1.0 / 60)
	}
	if fx.Active() != 40 {
		t.Fatalf("particles removed too early: %d left", fx.Active())
	}

	for i := 0; i < 2; i++ {
		fx.Update(1.0 / 60)
		mv.Update(1.0 / 60)
	}
	if fx.Active() != 0 {
		t.Errorf("%d particles leaked", fx.Active())
	}
	if n := ecs.EntityCount(); n != 0 {
		t.Errorf("%d entities left behind", n)
	}
}

func TestLargeStepRemovesEverything(t *testing.T) {
	ecs, fx, _ := newSystems(4)
	fx.Burst(0, 0, color.RGBA{})
	fx.Update(5)
	if ecs.EntityCount() != 0 {
		t.Error("particles survived a long frame")
	}
}
