package wheel

import (
	"testing"
	"time"

	"go-spin-wheel/internal/utils"
)

func TestAnimation(t *testing.T) {
	a := Animation{
		From:     100,
		To:       2200,
		Start:    time.Second,
		Duration: 3500 * time.Millisecond,
		Easing:   utils.CubicBezier{X1: 0.15, Y1: 0.85, X2: 0.2, Y2: 1},
	}

	if a.At(0) != 100 || a.At(time.Second) != 100 {
		t.Error("animation must hold From before it starts")
	}
	if a.Done(4499 * time.Millisecond) {
		t.Error("done too early")
	}
	if !a.Done(4500*time.Millisecond) || a.At(4500*time.Millisecond) != 2200 {
		t.Error("animation must end exactly on To")
	}
	if a.At(time.Hour) != 2200 {
		t.Error("animation overshoots after the end")
	}

	prev := a.At(time.Second)
	for ms := 1000; ms <= 4500; ms += 50 {
		v := a.At(time.Duration(ms) * time.Millisecond)
		if v < prev {
			t.Fatalf("rotation went backwards at %dms: %v < %v", ms, v, prev)
		}
		prev = v
	}
}

func TestZeroDurationAnimation(t *testing.T) {
	a := Animation{From: 1, To: 2}
	if !a.Done(0) || a.At(0) != 2 {
		t.Error("zero duration animation should jump to To")
	}
}
