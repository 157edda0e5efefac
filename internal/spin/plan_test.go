package spin

import (
	"math"
	"testing"

	"go-spin-wheel/internal/utils"
	"go-spin-wheel/internal/wheel"
)

// scripted отдаёт заранее заданные значения по кругу.
type scripted struct {
	vals []float64
	i    int
}

func (s *scripted) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

const almostOne = 0.9999999999

// chiSquare001 — критические значения χ² для p = 0.001 по числу степеней свободы.
var chiSquare001 = map[int]float64{1: 10.828, 2: 13.816, 3: 16.266, 4: 18.467, 5: 20.515, 6: 22.458, 7: 24.322}

func TestWinnerIsUniform(t *testing.T) {
	const trials = 4000
	opts := DefaultOptions()
	for n := 1; n <= 8; n++ {
		rng := utils.NewPRNGService(int64(1000 + n))
		counts := make([]int, n)
		for i := 0; i < trials; i++ {
			counts[NewPlan(n, 0, rng, opts).Winner]++
		}

		if n == 1 {
			if counts[0] != trials {
				t.Fatalf("single slice must always win, got %v", counts)
			}
			continue
		}
		expected := float64(trials) / float64(n)
		chi := 0.0
		for _, c := range counts {
			d := float64(c) - expected
			chi += d * d / expected
		}
		if chi > chiSquare001[n-1] {
			t.Errorf("n=%d: χ²=%.2f exceeds %.2f, counts %v", n, chi, chiSquare001[n-1], counts)
		}
	}
}

func TestPlanLandsWinnerUnderPointer(t *testing.T) {
	opts := DefaultOptions()
	for _, n := range []int{1, 2, 3, 4, 7, 12} {
		for seed := int64(1); seed <= 20; seed++ {
			rng := utils.NewPRNGService(seed)
			rotation := 0.0
			for spin := 0; spin < 25; spin++ {
				p := NewPlan(n, rotation, rng, opts)
				rotation += p.Total()
				if got := wheel.PointerIndex(rotation, opts.PointerDeg, n); got != p.Winner {
					t.Fatalf("n=%d seed=%d spin=%d: pointer over %d, winner %d (rotation %.4f)",
						n, seed, spin, got, p.Winner, rotation)
				}
			}
		}
	}
}

func TestDeltaAlwaysForward(t *testing.T) {
	opts := DefaultOptions()
	for _, n := range []int{1, 3, 4, 9} {
		for w := 0; w < n; w++ {
			u := (float64(w) + 0.5) / float64(n)
			target := opts.PointerDeg - wheel.SliceCenter(w, n)
			currents := []float64{0, target, target + 360, target - 0.001, 359.999, -30, 1e6}
			for _, cur := range currents {
				p := NewPlan(n, cur, &scripted{vals: []float64{u, 0, 0.5}}, opts)
				if p.Delta <= 0 || p.Delta > 360 {
					t.Errorf("n=%d w=%d current=%v: delta %v not in (0, 360]", n, w, cur, p.Delta)
				}
				if p.Total() < float64(opts.MinExtraSpins)*360 {
					t.Errorf("total %v below flourish", p.Total())
				}
			}
		}
	}
}

func TestZeroDeltaBecomesFullTurn(t *testing.T) {
	opts := DefaultOptions()
	// n=4, победитель 0: цель 270-45 = 225°, колесо уже там
	p := NewPlan(4, 225, &scripted{vals: []float64{0, 0, 0.5}}, opts)
	if p.Delta != 360 {
		t.Errorf("delta = %v, want 360", p.Delta)
	}
}

func TestExtraSpinsRange(t *testing.T) {
	opts := DefaultOptions()
	tests := []struct {
		u    float64
		want int
	}{
		{0, 5},
		{0.25, 6},
		{0.5, 7},
		{almostOne, 8},
		{1, 8}, // вне контракта источника, но не выходит за диапазон
	}
	for _, tt := range tests {
		p := NewPlan(4, 0, &scripted{vals: []float64{0, tt.u, 0.5}}, opts)
		if p.ExtraSpins != tt.want {
			t.Errorf("u=%v: extra spins %d, want %d", tt.u, p.ExtraSpins, tt.want)
		}
	}
}

func TestJitterStaysInsideSlice(t *testing.T) {
	for _, frac := range []float64{0.4, 1} {
		opts := DefaultOptions()
		opts.JitterFraction = frac
		for _, n := range []int{1, 4, 360, 1000} {
			half := wheel.SliceAngle(n) / 2
			for _, u := range []float64{0, 0.25, 0.5, almostOne} {
				p := NewPlan(n, 0, &scripted{vals: []float64{0, 0, u}}, opts)
				if math.Abs(p.Jitter) >= half {
					t.Errorf("frac=%v n=%d u=%v: jitter %v reaches half slice %v", frac, n, u, p.Jitter, half)
				}
				if math.Abs(p.Jitter) > half*frac+1e-12 {
					t.Errorf("frac=%v n=%d u=%v: jitter %v above bound", frac, n, u, p.Jitter)
				}
			}
		}
	}

	opts := DefaultOptions()
	p := NewPlan(4, 0, &scripted{vals: []float64{0, 0, 0}}, opts)
	if want := -45 * 0.4; math.Abs(p.Jitter-want) > 1e-9 {
		t.Errorf("jitter at u=0 is %v, want %v", p.Jitter, want)
	}
}
