package spin

import (
	"math"
	"time"

	"go-spin-wheel/internal/config"
	"go-spin-wheel/internal/utils"
	"go-spin-wheel/internal/wheel"
)

// Random is a source of uniform numbers in [0, 1).
type Random interface {
	Float64() float64
}

// Options are the tunables of a spin.
type Options struct {
	Duration       time.Duration
	MinExtraSpins  int
	MaxExtraSpins  int
	JitterFraction float64 // доля половины сектора, < 1
	PointerDeg     float64
}

// DefaultOptions returns the app's spin settings.
func DefaultOptions() Options {
	return Options{
		Duration:       config.SpinDuration,
		MinExtraSpins:  config.MinExtraSpins,
		MaxExtraSpins:  config.MaxExtraSpins,
		JitterFraction: config.JitterFraction,
		PointerDeg:     config.PointerAngleDeg,
	}
}

// Plan is the outcome of one spin, computed before any animation runs.
type Plan struct {
	Winner     int     // index into the active subset
	Target     float64 // orientation that puts the winner's centre under the pointer
	Delta      float64 // forward rotation to reach Target, in (0, 360]
	ExtraSpins int     // full revolutions added for show
	Jitter     float64 // offset from the slice centre, strictly inside half a slice
}

// Total returns the rotation to add to the cumulative angle.
func (p Plan) Total() float64 {
	return p.Delta + float64(p.ExtraSpins)*360 + p.Jitter
}

// NewPlan picks a winner among n slices and works out how far to turn a
// wheel currently rotated by current degrees. n must be positive. It draws
// from rng three times: winner, extra spins, jitter.
func NewPlan(n int, current float64, rng Random, opts Options) Plan {
	winner := int(rng.Float64() * float64(n))
	if winner >= n {
		winner = n - 1
	}

	target := opts.PointerDeg - wheel.SliceCenter(winner, n)

	delta := target - utils.NormalizeDegrees(current)
	for delta <= 0 {
		delta += 360
	}

	span := opts.MaxExtraSpins - opts.MinExtraSpins + 1
	extra := opts.MinExtraSpins + int(rng.Float64()*float64(span))
	if extra > opts.MaxExtraSpins {
		extra = opts.MaxExtraSpins
	}

	half := wheel.SliceAngle(n) / 2
	limit := math.Min(half*opts.JitterFraction, math.Nextafter(half, 0))
	jitter := utils.Clamp((rng.Float64()-0.5)*2*half*opts.JitterFraction, -limit, limit)

	return Plan{
		Winner:     winner,
		Target:     target,
		Delta:      delta,
		ExtraSpins: extra,
		Jitter:     jitter,
	}
}
