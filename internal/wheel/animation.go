package wheel

import (
	"time"

	"go-spin-wheel/internal/utils"
)

// Animation eases the displayed rotation from From to To degrees.
type Animation struct {
	From, To float64
	Start    time.Duration
	Duration time.Duration
	Easing   utils.CubicBezier
}

// Progress returns linear progress in [0, 1] at now.
func (a Animation) Progress(now time.Duration) float64 {
	if a.Duration <= 0 {
		return 1
	}
	return utils.Clamp(float64(now-a.Start)/float64(a.Duration), 0, 1)
}

// At returns the displayed rotation at now.
func (a Animation) At(now time.Duration) float64 {
	return utils.Lerp(a.From, a.To, a.Easing.At(a.Progress(now)))
}

func (a Animation) Done(now time.Duration) bool {
	return a.Progress(now) >= 1
}
