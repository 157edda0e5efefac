package wheel

import (
	"go-spin-wheel/internal/utils"
)

// Angles here are degrees, 0° pointing right and growing clockwise on
// screen. Slice i of n covers [i·θ, (i+1)·θ) with θ = 360/n. The renderer
// and the spin planner both go through these helpers.

// SliceAngle returns θ for n slices.
func SliceAngle(n int) float64 {
	return 360 / float64(n)
}

// SliceSpan returns the start and end angle of slice i.
func SliceSpan(i, n int) (float64, float64) {
	theta := SliceAngle(n)
	return float64(i) * theta, float64(i+1) * theta
}

// SliceCenter returns the bisector angle of slice i.
func SliceCenter(i, n int) float64 {
	theta := SliceAngle(n)
	return float64(i)*theta + theta/2
}

// IndexAt returns the slice that contains the wheel angle deg.
func IndexAt(deg float64, n int) int {
	i := int(utils.NormalizeDegrees(deg) / SliceAngle(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// PointerIndex returns the slice under a pointer fixed at pointerDeg once
// the wheel has been rotated clockwise by rotation degrees.
func PointerIndex(rotation, pointerDeg float64, n int) int {
	return IndexAt(pointerDeg-rotation, n)
}
