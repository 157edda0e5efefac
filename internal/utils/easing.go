package utils

import "math"

// CubicBezier is a timing curve through (0,0), (X1,Y1), (X2,Y2), (1,1),
// the same model as CSS cubic-bezier(). X1 and X2 must lie in [0, 1].
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// NewCubicBezier builds a curve from four control values.
func NewCubicBezier(p [4]float64) CubicBezier {
	return CubicBezier{X1: p[0], Y1: p[1], X2: p[2], Y2: p[3]}
}

const bezierEpsilon = 1e-7

func bezierCoord(t, p1, p2 float64) float64 {
	// B(t) = 3(1-t)²t·p1 + 3(1-t)t²·p2 + t³
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func bezierSlope(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}

// solveT finds the curve parameter whose x equals x.
func (c CubicBezier) solveT(x float64) float64 {
	t := x
	for i := 0; i < 8; i++ {
		dx := bezierCoord(t, c.X1, c.X2) - x
		if math.Abs(dx) < bezierEpsilon {
			return t
		}
		d := bezierSlope(t, c.X1, c.X2)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= dx / d
	}

	// Ньютон не сошёлся, добиваем бисекцией
	lo, hi := 0.0, 1.0
	t = x
	for lo < hi {
		v := bezierCoord(t, c.X1, c.X2)
		if math.Abs(v-x) < bezierEpsilon {
			return t
		}
		if x > v {
			lo = t
		} else {
			hi = t
		}
		if hi-lo < bezierEpsilon {
			break
		}
		t = (lo + hi) / 2
	}
	return t
}

// At maps linear progress in [0, 1] to eased progress. Values outside the
// range are clamped.
func (c CubicBezier) At(progress float64) float64 {
	if progress <= 0 {
		return 0
	}
	if progress >= 1 {
		return 1
	}
	return bezierCoord(c.solveT(progress), c.Y1, c.Y2)
}
