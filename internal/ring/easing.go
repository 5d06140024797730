package ring

import (
	"math"
	"strconv"
)

// Control points of the standard ease-in-ease-out cubic bezier.
const (
	easeX1 = 0.42
	easeX2 = 0.58
)

// Apply maps linear progress p in [0,1] through the curve.
func (c Curve) Apply(p float64) float64 {
	p = clamp01(p)
	switch c {
	case EaseInOut:
		return cubicBezier(p, easeX1, 0, easeX2, 1)
	default:
		return p
	}
}

// cubicBezier solves x(s) = p for the curve parameter s with Newton steps,
// falling back to bisection, and returns y(s).
func cubicBezier(p, x1, y1, x2, y2 float64) float64 {
	if p == 0 || p == 1 {
		return p
	}
	s := p
	for range 8 {
		x := bezier(s, x1, x2) - p
		if math.Abs(x) < 1e-7 {
			return bezier(s, y1, y2)
		}
		d := bezierSlope(s, x1, x2)
		if math.Abs(d) < 1e-6 {
			break
		}
		s = clamp01(s - x/d)
	}

	lo, hi := 0.0, 1.0
	s = p
	for range 40 {
		x := bezier(s, x1, x2)
		if math.Abs(x-p) < 1e-7 {
			break
		}
		if x < p {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return bezier(s, y1, y2)
}

// bezier evaluates one axis of a cubic bezier anchored at 0 and 1.
func bezier(s, a1, a2 float64) float64 {
	u := 1 - s
	return 3*u*u*s*a1 + 3*u*s*s*a2 + s*s*s
}

func bezierSlope(s, a1, a2 float64) float64 {
	u := 1 - s
	return 3*u*u*a1 + 6*u*s*(a2-a1) + 3*s*s*(1-a2)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
