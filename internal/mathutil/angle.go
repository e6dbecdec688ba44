package mathutil

import "math"

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// reduceBound is the magnitude above which whole turns are removed with
// math.Remainder before the stepping loops.
const reduceBound = 1e6

// NormalizeAngle wraps an angle into (-π, π]. Angles near the range step by
// whole turns; larger ones are reduced first.
func NormalizeAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return a
	}
	if math.Abs(a) > reduceBound {
		a = math.Remainder(a, TwoPi)
	}
	for a > math.Pi {
		a -= TwoPi
	}
	for a <= -math.Pi {
		a += TwoPi
	}
	return a
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}
