package geom

import "math"

// WrapAngle normalizes a to (-pi, pi]. Inputs arbitrarily far outside
// the range are handled, not just a single wrap.
func WrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
