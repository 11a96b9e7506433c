package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Approach moves current toward target by at most step and reports whether
// target was reached.
func Approach(current, target, step float64) (float64, bool) {
	d := target - current
	if math.Abs(d) <= step {
		return target, true
	}
	if d > 0 {
		return current + step, false
	}
	return current - step, false
}
