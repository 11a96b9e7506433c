package common

import "github.com/jakecoffman/cp"

// Boxes use cp.BB with a y-down convention: B is the top edge (smaller y)
// and T is the bottom edge (larger y).

// Box builds a bounding box from its four edges.
func Box(xLeft, yTop, xRight, yBottom float64) cp.BB {
	return cp.BB{L: xLeft, B: yTop, R: xRight, T: yBottom}
}

// Overlaps reports whether two boxes intersect. Touching edges count.
func Overlaps(a, b cp.BB) bool {
	return a.Intersects(b)
}

// Shrink insets every edge of b by m. A negative m grows the box.
func Shrink(b cp.BB, m float64) cp.BB {
	return cp.BB{L: b.L + m, B: b.B + m, R: b.R - m, T: b.T - m}
}

// SpanOverlap reports whether the open intervals (aMin, aMax) and
// (bMin, bMax) share any interior point.
func SpanOverlap(aMin, aMax, bMin, bMax float64) bool {
	return aMin < bMax && aMax > bMin
}

// SpanContains reports whether [innerMin, innerMax] lies inside
// [outerMin, outerMax], edges included.
func SpanContains(outerMin, outerMax, innerMin, innerMax float64) bool {
	return innerMin >= outerMin && innerMax <= outerMax
}

// SpanGap returns the signed distance from the end of the lower span to the
// start of the upper one. Negative values mean the spans interpenetrate.
func SpanGap(lowMax, highMin float64) float64 {
	return highMin - lowMax
}

// StrictlyInside reports whether v lies in the open interval (min, max).
func StrictlyInside(v, min, max float64) bool {
	return v > min && v < max
}

// Within reports whether v lies in the closed interval [min, max].
func Within(v, min, max float64) bool {
	return v >= min && v <= max
}
