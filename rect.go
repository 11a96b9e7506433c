package main

// Rect is a screen or world rectangle used for view culling.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

func RectFromBounds(xLeft, yTop, xRight, yBottom float64) Rect {
	return Rect{
		X:      float32(xLeft),
		Y:      float32(yTop),
		Width:  float32(xRight - xLeft),
		Height: float32(yBottom - yTop),
	}
}

func (r *Rect) Intersects(other *Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
