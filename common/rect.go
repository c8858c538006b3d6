package common

// Rect is a destination rectangle in screen pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Center returns the rectangle's midpoint relative to its own origin.
func (r Rect) Center() Vector2 {
	return Vector2{X: r.Width / 2, Y: r.Height / 2}
}
