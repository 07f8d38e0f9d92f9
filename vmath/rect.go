package vmath

// Rect is an axis-aligned box in canvas space
type Rect struct {
	X, Y, W, H float64
}

// Center returns the center point of the rect
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether two rects share any interior area
// Touching edges do not count, and the test is symmetric in its arguments
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Contains checks if point is within rect, right and bottom edges excluded
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
