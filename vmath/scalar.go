package vmath

import "math"

// Wrap maps v into [0, size) on a torus of the given size
// Non-positive sizes collapse everything to 0
func Wrap(v, size float64) float64 {
	if size <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	m := math.Mod(v, size)
	if m < 0 {
		m += size
	}
	// m+size can round up to size for tiny negative m
	if m >= size {
		return 0
	}
	return m
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Dist returns the euclidean distance between two points
func Dist(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return math.Sqrt(dx*dx + dy*dy)
}

// Lerp interpolates between a and b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
