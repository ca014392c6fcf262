package particlesim

import "math"

// A Vec2 is a simple 2D vector.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns the sum u + v.
func (u Vec2) Add(v Vec2) Vec2 {
	return Vec2{u.X + v.X, u.Y + v.Y}
}

// Sub returns the difference u - v.
func (u Vec2) Sub(v Vec2) Vec2 {
	return Vec2{u.X - v.X, u.Y - v.Y}
}

// Scale returns the vector scaled by k.
func (u Vec2) Scale(k float64) Vec2 {
	return Vec2{k * u.X, k * u.Y}
}

// Dot returns the dot product u·v.
func (u Vec2) Dot(v Vec2) float64 {
	return u.X*v.X + u.Y*v.Y
}

// Distance returns the Euclidean distance between u and v.
func (u Vec2) Distance(v Vec2) float64 {
	return math.Hypot(u.X-v.X, u.Y-v.Y)
}
