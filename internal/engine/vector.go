package engine

import "math"

// Vec2 is a 2D coordinate pair used for both positions and momenta.
// It has value semantics: operations return new values and no Vec2 is
// ever shared between bodies.
type Vec2 struct {
	X float64
	Y float64
}

// Difference returns the vector from v toward o, i.e. o - v.
// The orientation is deliberate: scaling the difference of two positions
// by a positive coefficient yields an impulse that pulls v toward o.
func (v Vec2) Difference(o Vec2) Vec2 {
	return Vec2{X: o.X - v.X, Y: o.Y - v.Y}
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	d := v.Difference(o)
	return math.Sqrt(d.X*d.X + d.Y*d.Y)
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by the scalar f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Norm returns the magnitude of v.
func (v Vec2) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// IsValid reports whether both components are finite.
func (v Vec2) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
