package bernstein

import (
	"fmt"
	"math"
)

// vec2 is a 2D vector used internally by [CrossProduct], which [Curvature]
// builds on. Everything else in this package, including [BBox2D], works on
// [Nodes] rows directly.
type vec2 struct {
	X float64
	Y float64
}

func vec(x, y float64) vec2 {
	return vec2{X: x, Y: y}
}

func (v vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// dot returns the dot product of v and o.
func (v vec2) dot(o vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// cross returns the cross product u.x·v.y − u.y·v.x.
func (v vec2) cross(o vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// hypot returns the magnitude of the vector.
func (v vec2) hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v vec2) add(o vec2) vec2 {
	return vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v vec2) sub(o vec2) vec2 {
	return vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v vec2) mul(f float64) vec2 {
	return vec2{X: v.X * f, Y: v.Y * f}
}
