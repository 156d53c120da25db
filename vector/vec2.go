package vector

import (
	"math"

	"github.com/go-spatial/geom"
	"github.com/pdok/spatialvec/spatial"
)

// Vec2 is a 2D spatial vector (x, y)
type Vec2 [2]float64

// FromGeomPoint converts a go-spatial point
func FromGeomPoint(p geom.Point) Vec2 {
	return Vec2(p)
}

// ToGeomPoint converts v to a go-spatial point
func (v Vec2) ToGeomPoint() geom.Point {
	return geom.Point(v)
}

func (v Vec2) X() float64 { return v[0] }

func (v Vec2) Y() float64 { return v[1] }

// Dot returns v·other
func (v Vec2) Dot(other Vec2) float64 {
	return v[0]*other[0] + v[1]*other[1]
}

// vector builds a new Vec2 by applying op per component.
func (v Vec2) vector(op func(a, b float64) float64, other Vec2) Vec2 {
	return Vec2{op(v[0], other[0]), op(v[1], other[1])}
}

func (v Vec2) Add(other Vec2) Vec2 { return v.vector(add, other) }

func (v Vec2) Sub(other Vec2) Vec2 { return v.vector(sub, other) }

func (v Vec2) Scale(c float64) Vec2 { return v.vector(mul, Vec2{c, c}) }

func (v Vec2) Div(c float64) Vec2 { return v.vector(div, Vec2{c, c}) }

func (v Vec2) Neg() Vec2 { return v.Scale(-1) }

func (v Vec2) Mag2() float64 { return common2.Mag2(v) }

func (v Vec2) Mag() float64 { return common2.Mag(v) }

func (v Vec2) Rho2() float64 { return common2.Rho2(v) }

func (v Vec2) Rho() float64 { return rho(v.Rho2()) }

func (v Vec2) Phi() float64 { return phi(v[0], v[1]) }

// Unit returns v / |v|. A zero vector gives NaN components.
func (v Vec2) Unit() Vec2 { return v.Div(v.Mag()) }

// DeltaPhi returns the azimuthal angle between v and other in [-π, π].
func (v Vec2) DeltaPhi(other spatial.Azimuthal[float64]) float64 {
	return common2.DeltaPhi(v, other)
}

// CosDelta returns the cosine of the angle between v and other, clamped to [-1, 1].
// It is 1 when either vector has zero magnitude.
func (v Vec2) CosDelta(other Vec2) float64 {
	return cosDelta(v.Dot(other), v.Mag2(), other.Mag2())
}

// Angle returns the angle between v and other in radians, or in degrees.
func (v Vec2) Angle(other Vec2, degrees bool) float64 {
	return angle(v.CosDelta(other), degrees)
}

func (v Vec2) IsParallel(other Vec2, tolerance float64) bool {
	return common2.IsParallel(v, other, tolerance)
}

func (v Vec2) IsAntiparallel(other Vec2, tolerance float64) bool {
	return common2.IsAntiparallel(v, other, tolerance)
}

func (v Vec2) IsCollinear(other Vec2, tolerance float64) bool {
	return common2.IsCollinear(v, other, tolerance)
}

// IsOpposite reports whether v and other nearly cancel: both components of v+other are below tolerance.
func (v Vec2) IsOpposite(other Vec2, tolerance float64) bool {
	tmp := v.Add(other)
	return below(tmp[0], tolerance) && below(tmp[1], tolerance)
}

// IsPerpendicular reports |v·other| < tolerance
func (v Vec2) IsPerpendicular(other Vec2, tolerance float64) bool {
	return below(v.Dot(other), tolerance)
}

func (v Vec2) Lt(Vec2) (bool, error) { return spatial.Unordered() }

func (v Vec2) Gt(Vec2) (bool, error) { return spatial.Unordered() }

func (v Vec2) Le(Vec2) (bool, error) { return spatial.Unordered() }

func (v Vec2) Ge(Vec2) (bool, error) { return spatial.Unordered() }

func add(a, b float64) float64 { return a + b }

func sub(a, b float64) float64 { return a - b }

func mul(a, b float64) float64 { return a * b }

func div(a, b float64) float64 { return a / b }

func rho(rho2 float64) float64 { return math.Sqrt(rho2) }

func phi(x, y float64) float64 { return math.Atan2(y, x) }

func below(c, tolerance float64) bool { return math.Abs(c) < tolerance }
