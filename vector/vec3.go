// Package vector implements 2D and 3D spatial vectors holding a single value per component.
package vector

import (
	"github.com/go-spatial/geom"
	"github.com/pdok/spatialvec/spatial"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a 3D spatial vector (x, y, z)
type Vec3 [3]float64

func FromGeomPointZ(p geom.PointZ) Vec3 {
	return Vec3(p)
}

func (v Vec3) ToGeomPointZ() geom.PointZ {
	return geom.PointZ(v)
}

func FromR3(p r3.Vec) Vec3 {
	return Vec3{p.X, p.Y, p.Z}
}

func (v Vec3) ToR3() r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

func (v Vec3) X() float64 { return v[0] }

func (v Vec3) Y() float64 { return v[1] }

func (v Vec3) Z() float64 { return v[2] }

// XY drops the z component
func (v Vec3) XY() Vec2 { return Vec2{v[0], v[1]} }

func (v Vec3) Dot(other Vec3) float64 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2]
}

func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
	}
}

// vector builds a new Vec3 by applying op per component. All arithmetic goes through here.
func (v Vec3) vector(op func(a, b float64) float64, other Vec3) Vec3 {
	return Vec3{op(v[0], other[0]), op(v[1], other[1]), op(v[2], other[2])}
}

func (v Vec3) Add(other Vec3) Vec3 { return v.vector(add, other) }

func (v Vec3) Sub(other Vec3) Vec3 { return v.vector(sub, other) }

func (v Vec3) Scale(c float64) Vec3 { return v.vector(mul, Vec3{c, c, c}) }

func (v Vec3) Div(c float64) Vec3 { return v.vector(div, Vec3{c, c, c}) }

func (v Vec3) Neg() Vec3 { return v.Scale(-1) }

func (v Vec3) Mag2() float64 { return common3.Mag2(v) }

func (v Vec3) Mag() float64 { return common3.Mag(v) }

func (v Vec3) Rho2() float64 { return common3.Rho2(v) }

func (v Vec3) Rho() float64 { return rho(v.Rho2()) }

func (v Vec3) Phi() float64 { return phi(v[0], v[1]) }

// Unit returns v / |v|. A zero vector gives NaN components.
func (v Vec3) Unit() Vec3 { return v.Div(v.Mag()) }

// DeltaPhi returns the azimuthal angle between v and other in [-π, π].
func (v Vec3) DeltaPhi(other spatial.Azimuthal[float64]) float64 {
	return common3.DeltaPhi(v, other)
}

// CosDelta returns the cosine of the angle between v and other, clamped to [-1, 1].
// It is 1 when either vector has zero magnitude.
func (v Vec3) CosDelta(other Vec3) float64 {
	return cosDelta(v.Dot(other), v.Mag2(), other.Mag2())
}

// Angle returns the angle between v and other in radians, or in degrees.
func (v Vec3) Angle(other Vec3, degrees bool) float64 {
	return angle(v.CosDelta(other), degrees)
}

func (v Vec3) IsParallel(other Vec3, tolerance float64) bool {
	return common3.IsParallel(v, other, tolerance)
}

func (v Vec3) IsAntiparallel(other Vec3, tolerance float64) bool {
	return common3.IsAntiparallel(v, other, tolerance)
}

func (v Vec3) IsCollinear(other Vec3, tolerance float64) bool {
	return common3.IsCollinear(v, other, tolerance)
}

// IsOpposite reports whether v and other nearly cancel: every component of v+other is below tolerance.
func (v Vec3) IsOpposite(other Vec3, tolerance float64) bool {
	tmp := v.Add(other)
	return below(tmp[0], tolerance) && below(tmp[1], tolerance) && below(tmp[2], tolerance)
}

// IsPerpendicular reports |v·other| < tolerance
func (v Vec3) IsPerpendicular(other Vec3, tolerance float64) bool {
	return below(v.Dot(other), tolerance)
}

func (v Vec3) Lt(Vec3) (bool, error) { return spatial.Unordered() }

func (v Vec3) Gt(Vec3) (bool, error) { return spatial.Unordered() }

func (v Vec3) Le(Vec3) (bool, error) { return spatial.Unordered() }

func (v Vec3) Ge(Vec3) (bool, error) { return spatial.Unordered() }
