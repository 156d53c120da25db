// Package vectorarray implements columns of 2D and 3D spatial vectors: one float64 slice per
// component, one vector per position. Every derived quantity is a column (or mask) aligned with
// the input.
//
// Results are freshly allocated unless a method says otherwise. Methods ending in InPlace
// overwrite the receiver's component slices, so every alias of those slices sees the change.
// Columns of different lengths panic, like gonum's floats package.
package vectorarray

import (
	"github.com/pdok/spatialvec/columnar"
	"github.com/pdok/spatialvec/spatial"
	"github.com/pdok/spatialvec/vector"
)

// Vec3 holds the x, y and z columns of a column of 3D vectors.
type Vec3 [3][]float64

// New3 wraps the given columns without copying them.
func New3(x, y, z []float64) Vec3 {
	if len(x) != len(y) || len(x) != len(z) {
		panic("vectorarray: slice lengths do not match")
	}
	return Vec3{x, y, z}
}

// FromVectors3 copies scalar vectors into columns.
func FromVectors3(vs []vector.Vec3) Vec3 {
	out := Vec3{make([]float64, len(vs)), make([]float64, len(vs)), make([]float64, len(vs))}
	for i, v := range vs {
		out[0][i], out[1][i], out[2][i] = v[0], v[1], v[2]
	}
	return out
}

func (v Vec3) Len() int { return len(v[0]) }

// At returns the vector at position i
func (v Vec3) At(i int) vector.Vec3 {
	return vector.Vec3{v[0][i], v[1][i], v[2][i]}
}

func (v Vec3) X() []float64 { return v[0] }

func (v Vec3) Y() []float64 { return v[1] }

func (v Vec3) Z() []float64 { return v[2] }

// Dot returns the positionwise dot products.
func (v Vec3) Dot(other Vec3) []float64 {
	out := columnar.Mul(nil, v[0], other[0])
	tmp := columnar.Mul(nil, v[1], other[1])
	columnar.Add(out, out, tmp)
	columnar.Mul(tmp, v[2], other[2])
	return columnar.Add(out, out, tmp)
}

func (v Vec3) Cross(other Vec3) Vec3 {
	cross := func(a, b, c, d []float64) []float64 {
		out := columnar.Mul(nil, a, b)
		return columnar.Sub(out, out, columnar.Mul(nil, c, d))
	}
	return Vec3{
		cross(v[1], other[2], v[2], other[1]),
		cross(v[2], other[0], v[0], other[2]),
		cross(v[0], other[1], v[1], other[0]),
	}
}

// vector builds a new Vec3 by applying the column kernel op per component.
func (v Vec3) vector(op kernel, other Vec3) Vec3 {
	return Vec3{op(nil, v[0], other[0]), op(nil, v[1], other[1]), op(nil, v[2], other[2])}
}

func (v Vec3) Add(other Vec3) Vec3 { return v.vector(columnar.Add, other) }

func (v Vec3) Sub(other Vec3) Vec3 { return v.vector(columnar.Sub, other) }

// Div divides every vector by the value at its position.
func (v Vec3) Div(s []float64) Vec3 {
	return Vec3{columnar.Div(nil, v[0], s), columnar.Div(nil, v[1], s), columnar.Div(nil, v[2], s)}
}

// DivInPlace divides every vector by the value at its position, overwriting v.
func (v Vec3) DivInPlace(s []float64) {
	for _, c := range v {
		columnar.Div(c, c, s)
	}
}

func (v Vec3) Scale(c float64) Vec3 {
	return Vec3{columnar.Scale(nil, c, v[0]), columnar.Scale(nil, c, v[1]), columnar.Scale(nil, c, v[2])}
}

func (v Vec3) Neg() Vec3 { return v.Scale(-1) }

func (v Vec3) Mag2() []float64 { return common3.Mag2(v) }

func (v Vec3) Mag() []float64 { return common3.Mag(v) }

func (v Vec3) Rho2() []float64 { return common3.Rho2(v) }

// Rho returns sqrt(x²+y²), computed in the buffer of Rho2.
func (v Vec3) Rho() []float64 { return rho(v.Rho2()) }

func (v Vec3) Phi() []float64 { return columnar.Atan2(nil, v[1], v[0]) }

// Unit returns a new column of v / |v|. Zero vectors give NaN components.
func (v Vec3) Unit() Vec3 { return v.Div(v.Mag()) }

// UnitInPlace scales every vector of v to unit length, overwriting v.
func (v Vec3) UnitInPlace() { v.DivInPlace(v.Mag()) }

func (v Vec3) DeltaPhi(other spatial.Azimuthal[[]float64]) []float64 {
	return common3.DeltaPhi(v, other)
}

// CosDelta returns the positionwise cosine of the angle between v and other, clipped to [-1, 1].
// Positions where either vector has zero magnitude get exactly 1.
func (v Vec3) CosDelta(other Vec3) []float64 {
	return cosDelta(v.Dot(other), v.Mag2(), other.Mag2())
}

// Angle returns the positionwise angle between v and other, in radians or degrees.
func (v Vec3) Angle(other Vec3, degrees bool) []float64 {
	return toDegrees(columnar.Acos(nil, v.CosDelta(other)), degrees)
}

// SignedAngle is Angle with the sign of normal · (unit(v) × unit(other)), telling the direction
// of rotation from v to other around normal.
func (v Vec3) SignedAngle(other, normal Vec3, degrees bool) []float64 {
	out := columnar.Acos(nil, v.CosDelta(other))
	sign := normal.Dot(v.Unit().Cross(other.Unit()))
	columnar.Sign(sign, sign)
	columnar.Mul(out, out, sign)
	return toDegrees(out, degrees)
}

func (v Vec3) IsParallel(other Vec3, tolerance float64) columnar.Mask {
	return common3.IsParallel(v, other, tolerance)
}

func (v Vec3) IsAntiparallel(other Vec3, tolerance float64) columnar.Mask {
	return common3.IsAntiparallel(v, other, tolerance)
}

func (v Vec3) IsCollinear(other Vec3, tolerance float64) columnar.Mask {
	return common3.IsCollinear(v, other, tolerance)
}

// IsOpposite reports per position whether v and other nearly cancel.
func (v Vec3) IsOpposite(other Vec3, tolerance float64) columnar.Mask {
	tmp := v.Add(other)
	return below(tolerance, tmp[0], tmp[1], tmp[2])
}

// IsPerpendicular reports |v·other| < tolerance per position.
func (v Vec3) IsPerpendicular(other Vec3, tolerance float64) columnar.Mask {
	return below(tolerance, v.Dot(other))
}

func (v Vec3) Lt(Vec3) (bool, error) { return spatial.Unordered() }

func (v Vec3) Gt(Vec3) (bool, error) { return spatial.Unordered() }

func (v Vec3) Le(Vec3) (bool, error) { return spatial.Unordered() }

func (v Vec3) Ge(Vec3) (bool, error) { return spatial.Unordered() }

// Rows copies the columns back into one []float64{x, y, z} per position.
func (v Vec3) Rows() [][]float64 {
	rows := make([][]float64, v.Len())
	for i := range rows {
		rows[i] = []float64{v[0][i], v[1][i], v[2][i]}
	}
	return rows
}
