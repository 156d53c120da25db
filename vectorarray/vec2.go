package vectorarray

import (
	"github.com/go-spatial/geom"
	"github.com/pdok/spatialvec/columnar"
	"github.com/pdok/spatialvec/spatial"
	"github.com/pdok/spatialvec/vector"
)

type kernel func(dst, s, t []float64) []float64

// Vec2 holds the x and y columns of a column of 2D vectors.
type Vec2 [2][]float64

func New2(x, y []float64) Vec2 {
	if len(x) != len(y) {
		panic("vectorarray: slice lengths do not match")
	}
	return Vec2{x, y}
}

func FromVectors2(vs []vector.Vec2) Vec2 {
	out := Vec2{make([]float64, len(vs)), make([]float64, len(vs))}
	for i, v := range vs {
		out[0][i], out[1][i] = v[0], v[1]
	}
	return out
}

func FromMultiPoint(mp geom.MultiPoint) Vec2 {
	out := Vec2{make([]float64, len(mp)), make([]float64, len(mp))}
	for i, p := range mp {
		out[0][i], out[1][i] = p[0], p[1]
	}
	return out
}

func (v Vec2) ToMultiPoint() geom.MultiPoint {
	mp := make(geom.MultiPoint, v.Len())
	for i := range mp {
		mp[i] = [2]float64{v[0][i], v[1][i]}
	}
	return mp
}

func (v Vec2) Len() int { return len(v[0]) }

func (v Vec2) At(i int) vector.Vec2 {
	return vector.Vec2{v[0][i], v[1][i]}
}

func (v Vec2) X() []float64 { return v[0] }

func (v Vec2) Y() []float64 { return v[1] }

func (v Vec2) Dot(other Vec2) []float64 {
	out := columnar.Mul(nil, v[0], other[0])
	return columnar.Add(out, out, columnar.Mul(nil, v[1], other[1]))
}

func (v Vec2) vector(op kernel, other Vec2) Vec2 {
	return Vec2{op(nil, v[0], other[0]), op(nil, v[1], other[1])}
}

func (v Vec2) Add(other Vec2) Vec2 { return v.vector(columnar.Add, other) }

func (v Vec2) Sub(other Vec2) Vec2 { return v.vector(columnar.Sub, other) }

func (v Vec2) Div(s []float64) Vec2 {
	return Vec2{columnar.Div(nil, v[0], s), columnar.Div(nil, v[1], s)}
}

func (v Vec2) DivInPlace(s []float64) {
	for _, c := range v {
		columnar.Div(c, c, s)
	}
}

func (v Vec2) Scale(c float64) Vec2 {
	return Vec2{columnar.Scale(nil, c, v[0]), columnar.Scale(nil, c, v[1])}
}

func (v Vec2) Neg() Vec2 { return v.Scale(-1) }

func (v Vec2) Mag2() []float64 { return common2.Mag2(v) }

func (v Vec2) Mag() []float64 { return common2.Mag(v) }

func (v Vec2) Rho2() []float64 { return common2.Rho2(v) }

func (v Vec2) Rho() []float64 { return rho(v.Rho2()) }

func (v Vec2) Phi() []float64 { return columnar.Atan2(nil, v[1], v[0]) }

func (v Vec2) Unit() Vec2 { return v.Div(v.Mag()) }

func (v Vec2) UnitInPlace() { v.DivInPlace(v.Mag()) }

func (v Vec2) DeltaPhi(other spatial.Azimuthal[[]float64]) []float64 {
	return common2.DeltaPhi(v, other)
}

func (v Vec2) CosDelta(other Vec2) []float64 {
	return cosDelta(v.Dot(other), v.Mag2(), other.Mag2())
}

func (v Vec2) Angle(other Vec2, degrees bool) []float64 {
	return toDegrees(columnar.Acos(nil, v.CosDelta(other)), degrees)
}

func (v Vec2) IsParallel(other Vec2, tolerance float64) columnar.Mask {
	return common2.IsParallel(v, other, tolerance)
}

func (v Vec2) IsAntiparallel(other Vec2, tolerance float64) columnar.Mask {
	return common2.IsAntiparallel(v, other, tolerance)
}

func (v Vec2) IsCollinear(other Vec2, tolerance float64) columnar.Mask {
	return common2.IsCollinear(v, other, tolerance)
}

func (v Vec2) IsOpposite(other Vec2, tolerance float64) columnar.Mask {
	tmp := v.Add(other)
	return below(tolerance, tmp[0], tmp[1])
}

func (v Vec2) IsPerpendicular(other Vec2, tolerance float64) columnar.Mask {
	return below(tolerance, v.Dot(other))
}

func (v Vec2) Lt(Vec2) (bool, error) { return spatial.Unordered() }

func (v Vec2) Gt(Vec2) (bool, error) { return spatial.Unordered() }

func (v Vec2) Le(Vec2) (bool, error) { return spatial.Unordered() }

func (v Vec2) Ge(Vec2) (bool, error) { return spatial.Unordered() }

func rho(rho2 []float64) []float64 { return columnar.Sqrt(rho2, rho2) }

func (v Vec2) Rows() [][]float64 {
	rows := make([][]float64, v.Len())
	for i := range rows {
		rows[i] = []float64{v[0][i], v[1][i]}
	}
	return rows
}
