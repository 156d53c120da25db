package vectorarray

import (
	"math"

	"github.com/pdok/spatialvec/columnar"
	"github.com/pdok/spatialvec/spatial"
)

// columnOps is the spatial.Ops engine for columns of vectors.
type columnOps struct{}

func (columnOps) Mul(a, b []float64) []float64 { return columnar.Mul(nil, a, b) }

func (columnOps) Sub(a, b []float64) []float64 { return columnar.Sub(nil, a, b) }

func (columnOps) AddInPlace(dst, s []float64) []float64 { return columnar.Add(dst, dst, s) }

func (columnOps) AddConst(s []float64, c float64) []float64 { return columnar.AddConst(nil, c, s) }

func (columnOps) SubFromConst(c float64, s []float64) []float64 {
	return columnar.SubFromConst(nil, c, s)
}

func (columnOps) Sqrt(s []float64) []float64 { return columnar.Sqrt(nil, s) }

func (columnOps) Abs(s []float64) []float64 { return columnar.Abs(nil, s) }

func (columnOps) FloorMod(s []float64, m float64) []float64 { return columnar.FloorMod(nil, s, m) }

func (columnOps) Less(s []float64, c float64) columnar.Mask { return columnar.Less(nil, s, c) }

var (
	common2 = spatial.Common[[]float64, columnar.Mask, Vec2]{Ops: columnOps{}}
	common3 = spatial.Common[[]float64, columnar.Mask, Vec3]{Ops: columnOps{}}
)

// cosDelta divides dot by sqrt(m1*m2) where that product is positive and sets the other positions
// to 1, then clips to [-1, 1]. dot and m1 are overwritten; the result is dot.
func cosDelta(dot, m1, m2 []float64) []float64 {
	denom := columnar.Mul(m1, m1, m2)
	mask := columnar.Greater(nil, denom, 0)
	denom = columnar.Compress(nil, denom, mask)
	columnar.Sqrt(denom, denom)

	out := dot
	columnar.DivWhere(out, mask, denom)

	columnar.Not(mask, mask)
	columnar.SetWhere(out, mask, 1)

	return columnar.Clip(out, out, -1, 1)
}

// below reports |c| < tolerance per position for every column, overwriting the columns with |c|.
func below(tolerance float64, cs ...[]float64) columnar.Mask {
	var out columnar.Mask
	for i, c := range cs {
		columnar.Abs(c, c)
		if i == 0 {
			out = columnar.Less(nil, c, tolerance)
			continue
		}
		columnar.And(out, out, columnar.Less(nil, c, tolerance))
	}
	return out
}

func toDegrees(out []float64, degrees bool) []float64 {
	if degrees {
		columnar.Scale(out, 180.0/math.Pi, out)
	}
	return out
}
