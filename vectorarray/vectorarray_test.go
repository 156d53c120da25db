package vectorarray

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-spatial/geom"
	"github.com/pdok/spatialvec/columnar"
	"github.com/pdok/spatialvec/spatial"
	"github.com/pdok/spatialvec/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = spatial.DefaultTolerance

func randomVectors(r *rand.Rand, n int) []vector.Vec3 {
	vs := make([]vector.Vec3, n)
	for i := range vs {
		switch i % 7 {
		case 0:
			// degenerate
		case 1:
			vs[i] = vector.Vec3{1, 0, 0}
		case 2:
			vs[i] = vector.Vec3{-1, 0, 0}
		default:
			vs[i] = vector.Vec3{r.NormFloat64(), r.NormFloat64(), r.NormFloat64()}
		}
	}
	return vs
}

func TestVec3_AgreesWithScalar(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	as := randomVectors(r, 200)
	bs := randomVectors(r, 200)
	// some exact relations between the columns
	for i := 10; i < 200; i += 10 {
		bs[i] = as[i].Neg()
	}
	for i := 15; i < 200; i += 10 {
		bs[i] = as[i].Scale(2.5)
	}
	a := FromVectors3(as)
	b := FromVectors3(bs)

	mag := a.Mag()
	phi := a.Phi()
	rho := a.Rho()
	cos := a.CosDelta(b)
	angle := a.Angle(b, false)
	degrees := a.Angle(b, true)
	opposite := a.IsOpposite(b, tol)
	perpendicular := a.IsPerpendicular(b, tol)
	parallel := a.IsParallel(b, tol)
	antiparallel := a.IsAntiparallel(b, tol)
	collinear := a.IsCollinear(b, tol)
	deltaPhi := a.DeltaPhi(b)

	for i := range as {
		v, w := as[i], bs[i]
		assert.InDelta(t, v.Mag(), mag[i], 1e-15, "mag %d", i)
		assert.InDelta(t, v.Phi(), phi[i], 1e-15, "phi %d", i)
		assert.InDelta(t, v.Rho(), rho[i], 1e-15, "rho %d", i)
		assert.InDelta(t, v.CosDelta(w), cos[i], 1e-15, "cosdelta %d", i)
		assert.InDelta(t, v.Angle(w, false), angle[i], 1e-12, "angle %d", i)
		assert.InDelta(t, v.Angle(w, true), degrees[i], 1e-9, "angle degrees %d", i)
		assert.InDelta(t, v.DeltaPhi(w), deltaPhi[i], 1e-15, "deltaphi %d", i)
		assert.Equal(t, v.IsOpposite(w, tol), opposite[i], "isopposite %d", i)
		assert.Equal(t, v.IsPerpendicular(w, tol), perpendicular[i], "isperpendicular %d", i)
		assert.Equal(t, v.IsParallel(w, tol), parallel[i], "isparallel %d", i)
		assert.Equal(t, v.IsAntiparallel(w, tol), antiparallel[i], "isantiparallel %d", i)
		assert.Equal(t, v.IsCollinear(w, tol), collinear[i], "iscollinear %d", i)
	}

	// NaN components: the masked column path and the scalar clamp both give 1
	nan := math.NaN()
	as = []vector.Vec3{{nan, 0, 0}, {1, 2, 3}, {nan, nan, nan}}
	bs = []vector.Vec3{{1, 0, 0}, {0, nan, 0}, {-1, 0, 0}}
	a = FromVectors3(as)
	b = FromVectors3(bs)
	cos = a.CosDelta(b)
	angle = a.Angle(b, false)
	parallel = a.IsParallel(b, tol)
	antiparallel = a.IsAntiparallel(b, tol)
	collinear = a.IsCollinear(b, tol)
	for i := range as {
		v, w := as[i], bs[i]
		assert.Equal(t, 1.0, cos[i], "cosdelta nan %d", i)
		assert.Equal(t, v.CosDelta(w), cos[i], "cosdelta nan %d", i)
		assert.Equal(t, v.Angle(w, false), angle[i], "angle nan %d", i)
		assert.Equal(t, v.IsParallel(w, tol), parallel[i], "isparallel nan %d", i)
		assert.Equal(t, v.IsAntiparallel(w, tol), antiparallel[i], "isantiparallel nan %d", i)
		assert.Equal(t, v.IsCollinear(w, tol), collinear[i], "iscollinear nan %d", i)
	}
}

func TestVec3_CosDelta(t *testing.T) {
	a := New3([]float64{3, 1, 0, 1, 0}, []float64{4, 0, 0, 2, 0}, []float64{0, 0, 0, 3, 0})
	b := New3([]float64{4, -1, 5, 0, 0}, []float64{3, 0, 1, 0, 0}, []float64{0, 0, 2, 0, 0})
	got := a.CosDelta(b)
	require.Len(t, got, 5)
	assert.InDelta(t, 0.96, got[0], 1e-12)
	assert.Equal(t, -1.0, got[1])
	assert.Equal(t, 1.0, got[2], "zero self")
	assert.Equal(t, 1.0, got[3], "zero other")
	assert.Equal(t, 1.0, got[4], "both zero")

	assert.Equal(t, columnar.Mask{false, true, false, false, false}, a.IsAntiparallel(b, tol))
	assert.Equal(t, columnar.Mask{false, false, true, true, true}, a.IsParallel(b, tol))
}

func TestVec3_CosDeltaClipped(t *testing.T) {
	n := 1000
	a := New3(make([]float64, n), make([]float64, n), make([]float64, n))
	for i := 0; i < n; i++ {
		phi := float64(i) * 0.0137
		a[0][i], a[1][i] = math.Cos(phi), math.Sin(phi)
	}
	for _, got := range a.CosDelta(a.Scale(3.3)) {
		require.LessOrEqual(t, got, 1.0)
	}
	for _, got := range a.CosDelta(a.Scale(-0.7)) {
		require.GreaterOrEqual(t, got, -1.0)
	}
}

func TestVec3_Examples(t *testing.T) {
	a := New3([]float64{3, 1}, []float64{4, 0}, []float64{0, 0})
	b := New3([]float64{4, -1}, []float64{3, 0}, []float64{0, 0})
	assert.Equal(t, []float64{5, 1}, a.Mag())
	assert.Equal(t, columnar.Mask{false, false}, a.IsPerpendicular(b, tol))
	assert.Equal(t, columnar.Mask{false, true}, a.IsOpposite(b, tol))
	assert.InDelta(t, 180.0, a.Angle(b, true)[1], 1e-12)
	assert.Equal(t, []float64{3, 1}, a[0], "inputs untouched")
}

func TestVec3_Unit(t *testing.T) {
	a := New3([]float64{2, 0, 1}, []float64{3, 0, 1}, []float64{6, 5, 1})
	u := a.Unit()
	assert.InDeltaSlice(t, []float64{7, 5, math.Sqrt(3)}, a.Mag(), 1e-15, "original untouched")
	assert.InDeltaSlice(t, []float64{1, 1, 1}, u.Mag(), 1e-15)

	x := a[0]
	a.UnitInPlace()
	assert.InDeltaSlice(t, []float64{1, 1, 1}, a.Mag(), 1e-15)
	assert.InDelta(t, 2.0/7, x[0], 1e-15, "buffer is mutated")

	z := New3([]float64{0}, []float64{0}, []float64{0}).Unit()
	assert.True(t, math.IsNaN(z[0][0]))
}

func TestVec3_Rho(t *testing.T) {
	a := New3([]float64{3, 0}, []float64{4, -2}, []float64{12, 1})
	assert.Equal(t, []float64{25, 4}, a.Rho2())
	assert.Equal(t, []float64{5, 2}, a.Rho())
}

func TestVec3_SignedAngle(t *testing.T) {
	x := New3([]float64{1, 1, 1}, []float64{0, 0, 0}, []float64{0, 0, 0})
	y := New3([]float64{0, 0, 1}, []float64{1, -1, 0}, []float64{0, 0, 0})
	z := New3([]float64{0, 0, 0}, []float64{0, 0, 0}, []float64{1, 1, 1})
	got := x.SignedAngle(y, z, true)
	assert.InDeltaSlice(t, []float64{90, -90, 0}, got, 1e-12)
	assert.InDeltaSlice(t, []float64{90, 90, 0}, x.Angle(y, true), 1e-12)
}

func TestVec3_Arithmetic(t *testing.T) {
	a := New3([]float64{1, 2}, []float64{3, 4}, []float64{5, 6})
	b := New3([]float64{1, 1}, []float64{0, 1}, []float64{0, 2})
	assert.Equal(t, Vec3{{2, 3}, {3, 5}, {5, 8}}, a.Add(b))
	assert.Equal(t, Vec3{{0, 1}, {3, 3}, {5, 4}}, a.Sub(b))
	assert.Equal(t, Vec3{{-1, -2}, {-3, -4}, {-5, -6}}, a.Neg())
	assert.Equal(t, []float64{1, 18}, a.Dot(b))
	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, a.At(i).Cross(b.At(i)), a.Cross(b).At(i))
	}
}

func TestVec3_LengthMismatch(t *testing.T) {
	require.Panics(t, func() { New3([]float64{1}, []float64{1, 2}, []float64{1}) })
	a := New3([]float64{1}, []float64{1}, []float64{1})
	b := New3([]float64{1, 2}, []float64{1, 2}, []float64{1, 2})
	require.Panics(t, func() { a.CosDelta(b) })
	require.Panics(t, func() { a.Add(b) })
}

func TestVec3_NoOrdering(t *testing.T) {
	a := New3([]float64{1}, []float64{1}, []float64{1})
	for _, op := range []func(Vec3) (bool, error){a.Lt, a.Gt, a.Le, a.Ge} {
		_, err := op(a)
		require.ErrorIs(t, err, spatial.ErrNoOrdering)
	}
}

func TestVec2(t *testing.T) {
	as := []vector.Vec2{{3, 4}, {1, 0}, {0, 0}, {0.5, -2}}
	bs := []vector.Vec2{{4, 3}, {-1, 0}, {7, 7}, {4, 1}}
	a := FromVectors2(as)
	b := FromVectors2(bs)

	cos := a.CosDelta(b)
	angle := a.Angle(b, true)
	mag := a.Mag()
	dphi := a.DeltaPhi(b)
	opposite := a.IsOpposite(b, tol)
	perpendicular := a.IsPerpendicular(b, tol)
	collinear := a.IsCollinear(b, tol)
	for i := range as {
		assert.InDelta(t, as[i].CosDelta(bs[i]), cos[i], 1e-15)
		assert.InDelta(t, as[i].Angle(bs[i], true), angle[i], 1e-12)
		assert.InDelta(t, as[i].Mag(), mag[i], 1e-15)
		assert.InDelta(t, as[i].DeltaPhi(bs[i]), dphi[i], 1e-15)
		assert.Equal(t, as[i].IsOpposite(bs[i], tol), opposite[i])
		assert.Equal(t, as[i].IsPerpendicular(bs[i], tol), perpendicular[i])
		assert.Equal(t, as[i].IsCollinear(bs[i], tol), collinear[i])
	}
	assert.Equal(t, columnar.Mask{false, false, true, true}, perpendicular)
	assert.Equal(t, columnar.Mask{false, true, false, false}, opposite)

	a.UnitInPlace()
	assert.InDeltaSlice(t, []float64{1, 1}, a.Mag()[:2], 1e-15)
	assert.InDeltaSlice(t, []float64{5, 1, 0, math.Hypot(0.5, 2)}, mag, 1e-15)
}

func TestVec2_MultiPoint(t *testing.T) {
	mp := geom.MultiPoint{{1, 2}, {3, 4}}
	v := FromMultiPoint(mp)
	assert.Equal(t, Vec2{{1, 3}, {2, 4}}, v)
	assert.Equal(t, mp, v.ToMultiPoint())
	assert.Equal(t, vector.Vec2{3, 4}, v.At(1))
	assert.Equal(t, 2, v.Len())
}

func TestRows(t *testing.T) {
	assert.Equal(t, [][]float64{{1, 3, 5}, {2, 4, 6}}, New3([]float64{1, 2}, []float64{3, 4}, []float64{5, 6}).Rows())
	assert.Equal(t, [][]float64{{1, 3}, {2, 4}}, New2([]float64{1, 2}, []float64{3, 4}).Rows())
	assert.Empty(t, Vec2{}.Rows())
}
