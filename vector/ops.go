package vector

import (
	"math"

	"github.com/pdok/spatialvec/mathhelp"
	"github.com/pdok/spatialvec/spatial"
)

// scalarOps is the spatial.Ops engine for single vectors: plain float64 math.
type scalarOps struct{}

func (scalarOps) Mul(a, b float64) float64 { return a * b }

func (scalarOps) Sub(a, b float64) float64 { return a - b }

func (scalarOps) AddInPlace(dst, s float64) float64 { return dst + s }

func (scalarOps) AddConst(s, c float64) float64 { return s + c }

func (scalarOps) SubFromConst(c, s float64) float64 { return c - s }

func (scalarOps) Sqrt(s float64) float64 { return math.Sqrt(s) }

func (scalarOps) Abs(s float64) float64 { return math.Abs(s) }

func (scalarOps) FloorMod(s, m float64) float64 { return mathhelp.FloorMod(s, m) }

func (scalarOps) Less(s, c float64) bool { return s < c }

var (
	common2 = spatial.Common[float64, bool, Vec2]{Ops: scalarOps{}}
	common3 = spatial.Common[float64, bool, Vec3]{Ops: scalarOps{}}
)

// cosDelta is shared by Vec2 and Vec3: a zero magnitude on either side counts as aligned.
// A NaN ratio also ends up at 1, the same as the masked column version.
func cosDelta(dot, m1, m2 float64) float64 {
	if m1 == 0 || m2 == 0 {
		return 1.0
	}
	r := dot / math.Sqrt(m1*m2)
	if !(r < 1.0) {
		r = 1.0
	}
	if !(r > -1.0) {
		r = -1.0
	}
	return r
}

func angle(cosDelta float64, degrees bool) float64 {
	out := math.Acos(cosDelta)
	if degrees {
		out *= 180.0 / math.Pi
	}
	return out
}
