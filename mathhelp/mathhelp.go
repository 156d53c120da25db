package mathhelp

import (
	"math"

	"golang.org/x/exp/constraints"
)

// FloorMod returns d modulo m with the sign of m (like Python's %), unlike math.Mod
// which keeps the sign of d.
func FloorMod[F constraints.Float](d, m F) F {
	r := F(math.Mod(float64(d), float64(m)))
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}

// Clamp limits f to [lo, hi]. NaN stays NaN.
func Clamp[F constraints.Float](f, lo, hi F) F {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// Sign returns -1, 0 or 1 (signed zero and NaN are returned as is)
func Sign[F constraints.Float](f F) F {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return f
}
