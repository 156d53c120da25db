// Package columnar is a small elementwise engine over float64 columns.
//
// Every kernel takes a dst buffer as its first argument. A nil dst makes the kernel allocate,
// a non-nil dst must have the length of the inputs and may alias any of them, which is how callers
// compute in place. Length mismatches panic, the same way gonum's floats package does.
// Arithmetic delegates to gonum.org/v1/gonum/floats.
package columnar

import (
	"math"

	"github.com/pdok/spatialvec/mathhelp"
	"gonum.org/v1/gonum/floats"
)

const badLength = "columnar: slice lengths do not match"

func buffer(dst []float64, n int) []float64 {
	if dst == nil {
		return make([]float64, n)
	}
	if len(dst) != n {
		panic(badLength)
	}
	return dst
}

func checkLen(a, b []float64) {
	if len(a) != len(b) {
		panic(badLength)
	}
}

// Full returns a new column of length n filled with v.
func Full(n int, v float64) []float64 {
	c := make([]float64, n)
	for i := range c {
		c[i] = v
	}
	return c
}

// Add computes dst = s + t
func Add(dst, s, t []float64) []float64 {
	return floats.AddTo(buffer(dst, len(s)), s, t)
}

// Sub computes dst = s - t
func Sub(dst, s, t []float64) []float64 {
	return floats.SubTo(buffer(dst, len(s)), s, t)
}

// Mul computes dst = s * t
func Mul(dst, s, t []float64) []float64 {
	return floats.MulTo(buffer(dst, len(s)), s, t)
}

// Div computes dst = s / t. Division by zero follows IEEE 754.
func Div(dst, s, t []float64) []float64 {
	return floats.DivTo(buffer(dst, len(s)), s, t)
}

// Scale computes dst = c * s
func Scale(dst []float64, c float64, s []float64) []float64 {
	return floats.ScaleTo(buffer(dst, len(s)), c, s)
}

// AddConst computes dst = s + c
func AddConst(dst []float64, c float64, s []float64) []float64 {
	dst = buffer(dst, len(s))
	copy(dst, s)
	floats.AddConst(c, dst)
	return dst
}

// SubFromConst computes dst = c - s
func SubFromConst(dst []float64, c float64, s []float64) []float64 {
	dst = buffer(dst, len(s))
	for i, v := range s {
		dst[i] = c - v
	}
	return dst
}

// Sqrt computes dst = √s
func Sqrt(dst, s []float64) []float64 {
	return apply(dst, s, math.Sqrt)
}

// Abs computes dst = |s|
func Abs(dst, s []float64) []float64 {
	return apply(dst, s, math.Abs)
}

// Acos computes the elementwise arccosine; values outside [-1, 1] give NaN.
func Acos(dst, s []float64) []float64 {
	return apply(dst, s, math.Acos)
}

// Sign maps every element to -1, 0 or 1. NaN stays NaN.
func Sign(dst, s []float64) []float64 {
	return apply(dst, s, mathhelp.Sign[float64])
}

// Atan2 computes the elementwise two-argument arctangent of y and x.
func Atan2(dst, y, x []float64) []float64 {
	checkLen(y, x)
	dst = buffer(dst, len(y))
	for i := range y {
		dst[i] = math.Atan2(y[i], x[i])
	}
	return dst
}

// Clip limits every element to [lo, hi].
func Clip(dst, s []float64, lo, hi float64) []float64 {
	dst = buffer(dst, len(s))
	for i, v := range s {
		dst[i] = mathhelp.Clamp(v, lo, hi)
	}
	return dst
}

// FloorMod computes the elementwise modulo with the sign of m.
func FloorMod(dst, s []float64, m float64) []float64 {
	dst = buffer(dst, len(s))
	for i, v := range s {
		dst[i] = mathhelp.FloorMod(v, m)
	}
	return dst
}

func apply(dst, s []float64, fn func(float64) float64) []float64 {
	dst = buffer(dst, len(s))
	for i, v := range s {
		dst[i] = fn(v)
	}
	return dst
}
