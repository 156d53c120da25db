// Package spatial holds the derived quantities that 2D and 3D vectors share regardless of whether
// they hold one vector (scalar mode, package vector) or a column of vectors (array mode, package
// vectorarray).
//
// The logic is written once against two small interfaces: Ops, the numeric engine of a mode, and
// Vector, the coordinate-and-dot capability of a concrete vector type. S is the numeric kind of a
// mode (float64 or []float64), B its boolean kind (bool or a mask).
package spatial

import (
	"errors"
	"math"
)

// DefaultTolerance is the tolerance of the parallel/opposite/perpendicular predicates.
const DefaultTolerance = 1e-10

// ErrNoOrdering is returned by every relational operator on vectors.
var ErrNoOrdering = errors.New("spatial vectors have no natural ordering")

// Ops is the numeric engine of a mode. Results are new values, except for AddInPlace which may
// reuse dst.
type Ops[S, B any] interface {
	Mul(a, b S) S
	Sub(a, b S) S
	AddInPlace(dst, s S) S
	AddConst(s S, c float64) S
	SubFromConst(c float64, s S) S
	Sqrt(s S) S
	Abs(s S) S
	FloorMod(s S, m float64) S
	Less(s S, c float64) B
}

// Azimuthal is anything that knows its azimuthal angle.
type Azimuthal[S any] interface {
	Phi() S
}

// Vector is what a concrete vector type supplies to Common.
type Vector[V, S any] interface {
	Azimuthal[S]
	X() S
	Y() S
	Dot(other V) S
	CosDelta(other V) S
}

// Common implements the mode-independent quantities for vector type V through the engine Ops.
type Common[S, B any, V Vector[V, S]] struct {
	Ops Ops[S, B]
}

// Mag2 returns v·v
func (c Common[S, B, V]) Mag2(v V) S {
	return v.Dot(v)
}

// Mag returns the magnitude |v|
func (c Common[S, B, V]) Mag(v V) S {
	return c.Ops.Sqrt(c.Mag2(v))
}

// Rho2 returns x²+y², ignoring any z component.
func (c Common[S, B, V]) Rho2(v V) S {
	out := c.Ops.Mul(v.X(), v.X())
	return c.Ops.AddInPlace(out, c.Ops.Mul(v.Y(), v.Y()))
}

// DeltaPhi returns φ(v) - φ(other) folded into [-π, π] as ((φ1 - φ2 + π) mod 2π) - π.
func (c Common[S, B, V]) DeltaPhi(v, other Azimuthal[S]) S {
	d := c.Ops.AddConst(c.Ops.Sub(v.Phi(), other.Phi()), math.Pi)
	return c.Ops.AddConst(c.Ops.FloorMod(d, 2*math.Pi), -math.Pi)
}

// IsParallel reports 1 - cos(Δ) < tolerance
func (c Common[S, B, V]) IsParallel(v, other V, tolerance float64) B {
	return c.Ops.Less(c.Ops.SubFromConst(1, v.CosDelta(other)), tolerance)
}

// IsAntiparallel reports cos(Δ) + 1 < tolerance
func (c Common[S, B, V]) IsAntiparallel(v, other V, tolerance float64) B {
	return c.Ops.Less(c.Ops.AddConst(v.CosDelta(other), 1), tolerance)
}

// IsCollinear reports 1 - |cos(Δ)| < tolerance
func (c Common[S, B, V]) IsCollinear(v, other V, tolerance float64) B {
	return c.Ops.Less(c.Ops.SubFromConst(1, c.Ops.Abs(v.CosDelta(other))), tolerance)
}

// Unordered is the result of every relational operator (Lt, Gt, Le, Ge) on a vector.
func Unordered() (bool, error) {
	return false, ErrNoOrdering
}
