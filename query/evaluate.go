package query

import (
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-spatial/geom"
	"github.com/iancoleman/strcase"
	"github.com/pdok/spatialvec/columnar"
	"github.com/pdok/spatialvec/spatial"
	"github.com/pdok/spatialvec/vector"
	"github.com/pdok/spatialvec/vectorarray"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Operations lists the names Evaluate understands, in their canonical form.
var Operations = []string{
	"mag", "mag2", "rho", "rho2", "phi", "unit",
	"add", "cosdelta", "angle", "deltaphi",
	"isparallel", "isantiparallel", "iscollinear", "isopposite", "isperpendicular",
}

// Options tune Evaluate. A zero Tolerance takes the default of spatial.DefaultTolerance.
type Options struct {
	Degrees   bool
	Tolerance float64 `default:"1e-10"`
}

// Results maps operation names to their outcome, in the order they were requested.
type Results = orderedmap.OrderedMap[string, any]

// operand is what both vectorarray.Vec2 and vectorarray.Vec3 offer.
type operand[V any] interface {
	spatial.Azimuthal[[]float64]
	Len() int
	Rows() [][]float64
	Mag() []float64
	Mag2() []float64
	Rho() []float64
	Rho2() []float64
	Unit() V
	Add(V) V
	CosDelta(V) []float64
	Angle(V, bool) []float64
	DeltaPhi(spatial.Azimuthal[[]float64]) []float64
	IsParallel(V, float64) columnar.Mask
	IsAntiparallel(V, float64) columnar.Mask
	IsCollinear(V, float64) columnar.Mask
	IsOpposite(V, float64) columnar.Mask
	IsPerpendicular(V, float64) columnar.Mask
}

// CanonicalName maps spellings like "CosDelta", "cos_delta" or "is-parallel" to the names in Operations.
func CanonicalName(op string) string {
	return strings.ReplaceAll(strcase.ToSnake(strings.TrimSpace(op)), "_", "")
}

// Evaluate runs the operations on the query, in array mode.
func Evaluate(q Query, ops []string, opts Options) (*Results, error) {
	if err := defaults.Set(&opts); err != nil {
		return nil, err
	}
	if q.Dim() == 2 {
		a, b := columns2(q.A), columns2(q.B)
		return evaluate(a, b, q.B != nil, ops, opts)
	}
	a, b := columns3(q.A), columns3(q.B)
	return evaluate(a, b, q.B != nil, ops, opts)
}

func evaluate[V operand[V]](a, b V, hasB bool, ops []string, opts Options) (*Results, error) {
	results := orderedmap.New[string, any]()
	for _, op := range ops {
		name := CanonicalName(op)
		if name == "" {
			continue
		}
		var out any
		switch name {
		case "mag":
			out = a.Mag()
		case "mag2":
			out = a.Mag2()
		case "rho":
			out = a.Rho()
		case "rho2":
			out = a.Rho2()
		case "phi":
			out = a.Phi()
		case "unit":
			out = a.Unit().Rows()
		default:
			if !isBinary(name) {
				return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
			}
			if !hasB {
				return nil, fmt.Errorf("%w: %q", ErrMissingOperand, op)
			}
			out = evaluateBinary(name, a, b, opts)
		}
		if m, ok := out.(columnar.Mask); ok {
			out = []bool(m)
		}
		results.Set(name, out)
	}
	return results, nil
}

func isBinary(name string) bool {
	switch name {
	case "add", "cosdelta", "angle", "deltaphi",
		"isparallel", "isantiparallel", "iscollinear", "isopposite", "isperpendicular":
		return true
	}
	return false
}

func evaluateBinary[V operand[V]](name string, a, b V, opts Options) any {
	switch name {
	case "add":
		return a.Add(b).Rows()
	case "cosdelta":
		return a.CosDelta(b)
	case "angle":
		return a.Angle(b, opts.Degrees)
	case "deltaphi":
		return a.DeltaPhi(b)
	case "isparallel":
		return a.IsParallel(b, opts.Tolerance)
	case "isantiparallel":
		return a.IsAntiparallel(b, opts.Tolerance)
	case "iscollinear":
		return a.IsCollinear(b, opts.Tolerance)
	case "isopposite":
		return a.IsOpposite(b, opts.Tolerance)
	default:
		return a.IsPerpendicular(b, opts.Tolerance)
	}
}

func columns2(rows [][]float64) vectorarray.Vec2 {
	mp := make(geom.MultiPoint, len(rows))
	for i, row := range rows {
		mp[i] = [2]float64{row[0], row[1]}
	}
	return vectorarray.FromMultiPoint(mp)
}

func columns3(rows [][]float64) vectorarray.Vec3 {
	vs := make([]vector.Vec3, len(rows))
	for i, row := range rows {
		vs[i] = vector.FromR3(r3.Vec{X: row[0], Y: row[1], Z: row[2]})
	}
	return vectorarray.FromVectors3(vs)
}
