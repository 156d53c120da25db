// Package query evaluates named vector operations over columns of vectors given as JSON:
//
//	{"a": [[3, 4, 0], [1, 0, 0]], "b": [[4, 3, 0], [-1, 0, 0]]}
//
// All vectors of a query share one dimension (2 or 3); "b" is only needed for binary operations
// and must then have as many vectors as "a".
package query

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/perimeterx/marshmallow"
)

var (
	ErrUnknownKey       = errors.New("unknown key in query")
	ErrUnknownOperation = errors.New("unknown operation")
	ErrMissingOperand   = errors.New(`operation needs operand "b"`)
	ErrDimension        = errors.New("vectors must all have the same dimension (2 or 3)")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Query holds the operands, one row per vector.
type Query struct {
	A [][]float64 `validate:"required,min=1,dive,min=2,max=3" json:"a"`
	B [][]float64 `validate:"omitempty,dive,min=2,max=3" json:"b,omitempty"`
}

// Parse decodes and validates a query document. Unknown keys are rejected.
func Parse(data []byte) (Query, error) {
	var q Query
	unknown, err := marshmallow.Unmarshal(data, &q, marshmallow.WithExcludeKnownFieldsFromMap(true))
	if err != nil {
		return q, err
	}
	if len(unknown) > 0 {
		keys := make([]string, 0, len(unknown))
		for k := range unknown {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return q, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err = validate.Struct(q); err != nil {
		return q, err
	}
	if err = q.checkDimension(); err != nil {
		return q, err
	}
	return q, nil
}

// Dim returns the dimension of the vectors in the query.
func (q Query) Dim() int {
	return len(q.A[0])
}

func (q Query) checkDimension() error {
	dim := q.Dim()
	for _, rows := range [][][]float64{q.A, q.B} {
		for i, row := range rows {
			if len(row) != dim {
				return fmt.Errorf("%w: vector %d has %d components, expected %d", ErrDimension, i, len(row), dim)
			}
		}
	}
	if q.B != nil && len(q.B) != len(q.A) {
		return fmt.Errorf(`operands "a" and "b" differ in length: %d vs %d`, len(q.A), len(q.B))
	}
	return nil
}
