package percentile

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyData is returned when no numeric values survive sanitization.
	ErrEmptyData = errors.New("no valid numeric data")

	// ErrFractionRange is returned for quantile fractions outside [0, 1].
	ErrFractionRange = errors.New("quantile fraction out of range [0, 1]")

	// ErrUnknownStrategy is returned for strategy names this package does not provide.
	ErrUnknownStrategy = errors.New("unknown selection strategy")
)

// ShapeError reports an input that is not a sequence of values.
type ShapeError struct {
	Kind reflect.Kind
}

func (e *ShapeError) Error() string {
	if e.Kind == reflect.Invalid {
		return "expected a sequence of values, got nil"
	}
	return fmt.Sprintf("expected a sequence of values, got %s", e.Kind)
}

// TypeError reports a sequence element that is neither numeric nor an
// absent marker.
type TypeError struct {
	Kind reflect.Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("values must be numeric or nil, got %s", e.Kind)
}
