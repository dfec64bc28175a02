package percentile

import (
	"math"
	"reflect"
)

// Sanitize filters a raw sample collection into a clean []float64. The input
// must be a slice or array; elements may be values of any numeric kind
// (widened to float64), nil (dropped), or pointers/interfaces wrapping
// either. NaN values are dropped; infinities are kept. A non-numeric,
// non-nil element fails the whole call with a TypeError naming its kind.
//
// An input where every element was dropped yields an empty, non-nil slice
// and no error; enforcing non-emptiness is the caller's business rule.
func Sanitize(raw interface{}) ([]float64, error) {
	if raw == nil {
		return nil, &ShapeError{Kind: reflect.Invalid}
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, &ShapeError{Kind: rv.Kind()}
	}

	n := rv.Len()
	clean := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		f, ok, err := normalize(rv.Index(i))
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		clean = append(clean, f)
	}
	return clean, nil
}

// normalize widens one element to float64. ok is false for absent markers
// (nil values and NaN).
func normalize(v reflect.Value) (f float64, ok bool, err error) {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return 0, false, nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true, nil
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) {
			return 0, false, nil
		}
		return f, true, nil
	default:
		return 0, false, &TypeError{Kind: v.Kind()}
	}
}
