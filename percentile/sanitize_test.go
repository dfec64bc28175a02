package percentile

import (
	"math"
	"reflect"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeWidensNumericKinds(t *testing.T) {
	got, err := Sanitize([]interface{}{1, int8(2), int32(3), int64(4), uint(5), uint16(6), float32(7.5), 8.25})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7.5, 8.25}, got)
}

func TestSanitizeAcceptsTypedSlices(t *testing.T) {
	got, err := Sanitize([]int{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, got)

	got, err = Sanitize([3]float64{1.5, 2.5, 3.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, got)
}

func TestSanitizeDropsNils(t *testing.T) {
	got, err := Sanitize([]interface{}{1.0, nil, 2.0, nil, 3.0})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)
}

func TestSanitizeDropsNaN(t *testing.T) {
	got, err := Sanitize([]float64{1, math.NaN(), 2, math.NaN(), 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)
}

func TestSanitizeKeepsInfinities(t *testing.T) {
	got, err := Sanitize([]float64{1, math.Inf(1), math.Inf(-1)})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, math.Inf(1), math.Inf(-1)}, got)
}

func TestSanitizePointerElements(t *testing.T) {
	v := 4.5
	var absent *float64
	got, err := Sanitize([]*float64{&v, absent})
	require.NoError(t, err)
	assert.Equal(t, []float64{4.5}, got)
}

func TestSanitizeAllDroppedReturnsEmpty(t *testing.T) {
	got, err := Sanitize([]interface{}{nil, math.NaN(), nil})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSanitizeRejectsNonNumericElement(t *testing.T) {
	_, err := Sanitize([]interface{}{1, 2, "three", 4})
	var te *TypeError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, reflect.String, te.Kind)
	assert.Contains(t, err.Error(), "string")

	_, err = Sanitize([]interface{}{1, map[string]int{}, 2})
	require.True(t, errors.As(err, &te))
	assert.Equal(t, reflect.Map, te.Kind)
}

func TestSanitizeRejectsNonSequence(t *testing.T) {
	for _, raw := range []interface{}{42, "nope", map[string]float64{}, nil} {
		_, err := Sanitize(raw)
		var se *ShapeError
		require.Truef(t, errors.As(err, &se), "input %#v", raw)
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	once, err := Sanitize([]interface{}{1, nil, 2.5, math.NaN(), 3})
	require.NoError(t, err)
	twice, err := Sanitize(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}
