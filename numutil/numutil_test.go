package numutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampInt(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi int64
		want      int64
	}{
		{"inside", 5, 1, 10, 5},
		{"below", -3, 1, 10, 1},
		{"above", 99, 1, 10, 10},
		{"at low edge", 1, 1, 10, 1},
		{"at high edge", 10, 1, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampInt(tt.v, tt.lo, tt.hi))
		})
	}
}

func TestClampFloatNaN(t *testing.T) {
	assert.Equal(t, 1.0, ClampFloat(math.NaN(), 1, 10))
}

func TestRangeSize(t *testing.T) {
	tests := []struct {
		name           string
		min, max, step float64
		want           int64
	}{
		{"unit step", 1, 100, 1, 100},
		{"single value", 5, 5, 1, 1},
		{"reversed endpoints", 10, 1, 1, 10},
		{"fractional step", 0, 1, 0.1, 11},
		{"step larger than span", 1, 3, 5, 1},
		{"bad step falls back", 1, 10, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangeSize(tt.min, tt.max, tt.step))
		})
	}
}

func TestValueAtIndexExactSteps(t *testing.T) {
	// 0.1 steps must not accumulate binary float drift.
	for i := int64(0); i <= 10; i++ {
		got := ValueAtIndex(0, 0.1, i, 1)
		assert.Equal(t, float64(i)/10, got, "index %d", i)
	}
	assert.Equal(t, 7.0, ValueAtIndex(1, 2, 3, 0))
}

func TestRoundToPrecision(t *testing.T) {
	assert.Equal(t, 3.14, RoundToPrecision(3.14159, 2))
	assert.Equal(t, 3.0, RoundToPrecision(2.5, 0))
	assert.Equal(t, 0.0, RoundToPrecision(math.Inf(1), 2))
}

func TestNormalizeItemsTrimsAndDrops(t *testing.T) {
	items, weights := NormalizeItems(
		[]string{" apple ", "", "banana", "   ", "cherry"},
		[]float64{2, 5, math.NaN(), 1, -4},
	)
	assert.Equal(t, []string{"apple", "banana", "cherry"}, items)
	// NaN and negative weights default to 1; weights paired with dropped
	// items vanish with them.
	assert.Equal(t, []float64{2, 1, 1}, weights)
}

func TestNormalizeItemsNoWeights(t *testing.T) {
	items, weights := NormalizeItems([]string{"a", "b"}, nil)
	assert.Equal(t, []string{"a", "b"}, items)
	assert.Nil(t, weights)
}

func TestNormalizeItemsAllZeroWeightsDiscarded(t *testing.T) {
	items, weights := NormalizeItems([]string{"a", "b"}, []float64{0, 0})
	assert.Equal(t, []string{"a", "b"}, items)
	assert.Nil(t, weights)
}
