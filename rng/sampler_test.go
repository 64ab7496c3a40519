package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntInRangeBounds(t *testing.T) {
	s := NewSeeded(1)
	for i := 0; i < 10000; i++ {
		v, err := s.IntInRange(-7, 13)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, int64(-7))
		require.LessOrEqual(t, v, int64(13))
	}
}

func TestIntInRangeSingleValue(t *testing.T) {
	s := NewSeeded(2)
	v, err := s.IntInRange(42, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)
}

func TestIntInRangeSwapsReversedEndpoints(t *testing.T) {
	s := NewSeeded(3)
	for i := 0; i < 1000; i++ {
		v, err := s.IntInRange(9, 3)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, int64(3))
		require.LessOrEqual(t, v, int64(9))
	}
}

func TestIntInRangeFrequency(t *testing.T) {
	// Size-5 range over 10k draws: each value should land within 15%-25%.
	const draws = 10000
	s := NewSeeded(42)
	counts := make(map[int64]int)
	for i := 0; i < draws; i++ {
		v, err := s.IntInRange(1, 5)
		require.NoError(t, err)
		counts[v]++
	}
	require.Len(t, counts, 5)
	for v, c := range counts {
		freq := float64(c) / draws
		assert.GreaterOrEqual(t, freq, 0.15, "value %d underrepresented: %f", v, freq)
		assert.LessOrEqual(t, freq, 0.25, "value %d overrepresented: %f", v, freq)
	}
}

func TestIntInRangeBeyond32Bits(t *testing.T) {
	// Forces the 53-bit tier: size exceeds 2^32.
	s := NewSeeded(7)
	min := int64(0)
	max := int64(1) << 40
	for i := 0; i < 1000; i++ {
		v, err := s.IntInRange(min, max)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, min)
		require.LessOrEqual(t, v, max)
	}
}

func TestIntInRangeErrors(t *testing.T) {
	s := NewSeeded(9)

	_, err := s.IntInRange(MinSafeInt-1, 0)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = s.IntInRange(0, MaxSafeInt+1)
	assert.ErrorIs(t, err, ErrInvalidRange)

	// Full envelope: 2^54-1 values, beyond the 53-bit tier.
	_, err = s.IntInRange(MinSafeInt, MaxSafeInt)
	assert.ErrorIs(t, err, ErrRangeTooLarge)
}

func TestFloat64OpenInterval(t *testing.T) {
	s := NewSeeded(11)
	for i := 0; i < 10000; i++ {
		u := s.Float64()
		require.Greater(t, u, 0.0)
		require.Less(t, u, 1.0)
	}
}

func TestSeededDeterminism(t *testing.T) {
	a := NewSeeded(1234)
	b := NewSeeded(1234)
	for i := 0; i < 100; i++ {
		va, err := a.IntInRange(0, 1_000_000)
		require.NoError(t, err)
		vb, err := b.IntInRange(0, 1_000_000)
		require.NoError(t, err)
		require.Equal(t, va, vb)
	}
}

func TestNewSecretClass(t *testing.T) {
	// Platform entropy should be present under test.
	s, err := New(ClassSecret)
	require.NoError(t, err)
	v, err := s.IntInRange(0, 9)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v, int64(0))
	assert.LessOrEqual(t, v, int64(9))
}

func TestNewGeneralClassNeverFails(t *testing.T) {
	s, err := New(ClassGeneral)
	require.NoError(t, err)
	require.NotNil(t, s)
}
