package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	l, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, 1000, l.MaxCount)
	assert.Equal(t, 256, l.MaxLength)
	assert.Equal(t, int64(1000000), l.MaxPoolMax)
	assert.Equal(t, int64(1000000), l.MaxPrime)
}

func TestParseEnvOverride(t *testing.T) {
	t.Setenv("RANDCORE_MAX_COUNT", "25")
	t.Setenv("RANDCORE_MAX_DICE_SIDES", "120")

	l, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, 25, l.MaxCount)
	assert.Equal(t, 120, l.MaxDiceSides)
}

func TestParseMalformed(t *testing.T) {
	t.Setenv("RANDCORE_MAX_COUNT", "not-a-number")
	_, err := Parse()
	assert.Error(t, err)
}

func TestDefaultIsStable(t *testing.T) {
	a := Default()
	b := Default()
	assert.Equal(t, a, b)
}
