package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzhao28/randcore/gen/data"
	"github.com/mzhao28/randcore/rng"
)

func TestPasswordEnsureEachCoversAllClasses(t *testing.T) {
	p := Params{
		Length:         iptr(20),
		IncludeLower:   bptr(true),
		IncludeUpper:   bptr(true),
		IncludeDigits:  bptr(true),
		IncludeSymbols: bptr(true),
		EnsureEach:     bptr(true),
	}
	s := rng.NewSeeded(42)
	for i := 0; i < 100; i++ {
		res, err := GenerateWith(s, ModePassword, p)
		require.NoError(t, err)
		require.Len(t, res.Values, 1)
		pw := res.Values[0]
		require.Len(t, pw, 20)

		assert.True(t, strings.ContainsAny(pw, lowerChars), "no lowercase in %q", pw)
		assert.True(t, strings.ContainsAny(pw, upperChars), "no uppercase in %q", pw)
		assert.True(t, strings.ContainsAny(pw, digitChars), "no digit in %q", pw)
		assert.True(t, strings.ContainsAny(pw, data.Symbols()), "no symbol in %q", pw)
		assert.Empty(t, res.Warnings)
	}
}

func TestPasswordSimpleDefaults(t *testing.T) {
	res, err := GenerateWith(rng.NewSeeded(1), ModePassword, Params{})
	require.NoError(t, err)
	require.Len(t, res.Values, 1)
	pw := res.Values[0]
	assert.Len(t, pw, 12)
	for _, r := range pw {
		assert.True(t, strings.ContainsRune(lowerChars+upperChars+digitChars, r),
			"unexpected character %q", r)
	}
}

func TestPasswordSimpleDashGrouping(t *testing.T) {
	res, err := GenerateWith(rng.NewSeeded(2), ModePassword, Params{
		Length:    iptr(12),
		GroupDash: bptr(true),
	})
	require.NoError(t, err)
	// 12 characters in groups of 4: xxxx-xxxx-xxxx.
	assert.Equal(t, 14, len(res.Values[0]))
	parts := strings.Split(res.Values[0], "-")
	require.Len(t, parts, 3)
	for _, part := range parts {
		assert.Len(t, part, 4)
	}
}

func TestPasswordSimpleCustomCharset(t *testing.T) {
	res, err := GenerateWith(rng.NewSeeded(3), ModePassword, Params{
		Length:        iptr(30),
		CustomCharset: sptr("abc"),
	})
	require.NoError(t, err)
	for _, r := range res.Values[0] {
		assert.Contains(t, "abc", string(r))
	}
}

func TestPasswordProExcludesAmbiguous(t *testing.T) {
	s := rng.NewSeeded(4)
	for i := 0; i < 50; i++ {
		res, err := GenerateWith(s, ModePassword, Params{
			Length:           iptr(32),
			ExcludeAmbiguous: bptr(true),
		})
		require.NoError(t, err)
		assert.False(t, strings.ContainsAny(res.Values[0], data.Ambiguous()),
			"ambiguous character in %q", res.Values[0])
	}
}

func TestPasswordProExcludeList(t *testing.T) {
	s := rng.NewSeeded(5)
	res, err := GenerateWith(s, ModePassword, Params{
		Length:        iptr(64),
		IncludeUpper:  bptr(false),
		IncludeDigits: bptr(false),
		Exclude:       sptr("abcdefghijklm"),
	})
	require.NoError(t, err)
	for _, r := range res.Values[0] {
		assert.True(t, r >= 'n' && r <= 'z', "excluded character %q leaked", r)
	}
}

func TestPasswordOverConstrainedFallsBack(t *testing.T) {
	res, err := GenerateWith(rng.NewSeeded(6), ModePassword, Params{
		Length:        iptr(10),
		IncludeUpper:  bptr(false),
		IncludeDigits: bptr(false),
		Exclude:       sptr(lowerChars),
	})
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "over-constrained")
	require.Len(t, res.Values, 1)
	assert.Len(t, res.Values[0], 10)
}

func TestPasswordEnsureEachInfeasibleLength(t *testing.T) {
	res, err := GenerateWith(rng.NewSeeded(7), ModePassword, Params{
		Length:         iptr(2),
		IncludeLower:   bptr(true),
		IncludeUpper:   bptr(true),
		IncludeDigits:  bptr(true),
		IncludeSymbols: bptr(true),
		EnsureEach:     bptr(true),
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Warnings)
	assert.Len(t, res.Values[0], 2)
}
