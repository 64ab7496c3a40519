package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzhao28/randcore/rng"
)

func TestTicketDrainsPoolExactly(t *testing.T) {
	pool := []string{"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8", "t9"}
	s := rng.NewSeeded(1)

	var remaining []string // nil: first call starts from the full pool
	drawn := make(map[string]int)
	for call := 0; call < 5; call++ {
		res, err := GenerateWith(s, ModeTicket, Params{
			Tickets:   pool,
			Remaining: remaining,
			Count:     iptr(2),
		})
		require.NoError(t, err)
		require.Len(t, res.Values, 2)
		for _, tok := range res.Values {
			drawn[tok]++
		}
		remaining = res.Meta["remaining"].([]string)
	}

	// All ten tokens drawn once each, none repeated, none omitted.
	require.Len(t, drawn, 10)
	for _, tok := range pool {
		assert.Equal(t, 1, drawn[tok], "token %s", tok)
	}
	assert.Empty(t, remaining)
}

func TestTicketExhaustedPoolWarns(t *testing.T) {
	res, err := GenerateWith(rng.NewSeeded(2), ModeTicket, Params{
		Tickets:   []string{"a", "b"},
		Remaining: []string{}, // non-nil empty: exhausted, not first call
	})
	require.NoError(t, err)
	assert.Empty(t, res.Values)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "exhausted")
	assert.Equal(t, []string{}, res.Meta["remaining"])
}

func TestTicketOverdrawClampsWithWarning(t *testing.T) {
	res, err := GenerateWith(rng.NewSeeded(3), ModeTicket, Params{
		Tickets: []string{"a", "b", "c"},
		Count:   iptr(10),
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, res.Values)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "only 3 remain")
	assert.Empty(t, res.Meta["remaining"])
}

func TestTicketStateIsCallerOwned(t *testing.T) {
	// Same inputs, independent calls: the core keeps no state between them.
	p := Params{
		Tickets: []string{"x", "y", "z"},
		Count:   iptr(1),
	}
	s := rng.NewSeeded(4)
	for i := 0; i < 10; i++ {
		res, err := GenerateWith(s, ModeTicket, p)
		require.NoError(t, err)
		require.Len(t, res.Values, 1)
		next := res.Meta["remaining"].([]string)
		assert.Len(t, next, 2)
	}
}

func TestTicketSkipsBlankTokens(t *testing.T) {
	res, err := GenerateWith(rng.NewSeeded(5), ModeTicket, Params{
		Tickets: []string{"a", " ", "", "b"},
		Count:   iptr(2),
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, res.Values)
}
