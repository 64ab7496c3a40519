package gen

import "math"

// Pool describes one lottery drum: an inclusive value range and how many
// numbers to pick from it.
type Pool struct {
	Min  int64
	Max  int64
	Pick int
}

// Params is the all-optional, mode-specific configuration record. Nil
// fields take the documented per-mode defaults; set fields are clamped to
// the operational limits before any sampling occurs.
type Params struct {
	// Numeric range modes (range, percentage, coordinates, unicode,
	// temperature reuse Min/Max where noted).
	Min       *float64
	Max       *float64
	Count     *int
	Step      *float64
	Precision *int
	Unique    *bool

	// Digit / password modes.
	Length        *int
	NoLeadingZero *bool

	Charset          *string // simple variant: named charset
	CustomCharset    *string // simple variant: explicit character pool
	GroupDash        *bool   // simple variant: dash every 4 characters
	IncludeLower     *bool
	IncludeUpper     *bool
	IncludeDigits    *bool
	IncludeSymbols   *bool
	ExcludeAmbiguous *bool
	Exclude          *string // characters removed from every class
	EnsureEach       *bool   // at least one character per enabled class

	// Lottery.
	PoolA *Pool
	PoolB *Pool

	// List / shuffle / ticket.
	Items     []string
	Weights   []float64
	Tickets   []string // ticket: the full token pool
	Remaining []string // ticket: tokens still undrawn; nil means full pool

	// Dice.
	DiceSides *int
	DiceRolls *int
	DiceMod   *int
	DiceAdv   *string // "advantage" or "disadvantage"

	// Timestamp (unix seconds).
	From *int64
	To   *int64

	// Fraction.
	MaxDenominator *int
}

func intOr(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

func i64Or(p *int64, def int64) int64 {
	if p != nil {
		return *p
	}
	return def
}

func floatOr(p *float64, def float64) float64 {
	if p != nil && !math.IsNaN(*p) {
		return *p
	}
	return def
}

func boolOr(p *bool, def bool) bool {
	if p != nil {
		return *p
	}
	return def
}

func strOr(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}
