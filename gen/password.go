package gen

import (
	"strings"

	"github.com/mzhao28/randcore/config"
	"github.com/mzhao28/randcore/gen/data"
	"github.com/mzhao28/randcore/numutil"
	"github.com/mzhao28/randcore/rng"
	"github.com/mzhao28/randcore/sampler"
)

const (
	lowerChars = "abcdefghijklmnopqrstuvwxyz"
	upperChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars = "0123456789"
)

// charsetVariant distinguishes the two password shapes. The decision is
// made once at call entry from which optional fields are set, then never
// re-probed.
type charsetVariant int

const (
	simpleCharset charsetVariant = iota
	proCharset
)

func passwordVariant(p Params) charsetVariant {
	if p.IncludeLower != nil || p.IncludeUpper != nil || p.IncludeDigits != nil ||
		p.IncludeSymbols != nil || p.ExcludeAmbiguous != nil || p.Exclude != nil ||
		p.EnsureEach != nil {
		return proCharset
	}
	return simpleCharset
}

// generatePassword produces one password string. Secret class. Every
// emptiness or infeasibility condition degrades with a warning instead of
// failing.
func generatePassword(s *rng.Sampler, p Params) (Result, error) {
	lim := config.Default()
	length := int(numutil.ClampInt(int64(intOr(p.Length, 12)), 1, int64(lim.MaxLength)))

	if passwordVariant(p) == simpleCharset {
		return simplePassword(s, p, length)
	}
	return proPassword(s, p, length)
}

// simplePassword draws every position uniformly from a single pool: a named
// charset, or an explicit custom one.
func simplePassword(s *rng.Sampler, p Params, length int) (Result, error) {
	var res Result

	pool := []rune(strOr(p.CustomCharset, ""))
	if len(pool) == 0 {
		pool = []rune(namedCharset(strOr(p.Charset, "alnum")))
	}
	if len(pool) == 0 {
		res.warnf("empty character pool; using lowercase letters")
		pool = []rune(lowerChars)
	}

	buf := make([]rune, length)
	for i := range buf {
		r, err := pickRune(s, pool)
		if err != nil {
			return Result{}, err
		}
		buf[i] = r
	}

	out := string(buf)
	if boolOr(p.GroupDash, false) {
		out = dashGroup(out, 4)
	}
	res.Values = []string{out}
	return res, nil
}

func namedCharset(name string) string {
	switch name {
	case "lower":
		return lowerChars
	case "upper":
		return upperChars
	case "digits":
		return digitChars
	case "alpha":
		return lowerChars + upperChars
	case "alnum":
		return lowerChars + upperChars + digitChars
	case "full":
		return lowerChars + upperChars + digitChars + data.Symbols()
	}
	return ""
}

func dashGroup(s string, every int) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && i%every == 0 {
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// proPassword builds the pool from explicit class toggles, with optional
// ambiguous-character and arbitrary exclusions. Defaults enable lower,
// upper and digits; symbols are opt-in.
func proPassword(s *rng.Sampler, p Params, length int) (Result, error) {
	var res Result

	type class struct {
		name  string
		runes []rune
	}
	var classes []class
	add := func(name, set string, enabled bool) {
		if enabled {
			classes = append(classes, class{name: name, runes: []rune(set)})
		}
	}
	add("lower", lowerChars, boolOr(p.IncludeLower, true))
	add("upper", upperChars, boolOr(p.IncludeUpper, true))
	add("digits", digitChars, boolOr(p.IncludeDigits, true))
	add("symbols", data.Symbols(), boolOr(p.IncludeSymbols, false))

	exclude := strOr(p.Exclude, "")
	if boolOr(p.ExcludeAmbiguous, false) {
		exclude += data.Ambiguous()
	}
	if exclude != "" {
		for i := range classes {
			classes[i].runes = filterRunes(classes[i].runes, exclude)
		}
	}

	var pool []rune
	kept := classes[:0]
	for _, c := range classes {
		if len(c.runes) == 0 {
			continue
		}
		kept = append(kept, c)
		pool = append(pool, c.runes...)
	}
	classes = kept

	if len(pool) == 0 {
		res.warnf("character classes over-constrained; using lowercase letters")
		classes = []class{{name: "lower", runes: []rune(lowerChars)}}
		pool = classes[0].runes
	}

	ensure := boolOr(p.EnsureEach, false)
	if ensure && length < len(classes) {
		res.warnf("length %d cannot cover %d character classes; coverage not guaranteed", length, len(classes))
		ensure = false
	}

	buf := make([]rune, 0, length)
	if ensure {
		for _, c := range classes {
			r, err := pickRune(s, c.runes)
			if err != nil {
				return Result{}, err
			}
			buf = append(buf, r)
		}
	}
	for len(buf) < length {
		r, err := pickRune(s, pool)
		if err != nil {
			return Result{}, err
		}
		buf = append(buf, r)
	}

	// The guaranteed class characters sit at the front of the buffer; a
	// final shuffle removes that positional bias.
	if err := sampler.Shuffle(s, len(buf), func(i, j int) {
		buf[i], buf[j] = buf[j], buf[i]
	}); err != nil {
		return Result{}, err
	}

	res.Values = []string{string(buf)}
	return res, nil
}

func filterRunes(set []rune, exclude string) []rune {
	out := make([]rune, 0, len(set))
	for _, r := range set {
		if !strings.ContainsRune(exclude, r) {
			out = append(out, r)
		}
	}
	return out
}

func pickRune(s *rng.Sampler, pool []rune) (rune, error) {
	i, err := s.IntInRange(0, int64(len(pool)-1))
	if err != nil {
		return 0, err
	}
	return pool[i], nil
}
