package gen

import (
	"unicode/utf8"

	"github.com/mzhao28/randcore/config"
	"github.com/mzhao28/randcore/gen/data"
	"github.com/mzhao28/randcore/numutil"
	"github.com/mzhao28/randcore/rng"
	"github.com/mzhao28/randcore/sampler"
)

// generateWord picks count words from the embedded word pool, optionally
// without repeats.
func generateWord(s *rng.Sampler, p Params) (Result, error) {
	lim := config.Default()
	words := data.Words()
	count := int(numutil.ClampInt(int64(intOr(p.Count, 1)), 1, int64(lim.MaxCount)))
	unique := boolOr(p.Unique, false)

	var res Result
	if unique && count > len(words) {
		res.warnf("unique selection impossible: %d words requested from %d available; repeats allowed", count, len(words))
		unique = false
	}

	if unique {
		idxs, err := sampler.UniqueIndices(s, len(words), count)
		if err != nil {
			return Result{}, err
		}
		res.Values = itemsAt(words, idxs)
		return res, nil
	}

	values := make([]string, 0, count)
	for i := 0; i < count; i++ {
		ix, err := s.IntInRange(0, int64(len(words)-1))
		if err != nil {
			return Result{}, err
		}
		values = append(values, words[ix])
	}
	res.Values = values
	return res, nil
}

// generateAlphabet picks count letters, uppercase when IncludeUpper is set.
func generateAlphabet(s *rng.Sampler, p Params) (Result, error) {
	lim := config.Default()
	count := int(numutil.ClampInt(int64(intOr(p.Count, 1)), 1, int64(lim.MaxCount)))

	letters := lowerChars
	if boolOr(p.IncludeUpper, false) {
		letters = upperChars
	}

	values := make([]string, 0, count)
	for i := 0; i < count; i++ {
		ix, err := s.IntInRange(0, int64(len(letters)-1))
		if err != nil {
			return Result{}, err
		}
		values = append(values, string(letters[ix]))
	}
	return Result{Values: values}, nil
}

// generateASCII produces one string of printable ASCII (0x21..0x7E).
// Default length 16.
func generateASCII(s *rng.Sampler, p Params) (Result, error) {
	lim := config.Default()
	length := int(numutil.ClampInt(int64(intOr(p.Length, 16)), 1, int64(lim.MaxLength)))

	buf := make([]byte, length)
	for i := range buf {
		v, err := s.IntInRange(0x21, 0x7E)
		if err != nil {
			return Result{}, err
		}
		buf[i] = byte(v)
	}
	return Result{Values: []string{string(buf)}}, nil
}

// generateUnicode draws count code points from [Min, Max] (defaults to the
// U+2600..U+26FF symbols block). Surrogate halves and invalid runes are
// redrawn.
func generateUnicode(s *rng.Sampler, p Params) (Result, error) {
	lim := config.Default()
	count := int(numutil.ClampInt(int64(intOr(p.Count, 1)), 1, int64(lim.MaxCount)))

	min := int64(numutil.ClampFloat(floatOr(p.Min, 0x2600), 0x20, 0x10FFFF))
	max := int64(numutil.ClampFloat(floatOr(p.Max, 0x26FF), 0x20, 0x10FFFF))
	if min > max {
		min, max = max, min
	}

	var res Result
	if min >= 0xD800 && max <= 0xDFFF {
		// Nothing but surrogate halves in range; redrawing would never end.
		res.warnf("code point range [%#x, %#x] holds no valid runes; using the symbols block", min, max)
		min, max = 0x2600, 0x26FF
	}

	values := make([]string, 0, count)
	codes := make([]int64, 0, count)
	for i := 0; i < count; i++ {
		var r rune
		for {
			v, err := s.IntInRange(min, max)
			if err != nil {
				return Result{}, err
			}
			r = rune(v)
			if utf8.ValidRune(r) {
				break
			}
		}
		values = append(values, string(r))
		codes = append(codes, int64(r))
	}

	res.Values = values
	res.setMeta("code_points", codes)
	return res, nil
}
