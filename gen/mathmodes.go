package gen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mzhao28/randcore/config"
	"github.com/mzhao28/randcore/numutil"
	"github.com/mzhao28/randcore/rng"
	"github.com/mzhao28/randcore/sampler"
)

// generateFraction produces a reduced proper fraction with a bounded
// denominator. Defaults: denominator in [2, 10].
func generateFraction(s *rng.Sampler, p Params) (Result, error) {
	maxDen := numutil.ClampInt(int64(intOr(p.MaxDenominator, 10)), 2, 1000)

	den, err := s.IntInRange(2, maxDen)
	if err != nil {
		return Result{}, err
	}
	num, err := s.IntInRange(1, den-1)
	if err != nil {
		return Result{}, err
	}
	g := gcd(num, den)
	num, den = num/g, den/g

	var res Result
	res.Values = []string{fmt.Sprintf("%d/%d", num, den)}
	res.setMeta("decimal", float64(num)/float64(den))
	return res, nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// generatePercentage draws a value in [0, 100] with the requested number of
// decimal places (default 0).
func generatePercentage(s *rng.Sampler, p Params) (Result, error) {
	lim := config.Default()
	places := numutil.ClampInt(int64(intOr(p.Precision, 0)), 0, int64(lim.MaxPrecision))

	scale := int64(1)
	for i := int64(0); i < places; i++ {
		scale *= 10
	}
	raw, err := s.IntInRange(0, 100*scale)
	if err != nil {
		return Result{}, err
	}
	v := float64(raw) / float64(scale)

	var res Result
	res.Values = []string{strconv.FormatFloat(v, 'f', int(places), 64) + "%"}
	res.setMeta("value", v)
	return res, nil
}

// generatePrime picks count primes uniformly from [min, max]. The prime
// pool is never materialized as candidates; a sieve builds it and the
// unique-index sampler picks from it. Defaults: [2, 100], count=1.
func generatePrime(s *rng.Sampler, p Params) (Result, error) {
	lim := config.Default()

	min := int64(numutil.ClampFloat(floatOr(p.Min, 2), 2, float64(lim.MaxPrime)))
	max := int64(numutil.ClampFloat(floatOr(p.Max, 100), 2, float64(lim.MaxPrime)))
	if max < min {
		min, max = max, min
	}
	count := int(numutil.ClampInt(int64(intOr(p.Count, 1)), 1, int64(lim.MaxCount)))
	unique := boolOr(p.Unique, false)

	primes := primesInRange(min, max)
	var res Result
	if len(primes) == 0 {
		res.warnf("no primes in [%d, %d]", min, max)
		return res, nil
	}

	if unique && count > len(primes) {
		res.warnf("unique selection impossible: %d primes requested from %d available; repeats allowed", count, len(primes))
		unique = false
	}

	values := make([]int64, 0, count)
	if unique {
		idxs, err := sampler.UniqueIndices(s, len(primes), count)
		if err != nil {
			return Result{}, err
		}
		for _, ix := range idxs {
			values = append(values, primes[ix])
		}
	} else {
		for i := 0; i < count; i++ {
			ix, err := s.IntInRange(0, int64(len(primes)-1))
			if err != nil {
				return Result{}, err
			}
			values = append(values, primes[ix])
		}
	}

	res.Values = formatInts(values)
	return res, nil
}

// primesInRange sieves [2, hi] and keeps the primes at or above lo.
func primesInRange(lo, hi int64) []int64 {
	if hi < 2 {
		return nil
	}
	composite := make([]bool, hi+1)
	var primes []int64
	for n := int64(2); n <= hi; n++ {
		if composite[n] {
			continue
		}
		if n >= lo {
			primes = append(primes, n)
		}
		for m := n * n; m <= hi && m > 0; m += n {
			composite[m] = true
		}
	}
	return primes
}

var romanTable = []struct {
	value  int64
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// generateRoman draws an integer in [1, 3999] (clamped from Min/Max) and
// renders it as a Roman numeral; the integer value goes in Meta.
func generateRoman(s *rng.Sampler, p Params) (Result, error) {
	min := int64(numutil.ClampFloat(floatOr(p.Min, 1), 1, 3999))
	max := int64(numutil.ClampFloat(floatOr(p.Max, 3999), 1, 3999))

	v, err := s.IntInRange(min, max)
	if err != nil {
		return Result{}, err
	}

	var res Result
	res.Values = []string{romanNumeral(v)}
	res.setMeta("value", v)
	return res, nil
}

func romanNumeral(n int64) string {
	var b strings.Builder
	for _, e := range romanTable {
		for n >= e.value {
			b.WriteString(e.symbol)
			n -= e.value
		}
	}
	return b.String()
}
