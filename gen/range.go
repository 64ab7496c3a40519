package gen

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mzhao28/randcore/config"
	"github.com/mzhao28/randcore/numutil"
	"github.com/mzhao28/randcore/rng"
	"github.com/mzhao28/randcore/sampler"
)

// generateRange draws count numbers from the stepped inclusive range
// [min, max]. Defaults: min=1, max=100, count=1, step=1, precision=0.
func generateRange(s *rng.Sampler, p Params) (Result, error) {
	lim := config.Default()

	min := floatOr(p.Min, 1)
	max := floatOr(p.Max, 100)
	if math.IsInf(min, 0) || math.IsInf(max, 0) {
		return Result{}, fmt.Errorf("range endpoints must be finite: %w", rng.ErrInvalidRange)
	}
	if max < min {
		min, max = max, min
	}

	step := floatOr(p.Step, 1)
	if !(step > 0) || math.IsInf(step, 1) {
		step = 1
	}
	places := int32(numutil.ClampInt(int64(intOr(p.Precision, 0)), 0, int64(lim.MaxPrecision)))
	count := int(numutil.ClampInt(int64(intOr(p.Count, 1)), 1, int64(lim.MaxCount)))
	unique := boolOr(p.Unique, false)

	size := numutil.RangeSize(min, max, step)
	if size > 1<<53 {
		return Result{}, fmt.Errorf("range spans %d stepped values: %w", size, rng.ErrRangeTooLarge)
	}

	var res Result
	if unique && int64(count) > size {
		res.warnf("unique selection impossible: %d values requested from a range of %d; repeats allowed", count, size)
		unique = false
	}

	values := make([]string, 0, count)
	if unique {
		idxs, err := sampler.UniqueIndices(s, int(size), count)
		if err != nil {
			return Result{}, err
		}
		for _, ix := range idxs {
			values = append(values, formatNumber(numutil.ValueAtIndex(min, step, int64(ix), places), places))
		}
	} else {
		for i := 0; i < count; i++ {
			ix, err := s.IntInRange(0, size-1)
			if err != nil {
				return Result{}, err
			}
			values = append(values, formatNumber(numutil.ValueAtIndex(min, step, ix, places), places))
		}
	}

	res.Values = values
	return res, nil
}

func formatNumber(v float64, places int32) string {
	return strconv.FormatFloat(v, 'f', int(places), 64)
}
