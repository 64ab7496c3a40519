package gen

import (
	"sort"
	"strconv"

	"github.com/mzhao28/randcore/config"
	"github.com/mzhao28/randcore/numutil"
	"github.com/mzhao28/randcore/rng"
	"github.com/mzhao28/randcore/sampler"
)

// generateLottery draws from two fully independent pools. Defaults mirror a
// common 5+1 format: pool A 1..69 pick 5, pool B 1..26 pick 1. Pick 0
// disables a pool. Each pool's result is sorted ascending independently.
func generateLottery(s *rng.Sampler, p Params) (Result, error) {
	poolA := Pool{Min: 1, Max: 69, Pick: 5}
	if p.PoolA != nil {
		poolA = *p.PoolA
	}
	poolB := Pool{Min: 1, Max: 26, Pick: 1}
	if p.PoolB != nil {
		poolB = *p.PoolB
	}

	var res Result
	valuesA, err := drawPool(s, poolA, &res)
	if err != nil {
		return Result{}, err
	}
	valuesB, err := drawPool(s, poolB, &res)
	if err != nil {
		return Result{}, err
	}

	res.Values = formatInts(valuesA)
	res.Bonus = formatInts(valuesB)
	res.setMeta("pool_a", valuesA)
	res.setMeta("pool_b", valuesB)
	return res, nil
}

// drawPool draws pick numbers from one drum, without replacement when the
// pool is large enough, with replacement (plus a warning) otherwise.
func drawPool(s *rng.Sampler, pool Pool, res *Result) ([]int64, error) {
	lim := config.Default()

	min := numutil.ClampInt(pool.Min, 0, lim.MaxPoolMax)
	max := numutil.ClampInt(pool.Max, 0, lim.MaxPoolMax)
	if max < min {
		min, max = max, min
	}
	pick := int(numutil.ClampInt(int64(pool.Pick), 0, int64(lim.MaxCount)))
	if pick == 0 {
		return nil, nil
	}

	size := max - min + 1
	values := make([]int64, 0, pick)
	if int64(pick) <= size {
		idxs, err := sampler.UniqueIndices(s, int(size), pick)
		if err != nil {
			return nil, err
		}
		for _, ix := range idxs {
			values = append(values, min+int64(ix))
		}
	} else {
		res.warnf("pick %d exceeds pool size %d; repeats allowed", pick, size)
		for i := 0; i < pick; i++ {
			v, err := s.IntInRange(min, max)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
	}

	sort.Slice(values, func(a, b int) bool { return values[a] < values[b] })
	return values, nil
}

func formatInts(vs []int64) []string {
	if len(vs) == 0 {
		return nil
	}
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = strconv.FormatInt(v, 10)
	}
	return out
}
