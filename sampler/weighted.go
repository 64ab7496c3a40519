package sampler

import (
	"math"
	"sort"

	"github.com/mzhao28/randcore/rng"
)

// usableWeight reports whether w can contribute to a weighted draw.
// NaN, infinities and non-positive values contribute nothing.
func usableWeight(w float64) bool {
	return w > 0 && !math.IsInf(w, 1)
}

// WeightedPick selects one index with probability proportional to its
// weight via roulette selection over a prefix sum. If no weight is usable
// the pick degrades to a uniform one; that fallback is documented behavior,
// not an error.
func WeightedPick(s *rng.Sampler, weights []float64) (int, error) {
	if len(weights) == 0 {
		return 0, ErrInvalidArgument
	}

	var total float64
	for _, w := range weights {
		if usableWeight(w) {
			total += w
		}
	}
	if total <= 0 {
		idx, err := s.IntInRange(0, int64(len(weights)-1))
		return int(idx), err
	}

	target := total * s.Fraction()
	acc := 0.0
	last := 0
	for i, w := range weights {
		if !usableWeight(w) {
			continue
		}
		acc += w
		last = i
		if target < acc {
			return i, nil
		}
	}
	// Accumulated float error can leave target >= acc after the loop; the
	// last usable index absorbs that sliver.
	return last, nil
}

// WeightedWithoutReplacement selects up to k distinct indices with
// probability proportional to weight, using Efraimidis–Spirakis exponential
// keys: each usable item gets key -ln(U)/w and the k smallest keys win.
// This reproduces exact draw-and-remove semantics without the O(n*k)
// repeated removal. Items with unusable weights are never candidates; when
// fewer than k candidates exist, all of them are returned and the caller
// reports the shortfall.
func WeightedWithoutReplacement(s *rng.Sampler, weights []float64, k int) ([]int, error) {
	if k < 0 {
		return nil, ErrInvalidArgument
	}

	type keyed struct {
		idx int
		key float64
	}
	cands := make([]keyed, 0, len(weights))
	for i, w := range weights {
		if !usableWeight(w) {
			continue
		}
		u := s.Float64() // open interval, so the log is finite
		cands = append(cands, keyed{idx: i, key: -math.Log(u) / w})
	}

	sort.Slice(cands, func(a, b int) bool { return cands[a].key < cands[b].key })
	if k > len(cands) {
		k = len(cands)
	}
	out := make([]int, k)
	for i := 0; i < k; i++ {
		out[i] = cands[i].idx
	}
	return out, nil
}
