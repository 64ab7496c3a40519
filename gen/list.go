package gen

import (
	"github.com/mzhao28/randcore/config"
	"github.com/mzhao28/randcore/numutil"
	"github.com/mzhao28/randcore/rng"
	"github.com/mzhao28/randcore/sampler"
)

// generateList picks count items, optionally weighted, optionally without
// replacement. Picked subsets are shuffled before returning so the output
// order reveals nothing about selection order.
func generateList(s *rng.Sampler, p Params) (Result, error) {
	lim := config.Default()

	items, weights := numutil.NormalizeItems(capItems(p.Items, lim.MaxItems), p.Weights)
	var res Result
	if len(items) == 0 {
		res.warnf("no usable items supplied")
		return res, nil
	}
	if len(p.Weights) > 0 && weights == nil {
		res.warnf("no strictly positive weights; picking uniformly")
	}

	count := int(numutil.ClampInt(int64(intOr(p.Count, 1)), 1, int64(lim.MaxCount)))
	unique := boolOr(p.Unique, false)

	var picked []string
	switch {
	case unique && weights != nil:
		idxs, err := sampler.WeightedWithoutReplacement(s, weights, count)
		if err != nil {
			return Result{}, err
		}
		if len(idxs) < count {
			res.warnf("only %d of %d requested items had positive weight", len(idxs), count)
		}
		picked = itemsAt(items, idxs)

	case unique:
		if count > len(items) {
			res.warnf("unique selection impossible: %d items requested from %d; returning all", count, len(items))
			count = len(items)
		}
		idxs, err := sampler.UniqueIndices(s, len(items), count)
		if err != nil {
			return Result{}, err
		}
		picked = itemsAt(items, idxs)

	case weights != nil:
		picked = make([]string, 0, count)
		for i := 0; i < count; i++ {
			ix, err := sampler.WeightedPick(s, weights)
			if err != nil {
				return Result{}, err
			}
			picked = append(picked, items[ix])
		}

	default:
		picked = make([]string, 0, count)
		for i := 0; i < count; i++ {
			ix, err := s.IntInRange(0, int64(len(items)-1))
			if err != nil {
				return Result{}, err
			}
			picked = append(picked, items[ix])
		}
	}

	if unique {
		if err := sampler.ShuffleStrings(s, picked); err != nil {
			return Result{}, err
		}
	}
	res.Values = picked
	return res, nil
}

// generateShuffle returns a uniformly random permutation of the items.
func generateShuffle(s *rng.Sampler, p Params) (Result, error) {
	lim := config.Default()
	items, _ := numutil.NormalizeItems(capItems(p.Items, lim.MaxItems), nil)

	var res Result
	if len(items) == 0 {
		res.warnf("no usable items supplied")
		return res, nil
	}

	out := make([]string, len(items))
	copy(out, items)
	if err := sampler.ShuffleStrings(s, out); err != nil {
		return Result{}, err
	}
	res.Values = out
	return res, nil
}

func capItems(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}

func itemsAt(items []string, idxs []int) []string {
	out := make([]string, len(idxs))
	for i, ix := range idxs {
		out[i] = items[ix]
	}
	return out
}
