// Package sampler builds derived sampling operations (distinct subsets,
// weighted picks, shuffles) on top of the rng uniform sampler.
package sampler

import (
	"errors"

	"github.com/mzhao28/randcore/rng"
)

// ErrInvalidArgument reports a structurally impossible sampling request,
// such as asking for more distinct indices than the population holds.
var ErrInvalidArgument = errors.New("sampler: invalid argument")

// UniqueIndices draws k distinct indices from [0, n) using Floyd's
// algorithm: O(k) time and memory regardless of n, so the population is
// never materialized. The returned indices carry no ordering guarantee;
// callers sort or shuffle separately.
func UniqueIndices(s *rng.Sampler, n, k int) ([]int, error) {
	if n < 0 || k < 0 || k > n {
		return nil, ErrInvalidArgument
	}

	chosen := make(map[int]struct{}, k)
	out := make([]int, 0, k)
	for j := n - k; j < n; j++ {
		t64, err := s.IntInRange(0, int64(j))
		if err != nil {
			return nil, err
		}
		t := int(t64)
		if _, dup := chosen[t]; dup {
			t = j
		}
		chosen[t] = struct{}{}
		out = append(out, t)
	}
	return out, nil
}
