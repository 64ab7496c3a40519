package sampler

import "github.com/mzhao28/randcore/rng"

// Shuffle applies an in-place Fisher–Yates permutation over n elements,
// swapping from the last index down to 1. Every permutation is equally
// likely because each swap target comes from an unbiased bounded draw.
func Shuffle(s *rng.Sampler, n int, swap func(i, j int)) error {
	for i := n - 1; i >= 1; i-- {
		j, err := s.IntInRange(0, int64(i))
		if err != nil {
			return err
		}
		swap(i, int(j))
	}
	return nil
}

// ShuffleStrings shuffles a string slice in place.
func ShuffleStrings(s *rng.Sampler, xs []string) error {
	return Shuffle(s, len(xs), func(i, j int) {
		xs[i], xs[j] = xs[j], xs[i]
	})
}
