package gen

import (
	"github.com/mzhao28/randcore/numutil"
	"github.com/mzhao28/randcore/rng"
)

// generateDigits produces a PIN-style digit string. Secret class: the draws
// come from the mandatory CSPRNG path. Defaults: length=4.
func generateDigits(s *rng.Sampler, p Params) (Result, error) {
	length := int(numutil.ClampInt(int64(intOr(p.Length, 4)), 1, 64))
	noLeadingZero := boolOr(p.NoLeadingZero, false)

	buf := make([]byte, length)
	for i := range buf {
		lo := int64(0)
		if noLeadingZero && i == 0 && length > 1 {
			lo = 1
		}
		d, err := s.IntInRange(lo, 9)
		if err != nil {
			return Result{}, err
		}
		buf[i] = byte('0' + d)
	}

	return Result{Values: []string{string(buf)}}, nil
}
