package gen

import (
	"strings"

	"github.com/mzhao28/randcore/config"
	"github.com/mzhao28/randcore/numutil"
	"github.com/mzhao28/randcore/rng"
	"github.com/mzhao28/randcore/sampler"
)

// generateTicket draws without replacement across independent calls. The
// remaining pool is caller-owned state: it arrives as a parameter and the
// next state is returned under Meta["remaining"], never cached inside the
// core. A nil Remaining means the first call and starts from the full
// pool; a non-nil empty Remaining means the pool is exhausted.
func generateTicket(s *rng.Sampler, p Params) (Result, error) {
	lim := config.Default()

	var remaining []string
	if p.Remaining == nil {
		remaining = cleanTokens(p.Tickets, lim.MaxItems)
	} else {
		remaining = cleanTokens(p.Remaining, lim.MaxItems)
	}

	var res Result
	if len(remaining) == 0 {
		res.warnf("ticket pool exhausted")
		res.setMeta("remaining", []string{})
		return res, nil
	}

	count := int(numutil.ClampInt(int64(intOr(p.Count, 1)), 1, int64(lim.MaxCount)))
	if count > len(remaining) {
		res.warnf("%d tickets requested but only %d remain; drawing all", count, len(remaining))
		count = len(remaining)
	}

	idxs, err := sampler.UniqueIndices(s, len(remaining), count)
	if err != nil {
		return Result{}, err
	}

	drawnSet := make(map[int]struct{}, len(idxs))
	drawn := make([]string, 0, count)
	for _, ix := range idxs {
		drawnSet[ix] = struct{}{}
		drawn = append(drawn, remaining[ix])
	}
	if err := sampler.ShuffleStrings(s, drawn); err != nil {
		return Result{}, err
	}

	next := make([]string, 0, len(remaining)-count)
	for i, tok := range remaining {
		if _, hit := drawnSet[i]; !hit {
			next = append(next, tok)
		}
	}

	res.Values = drawn
	res.setMeta("remaining", next)
	return res, nil
}

func cleanTokens(tokens []string, max int) []string {
	out := make([]string, 0, len(tokens))
	for _, raw := range tokens {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			continue
		}
		out = append(out, tok)
		if len(out) == max {
			break
		}
	}
	return out
}
