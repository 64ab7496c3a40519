package gen

import (
	"strconv"

	"github.com/mzhao28/randcore/config"
	"github.com/mzhao28/randcore/numutil"
	"github.com/mzhao28/randcore/rng"
)

// generateDice rolls dice uniformly in [1, sides]. Defaults: sides=6,
// rolls=1, modifier=0. Advantage/disadvantage is the 2-roll d20 special
// case: it applies only when sides==20 and rolls==1, keeps the max/min of
// two independent draws, and reports the discarded roll as a bonus value.
// The additive modifier applies to the total after resolution.
func generateDice(s *rng.Sampler, p Params) (Result, error) {
	lim := config.Default()

	sides := int64(numutil.ClampInt(int64(intOr(p.DiceSides, 6)), 2, int64(lim.MaxDiceSides)))
	rolls := int(numutil.ClampInt(int64(intOr(p.DiceRolls, 1)), 1, int64(lim.MaxDiceRolls)))
	modifier := intOr(p.DiceMod, 0)
	adv := strOr(p.DiceAdv, "")

	var res Result
	res.setMeta("modifier", modifier)

	if adv == "advantage" || adv == "disadvantage" {
		if sides == 20 && rolls == 1 {
			first, err := s.IntInRange(1, sides)
			if err != nil {
				return Result{}, err
			}
			second, err := s.IntInRange(1, sides)
			if err != nil {
				return Result{}, err
			}
			kept, dropped := first, second
			if (adv == "advantage") == (second > first) {
				kept, dropped = second, first
			}
			res.Values = []string{strconv.FormatInt(kept, 10)}
			res.Bonus = []string{strconv.FormatInt(dropped, 10)}
			res.setMeta("total", kept+int64(modifier))
			return res, nil
		}
		res.warnf("%s applies only to a single d20 roll; ignored", adv)
	}

	values := make([]string, 0, rolls)
	total := int64(0)
	for i := 0; i < rolls; i++ {
		v, err := s.IntInRange(1, sides)
		if err != nil {
			return Result{}, err
		}
		values = append(values, strconv.FormatInt(v, 10))
		total += v
	}
	res.Values = values
	res.setMeta("total", total+int64(modifier))
	return res, nil
}

// generateCoin flips count coins.
func generateCoin(s *rng.Sampler, p Params) (Result, error) {
	lim := config.Default()
	count := int(numutil.ClampInt(int64(intOr(p.Count, 1)), 1, int64(lim.MaxCount)))

	values := make([]string, 0, count)
	heads := 0
	for i := 0; i < count; i++ {
		v, err := s.IntInRange(0, 1)
		if err != nil {
			return Result{}, err
		}
		if v == 0 {
			values = append(values, "heads")
			heads++
		} else {
			values = append(values, "tails")
		}
	}

	var res Result
	res.Values = values
	res.setMeta("heads", heads)
	res.setMeta("tails", count-heads)
	return res, nil
}
