// Package numutil holds the numeric guard rails applied to generator
// parameters before any sampling happens, so the sampling primitives can
// assume well-formed integer input.
package numutil

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ClampInt bounds v to the inclusive range [lo, hi].
func ClampInt(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampFloat bounds v to the inclusive range [lo, hi]. NaN clamps to lo.
func ClampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RangeSize returns the number of stepped values in the inclusive range
// [min, max] with the given step. Reversed endpoints are swapped; a
// non-positive or non-finite step falls back to 1.
func RangeSize(min, max, step float64) int64 {
	if max < min {
		min, max = max, min
	}
	if !(step > 0) || math.IsInf(step, 1) {
		step = 1
	}
	span := (max - min) / step
	if span >= float64(math.MaxInt64) {
		return math.MaxInt64
	}
	// Division in binary floats can land a hair under the exact quotient
	// (1/0.1 is 9.999...), which would drop the top stepped value.
	return int64(math.Floor(span+1e-9)) + 1
}

// ValueAtIndex returns min + index*step rounded to the given number of
// decimal places. The arithmetic runs in decimal space so stepped ranges
// like 0.1 do not accumulate binary float drift.
func ValueAtIndex(min, step float64, index int64, places int32) float64 {
	v := decimal.NewFromFloat(min).
		Add(decimal.NewFromFloat(step).Mul(decimal.NewFromInt(index)))
	f, _ := v.Round(places).Float64()
	return f
}

// RoundToPrecision rounds v half-up to the given number of decimal places.
func RoundToPrecision(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// NormalizeItems trims items and drops empty ones together with their
// paired weight. When a weight vector is supplied, missing or invalid
// entries default to 1; if nothing strictly positive survives, the whole
// vector is discarded and the caller falls back to uniform picking.
func NormalizeItems(items []string, weights []float64) ([]string, []float64) {
	useWeights := len(weights) > 0
	outItems := make([]string, 0, len(items))
	var outWeights []float64
	if useWeights {
		outWeights = make([]float64, 0, len(items))
	}

	for i, raw := range items {
		item := strings.TrimSpace(raw)
		if item == "" {
			continue
		}
		outItems = append(outItems, item)
		if !useWeights {
			continue
		}
		w := 1.0
		if i < len(weights) {
			if v := weights[i]; v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v) {
				w = v
			}
		}
		outWeights = append(outWeights, w)
	}

	if useWeights {
		anyPositive := false
		for _, w := range outWeights {
			if w > 0 {
				anyPositive = true
				break
			}
		}
		if !anyPositive {
			outWeights = nil
		}
	}
	return outItems, outWeights
}
