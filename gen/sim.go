package gen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mzhao28/randcore/gen/data"
	"github.com/mzhao28/randcore/numutil"
	"github.com/mzhao28/randcore/rng"
)

// generateTemperature draws a temperature in [Min, Max] Celsius (defaults
// -30..45) with one decimal, reporting Fahrenheit in Meta.
func generateTemperature(s *rng.Sampler, p Params) (Result, error) {
	min := numutil.ClampFloat(floatOr(p.Min, -30), -273.15, 1000)
	max := numutil.ClampFloat(floatOr(p.Max, 45), -273.15, 1000)

	raw, err := s.IntInRange(int64(min*10), int64(max*10))
	if err != nil {
		return Result{}, err
	}
	celsius := float64(raw) / 10

	var res Result
	res.Values = []string{strconv.FormatFloat(celsius, 'f', 1, 64) + "°C"}
	res.setMeta("celsius", celsius)
	res.setMeta("fahrenheit", numutil.RoundToPrecision(celsius*9/5+32, 1))
	return res, nil
}

// generateCurrency draws an amount in [Min, Max] (defaults 1..10000) for a
// random currency from the embedded table.
func generateCurrency(s *rng.Sampler, p Params) (Result, error) {
	min := numutil.ClampFloat(floatOr(p.Min, 1), 0, 1e9)
	max := numutil.ClampFloat(floatOr(p.Max, 10000), 0, 1e9)

	currencies := data.Currencies()
	ci, err := s.IntInRange(0, int64(len(currencies)-1))
	if err != nil {
		return Result{}, err
	}
	cur := currencies[ci]

	cents, err := s.IntInRange(int64(min*100), int64(max*100))
	if err != nil {
		return Result{}, err
	}
	amount := float64(cents) / 100

	var res Result
	res.Values = []string{fmt.Sprintf("%s%.2f", cur.Symbol, amount)}
	res.setMeta("code", cur.Code)
	res.setMeta("amount", amount)
	return res, nil
}

// generatePhone fills a random pattern from the embedded format table,
// replacing each '#' with a digit.
func generatePhone(s *rng.Sampler, _ Params) (Result, error) {
	formats := data.PhoneFormats()
	fi, err := s.IntInRange(0, int64(len(formats)-1))
	if err != nil {
		return Result{}, err
	}

	var b strings.Builder
	for _, r := range formats[fi] {
		if r != '#' {
			b.WriteRune(r)
			continue
		}
		d, err := s.IntInRange(0, 9)
		if err != nil {
			return Result{}, err
		}
		b.WriteByte(byte('0' + d))
	}
	return Result{Values: []string{b.String()}}, nil
}

// generateEmail composes an address from the name pools and a random
// example domain.
func generateEmail(s *rng.Sampler, _ Params) (Result, error) {
	first, err := pickString(s, data.FirstNames())
	if err != nil {
		return Result{}, err
	}
	last, err := pickString(s, data.LastNames())
	if err != nil {
		return Result{}, err
	}
	domain, err := pickString(s, data.EmailDomains())
	if err != nil {
		return Result{}, err
	}

	style, err := s.IntInRange(0, 2)
	if err != nil {
		return Result{}, err
	}
	first = strings.ToLower(first)
	last = strings.ToLower(last)

	var local string
	switch style {
	case 0:
		local = first + "." + last
	case 1:
		local = first[:1] + last
	default:
		n, err := s.IntInRange(1, 99)
		if err != nil {
			return Result{}, err
		}
		local = first + strconv.FormatInt(n, 10)
	}
	return Result{Values: []string{local + "@" + domain}}, nil
}

// generateUsername composes adjective + noun + two-digit number.
func generateUsername(s *rng.Sampler, _ Params) (Result, error) {
	adj, err := pickString(s, data.UsernameAdjectives())
	if err != nil {
		return Result{}, err
	}
	noun, err := pickString(s, data.UsernameNouns())
	if err != nil {
		return Result{}, err
	}
	n, err := s.IntInRange(10, 99)
	if err != nil {
		return Result{}, err
	}
	return Result{Values: []string{adj + noun + strconv.FormatInt(n, 10)}}, nil
}

func pickString(s *rng.Sampler, pool []string) (string, error) {
	i, err := s.IntInRange(0, int64(len(pool)-1))
	if err != nil {
		return "", err
	}
	return pool[i], nil
}
