// Package gen is the single entry point of the randomness core: it maps a
// generation mode plus an all-optional parameter record onto the sampling
// primitives and returns a structured result. Malformed parameters are
// clamped, never rejected; only entropy unavailability and unrepresentable
// ranges abort a call.
package gen

import (
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mzhao28/randcore/rng"
)

// Mode selects one generator algorithm.
type Mode string

const (
	ModeRange       Mode = "range"
	ModeDigits      Mode = "digits"
	ModePassword    Mode = "password"
	ModeLottery     Mode = "lottery"
	ModeList        Mode = "list"
	ModeShuffle     Mode = "shuffle"
	ModeDice        Mode = "dice"
	ModeTicket      Mode = "ticket"
	ModeCoin        Mode = "coin"
	ModeUUID        Mode = "uuid"
	ModeColor       Mode = "color"
	ModeHex         Mode = "hex"
	ModeBytes       Mode = "bytes"
	ModeTimestamp   Mode = "timestamp"
	ModeCoordinates Mode = "coordinates"
	ModeIPv4        Mode = "ipv4"
	ModeMAC         Mode = "mac"
	ModeFraction    Mode = "fraction"
	ModePercentage  Mode = "percentage"
	ModePrime       Mode = "prime"
	ModeRoman       Mode = "roman"
	ModeWord        Mode = "word"
	ModeAlphabet    Mode = "alphabet"
	ModeASCII       Mode = "ascii"
	ModeUnicode     Mode = "unicode"
	ModeTemperature Mode = "temperature"
	ModeCurrency    Mode = "currency"
	ModePhone       Mode = "phone"
	ModeEmail       Mode = "email"
	ModeUsername    Mode = "username"
)

// Result is the uniform envelope every mode returns.
type Result struct {
	Values      []string       // produced values, in output order
	Bonus       []string       // secondary values (lottery pool B, discarded rolls)
	Display     string         // joined rendering of Values and Bonus
	GeneratedAt time.Time      // when the call completed
	Warnings    []string       // degradations applied, never silently dropped
	Meta        map[string]any // mode-specific extras (totals, remaining pools)
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Result) setMeta(key string, v any) {
	if r.Meta == nil {
		r.Meta = map[string]any{}
	}
	r.Meta[key] = v
}

type generatorFunc func(*rng.Sampler, Params) (Result, error)

var generators = map[Mode]generatorFunc{
	ModeRange:       generateRange,
	ModeDigits:      generateDigits,
	ModePassword:    generatePassword,
	ModeLottery:     generateLottery,
	ModeList:        generateList,
	ModeShuffle:     generateShuffle,
	ModeDice:        generateDice,
	ModeTicket:      generateTicket,
	ModeCoin:        generateCoin,
	ModeUUID:        generateUUID,
	ModeColor:       generateColor,
	ModeHex:         generateHex,
	ModeBytes:       generateBytes,
	ModeTimestamp:   generateTimestamp,
	ModeCoordinates: generateCoordinates,
	ModeIPv4:        generateIPv4,
	ModeMAC:         generateMAC,
	ModeFraction:    generateFraction,
	ModePercentage:  generatePercentage,
	ModePrime:       generatePrime,
	ModeRoman:       generateRoman,
	ModeWord:        generateWord,
	ModeAlphabet:    generateAlphabet,
	ModeASCII:       generateASCII,
	ModeUnicode:     generateUnicode,
	ModeTemperature: generateTemperature,
	ModeCurrency:    generateCurrency,
	ModePhone:       generatePhone,
	ModeEmail:       generateEmail,
	ModeUsername:    generateUsername,
}

// classFor maps a mode to its entropy classification. Password and PIN
// material must come from the CSPRNG; everything else may fall back.
func classFor(mode Mode) rng.Class {
	switch mode {
	case ModePassword, ModeDigits:
		return rng.ClassSecret
	}
	return rng.ClassGeneral
}

// Generate runs one generation call. An unknown mode yields an empty result
// rather than an error. The sampler is acquired per call, so concurrent
// callers never share mutable state.
func Generate(mode Mode, p Params) (Result, error) {
	if _, ok := generators[mode]; !ok {
		return Result{GeneratedAt: time.Now()}, nil
	}
	s, err := rng.New(classFor(mode))
	if err != nil {
		log.WithField("mode", string(mode)).WithError(err).
			Error("gen: entropy acquisition failed")
		return Result{}, err
	}
	return GenerateWith(s, mode, p)
}

// GenerateWith runs one generation call against a caller-supplied sampler.
// It exists for replicable output (seeded samplers in tests and simulation);
// Generate is the normal path.
func GenerateWith(s *rng.Sampler, mode Mode, p Params) (Result, error) {
	fn, ok := generators[mode]
	if !ok {
		return Result{GeneratedAt: time.Now()}, nil
	}
	res, err := fn(s, p)
	if err != nil {
		log.WithField("mode", string(mode)).WithError(err).
			Error("gen: generation failed")
		return Result{}, err
	}
	res.GeneratedAt = time.Now()
	res.Display = renderDisplay(res)
	for _, w := range res.Warnings {
		log.WithFields(log.Fields{"mode": string(mode), "warning": w}).
			Debug("gen: degraded result")
	}
	return res, nil
}

func renderDisplay(r Result) string {
	out := strings.Join(r.Values, ", ")
	if len(r.Bonus) > 0 {
		out += " (" + strings.Join(r.Bonus, ", ") + ")"
	}
	return out
}
