// Package config exposes the operational limits generators clamp their
// parameters against. Limits come from the environment with built-in
// defaults, so deployments can tighten them without a rebuild.
package config

import (
	"sync"

	"github.com/caarlos0/env/v11"
	log "github.com/sirupsen/logrus"
)

// Limits bounds generator parameters before any sampling occurs.
type Limits struct {
	MaxCount     int   `env:"RANDCORE_MAX_COUNT" envDefault:"1000"`
	MaxLength    int   `env:"RANDCORE_MAX_LENGTH" envDefault:"256"`
	MaxItems     int   `env:"RANDCORE_MAX_ITEMS" envDefault:"10000"`
	MaxPoolMax   int64 `env:"RANDCORE_MAX_POOL_MAX" envDefault:"1000000"`
	MaxDiceSides int   `env:"RANDCORE_MAX_DICE_SIDES" envDefault:"1000"`
	MaxDiceRolls int   `env:"RANDCORE_MAX_DICE_ROLLS" envDefault:"100"`
	MaxPrime     int64 `env:"RANDCORE_MAX_PRIME" envDefault:"1000000"`
	MaxPrecision int   `env:"RANDCORE_MAX_PRECISION" envDefault:"10"`
}

// Parse reads limits from the environment.
func Parse() (Limits, error) {
	var l Limits
	if err := env.Parse(&l); err != nil {
		return Limits{}, err
	}
	return l, nil
}

var (
	once   sync.Once
	limits Limits
)

// Default returns the process-wide limits, parsed once. Malformed
// environment values fall back to the struct-tag defaults with a warning
// rather than failing generation.
func Default() Limits {
	once.Do(func() {
		l, err := Parse()
		if err != nil {
			log.WithError(err).Warn("config: malformed limit overrides, using built-in defaults")
			l = Limits{
				MaxCount:     1000,
				MaxLength:    256,
				MaxItems:     10000,
				MaxPoolMax:   1000000,
				MaxDiceSides: 1000,
				MaxDiceRolls: 100,
				MaxPrime:     1000000,
				MaxPrecision: 10,
			}
		}
		limits = l
	})
	return limits
}
