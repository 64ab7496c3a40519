// Package data embeds the static tables backing the text and simulation
// modes: word lists, name pools, email domains, phone formats, currencies
// and the password charset definitions.
package data

import (
	_ "embed"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var raw []byte

// Currency pairs an ISO code with its display symbol.
type Currency struct {
	Code   string `yaml:"code"`
	Symbol string `yaml:"symbol"`
}

type tables struct {
	Symbols            string     `yaml:"symbols"`
	Ambiguous          string     `yaml:"ambiguous"`
	Words              []string   `yaml:"words"`
	FirstNames         []string   `yaml:"first_names"`
	LastNames          []string   `yaml:"last_names"`
	EmailDomains       []string   `yaml:"email_domains"`
	PhoneFormats       []string   `yaml:"phone_formats"`
	Currencies         []Currency `yaml:"currencies"`
	UsernameAdjectives []string   `yaml:"username_adjectives"`
	UsernameNouns      []string   `yaml:"username_nouns"`
}

var (
	once   sync.Once
	loaded tables
)

func get() *tables {
	once.Do(func() {
		if err := yaml.Unmarshal(raw, &loaded); err != nil {
			// The tables ship inside the binary; a decode failure is a
			// build defect, not a runtime condition.
			panic("data: decode embedded tables: " + err.Error())
		}
	})
	return &loaded
}

// Symbols returns the password symbol charset.
func Symbols() string { return get().Symbols }

// Ambiguous returns the visually ambiguous characters excluded on request.
func Ambiguous() string { return get().Ambiguous }

// Words returns the word pool. Callers must not mutate the slice.
func Words() []string { return get().Words }

// FirstNames returns the first-name pool.
func FirstNames() []string { return get().FirstNames }

// LastNames returns the last-name pool.
func LastNames() []string { return get().LastNames }

// EmailDomains returns the simulation email domains.
func EmailDomains() []string { return get().EmailDomains }

// PhoneFormats returns phone patterns where '#' marks a digit position.
func PhoneFormats() []string { return get().PhoneFormats }

// Currencies returns the currency pool.
func Currencies() []Currency { return get().Currencies }

// UsernameAdjectives returns the adjective half of the username pool.
func UsernameAdjectives() []string { return get().UsernameAdjectives }

// UsernameNouns returns the noun half of the username pool.
func UsernameNouns() []string { return get().UsernameNouns }
