package rng

import (
	cryptoRand "crypto/rand"
	"errors"
	"math/rand/v2"
)

// Policy decides what happens when the platform CSPRNG is unavailable.
type Policy int

const (
	// PolicySecure makes CSPRNG absence fatal for security-sensitive draws.
	PolicySecure Policy = iota
	// PolicyBestEffort silently falls back to a non-cryptographic source for
	// every draw. The value exists for completeness; nothing in this module
	// selects it.
	PolicyBestEffort
)

// DefaultPolicy is fixed at build time for this library.
const DefaultPolicy = PolicySecure

// Class labels the security sensitivity of one top-level generation call.
// It is call-scoped: pass it to New at the start of the call, never store it
// in a shared global.
type Class int

const (
	// ClassGeneral covers everything that is not secret material. When the
	// CSPRNG is missing these draws fall back to a PCG source.
	ClassGeneral Class = iota
	// ClassSecret covers password and PIN material. Under PolicySecure the
	// CSPRNG is mandatory for this class.
	ClassSecret
)

// ErrEntropyUnavailable reports that the platform CSPRNG could not be read
// for a draw that requires it.
var ErrEntropyUnavailable = errors.New("rng: platform entropy unavailable")

// Mandatory returns the CSPRNG-backed source, probing it first. The error is
// ErrEntropyUnavailable when the probe read fails.
func Mandatory() (Source, error) {
	if !csprngAvailable() {
		return nil, ErrEntropyUnavailable
	}
	return cryptoSource{}, nil
}

// Optional returns the CSPRNG-backed source when present. It never fails:
// ok is false when the caller should use a fallback instead.
func Optional() (Source, bool) {
	if !csprngAvailable() {
		return nil, false
	}
	return cryptoSource{}, true
}

func csprngAvailable() bool {
	var probe [1]byte
	_, err := cryptoRand.Read(probe[:])
	return err == nil
}

// fallbackSource builds the reduced-guarantee PCG source used when a
// general-class draw finds no CSPRNG.
func fallbackSource() Source {
	return newPCGSource(rand.Uint64())
}
