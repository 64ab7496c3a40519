package rng

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source yields raw unsigned 32-bit random words.
type Source interface {
	Uint32() uint32
}

// crypto source: default for every draw when the platform CSPRNG is present
type cryptoSource struct{}

func (cryptoSource) Uint32() uint32 {
	var buf [4]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		// Availability is probed at acquisition time, so a failure here
		// means the platform CSPRNG went away mid-call.
		panic("rng: crypto source failed: " + err.Error())
	}
	return binary.BigEndian.Uint32(buf[:])
}

// pcg source: non-cryptographic path, used for the optional-acquire fallback
// and for replicable sequences in tests and simulation
type pcgSource struct {
	r *rand.Rand
}

func (p pcgSource) Uint32() uint32 {
	return uint32(p.r.Uint64() >> 32)
}

func newPCGSource(seed uint64) pcgSource {
	return pcgSource{r: rand.New(rand.NewPCG(seed, 0))}
}
