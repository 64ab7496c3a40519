package rng

import "errors"

const (
	// MaxSafeInt is the largest representable range endpoint, 2^53-1.
	MaxSafeInt int64 = 1<<53 - 1
	// MinSafeInt mirrors MaxSafeInt on the negative side.
	MinSafeInt int64 = -(1<<53 - 1)
)

var (
	// ErrInvalidRange reports endpoints outside [MinSafeInt, MaxSafeInt].
	ErrInvalidRange = errors.New("rng: range endpoints out of representable bounds")
	// ErrRangeTooLarge reports an inclusive range wider than 2^53 values.
	ErrRangeTooLarge = errors.New("rng: range size exceeds the 53-bit envelope")
)

// Sampler turns raw entropy into unbiased integers. A Sampler is bound to one
// top-level generation call and is not safe for concurrent use.
type Sampler struct {
	src Source
}

// New acquires a sampler for the given class under the default policy.
// Secret-class acquisition fails with ErrEntropyUnavailable when the platform
// CSPRNG is missing; general-class acquisition silently falls back to a
// non-cryptographic source.
func New(class Class) (*Sampler, error) {
	return NewWithPolicy(DefaultPolicy, class)
}

// NewWithPolicy acquires a sampler under an explicit policy.
func NewWithPolicy(policy Policy, class Class) (*Sampler, error) {
	if policy == PolicySecure && class == ClassSecret {
		src, err := Mandatory()
		if err != nil {
			return nil, err
		}
		return &Sampler{src: src}, nil
	}
	if src, ok := Optional(); ok {
		return &Sampler{src: src}, nil
	}
	return &Sampler{src: fallbackSource()}, nil
}

// NewSeeded returns a deterministic PCG-backed sampler. Intended for tests
// and replicable simulation, never for secret material.
func NewSeeded(seed uint64) *Sampler {
	return &Sampler{src: newPCGSource(seed)}
}

// Uint32 returns one raw 32-bit word from the underlying source.
func (s *Sampler) Uint32() uint32 {
	return s.src.Uint32()
}

// uint53 composes two 32-bit words (21 high bits + 32 low bits) into a value
// in [0, 2^53).
func (s *Sampler) uint53() uint64 {
	hi := uint64(s.src.Uint32() & (1<<21 - 1))
	lo := uint64(s.src.Uint32())
	return hi<<32 | lo
}

// IntInRange returns a uniformly distributed integer over the inclusive
// range [min, max]. Reversed endpoints are swapped rather than rejected;
// several call sites rely on that. Uniformity comes from rejection sampling:
// draws at or above the largest multiple of the range size are discarded, so
// no modulo bias is possible.
func (s *Sampler) IntInRange(min, max int64) (int64, error) {
	if min > max {
		min, max = max, min
	}
	if min < MinSafeInt || max > MaxSafeInt {
		return 0, ErrInvalidRange
	}

	size := uint64(max-min) + 1
	if size <= 1<<32 {
		limit := (uint64(1) << 32) / size * size
		for {
			v := uint64(s.src.Uint32())
			if v < limit {
				return min + int64(v%size), nil
			}
		}
	}
	if size <= 1<<53 {
		limit := (uint64(1) << 53) / size * size
		for {
			v := s.uint53()
			if v < limit {
				return min + int64(v%size), nil
			}
		}
	}
	return 0, ErrRangeTooLarge
}

// Float64 returns a uniform value in the open interval (0, 1), suitable for
// logarithm-based keys where 0 would blow up.
func (s *Sampler) Float64() float64 {
	return (float64(s.src.Uint32()) + 1) / (float64(1<<32) + 1)
}

// Fraction returns a uniform value in the half-open interval [0, 1).
func (s *Sampler) Fraction() float64 {
	return float64(s.src.Uint32()) / float64(1<<32)
}
