package gen

import (
	"fmt"

	"github.com/mzhao28/randcore/rng"
)

// generateIPv4 produces a random dotted-quad address.
func generateIPv4(s *rng.Sampler, _ Params) (Result, error) {
	var octets [4]int64
	for i := range octets {
		v, err := s.IntInRange(0, 255)
		if err != nil {
			return Result{}, err
		}
		octets[i] = v
	}
	return Result{Values: []string{
		fmt.Sprintf("%d.%d.%d.%d", octets[0], octets[1], octets[2], octets[3]),
	}}, nil
}

// generateMAC produces a locally administered unicast MAC address: bit 1 of
// the first octet set, bit 0 clear.
func generateMAC(s *rng.Sampler, _ Params) (Result, error) {
	var b [6]byte
	for i := range b {
		v, err := s.IntInRange(0, 255)
		if err != nil {
			return Result{}, err
		}
		b[i] = byte(v)
	}
	b[0] = b[0]&0xFC | 0x02

	return Result{Values: []string{
		fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", b[0], b[1], b[2], b[3], b[4], b[5]),
	}}, nil
}
