package gen

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"github.com/mzhao28/randcore/config"
	"github.com/mzhao28/randcore/numutil"
	"github.com/mzhao28/randcore/rng"
)

// generateUUID produces version-4 UUIDs.
func generateUUID(_ *rng.Sampler, p Params) (Result, error) {
	lim := config.Default()
	count := int(numutil.ClampInt(int64(intOr(p.Count, 1)), 1, int64(lim.MaxCount)))

	values := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := uuid.NewRandom()
		if err != nil {
			return Result{}, fmt.Errorf("uuid: %w", rng.ErrEntropyUnavailable)
		}
		values = append(values, id.String())
	}
	return Result{Values: values}, nil
}

// generateColor produces #RRGGBB colors, with the rgb() rendering of the
// first one in Meta.
func generateColor(s *rng.Sampler, p Params) (Result, error) {
	lim := config.Default()
	count := int(numutil.ClampInt(int64(intOr(p.Count, 1)), 1, int64(lim.MaxCount)))

	var res Result
	values := make([]string, 0, count)
	for i := 0; i < count; i++ {
		r, err := s.IntInRange(0, 255)
		if err != nil {
			return Result{}, err
		}
		g, err := s.IntInRange(0, 255)
		if err != nil {
			return Result{}, err
		}
		b, err := s.IntInRange(0, 255)
		if err != nil {
			return Result{}, err
		}
		values = append(values, fmt.Sprintf("#%02X%02X%02X", r, g, b))
		if i == 0 {
			res.setMeta("rgb", fmt.Sprintf("rgb(%d, %d, %d)", r, g, b))
		}
	}
	res.Values = values
	return res, nil
}

const hexDigits = "0123456789abcdef"

// generateHex produces a hex string of the requested length. Default
// length 8.
func generateHex(s *rng.Sampler, p Params) (Result, error) {
	lim := config.Default()
	length := int(numutil.ClampInt(int64(intOr(p.Length, 8)), 1, int64(lim.MaxLength)))

	buf := make([]byte, length)
	for i := range buf {
		d, err := s.IntInRange(0, 15)
		if err != nil {
			return Result{}, err
		}
		buf[i] = hexDigits[d]
	}
	return Result{Values: []string{string(buf)}}, nil
}

// generateBytes produces a random byte sequence, hex encoded. Default
// length 16 bytes.
func generateBytes(s *rng.Sampler, p Params) (Result, error) {
	lim := config.Default()
	length := int(numutil.ClampInt(int64(intOr(p.Length, 16)), 1, int64(lim.MaxLength)))

	buf := make([]byte, length)
	for i := range buf {
		b, err := s.IntInRange(0, 255)
		if err != nil {
			return Result{}, err
		}
		buf[i] = byte(b)
	}

	var res Result
	res.Values = []string{hex.EncodeToString(buf)}
	res.setMeta("length", length)
	return res, nil
}
