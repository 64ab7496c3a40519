package gen

import (
	"strconv"
	"time"

	"github.com/mzhao28/randcore/config"
	"github.com/mzhao28/randcore/numutil"
	"github.com/mzhao28/randcore/rng"
)

// generateTimestamp draws a uniform instant in [from, to] (unix seconds)
// and renders it as RFC 3339 UTC. Defaults: from the unix epoch to now.
func generateTimestamp(s *rng.Sampler, p Params) (Result, error) {
	lim := config.Default()

	from := i64Or(p.From, 0)
	to := i64Or(p.To, time.Now().Unix())
	count := int(numutil.ClampInt(int64(intOr(p.Count, 1)), 1, int64(lim.MaxCount)))

	var res Result
	values := make([]string, 0, count)
	unix := make([]int64, 0, count)
	for i := 0; i < count; i++ {
		v, err := s.IntInRange(from, to)
		if err != nil {
			return Result{}, err
		}
		values = append(values, time.Unix(v, 0).UTC().Format(time.RFC3339))
		unix = append(unix, v)
	}
	res.Values = values
	res.setMeta("unix", unix)
	return res, nil
}

// generateCoordinates draws a latitude in [-90, 90] and a longitude in
// [-180, 180], rounded to the requested precision (default 6 decimals).
func generateCoordinates(s *rng.Sampler, p Params) (Result, error) {
	lim := config.Default()
	places := numutil.ClampInt(int64(intOr(p.Precision, 6)), 0, int64(lim.MaxPrecision))

	scale := int64(1)
	for i := int64(0); i < places; i++ {
		scale *= 10
	}

	latRaw, err := s.IntInRange(-90*scale, 90*scale)
	if err != nil {
		return Result{}, err
	}
	lonRaw, err := s.IntInRange(-180*scale, 180*scale)
	if err != nil {
		return Result{}, err
	}
	lat := float64(latRaw) / float64(scale)
	lon := float64(lonRaw) / float64(scale)

	var res Result
	res.Values = []string{
		strconv.FormatFloat(lat, 'f', int(places), 64),
		strconv.FormatFloat(lon, 'f', int(places), 64),
	}
	res.setMeta("lat", lat)
	res.setMeta("lon", lon)
	return res, nil
}
