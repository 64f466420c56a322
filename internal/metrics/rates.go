package metrics

import (
	"math"

	"github.com/san-kum/flightdyn/internal/flight"
)

// RateMargin reports the fraction of samples where all three angular
// rates sit strictly inside their clamp bounds. A value below 1.0
// means the aircraft spent time pinned against a rate limit.
type RateMargin struct {
	name      string
	params    flight.AircraftParams
	inside    int
	samples   int
}

func NewRateMargin(params flight.AircraftParams) *RateMargin {
	return &RateMargin{
		name:   "rate_margin",
		params: params,
	}
}

func (r *RateMargin) Name() string { return r.name }

func (r *RateMargin) Observe(s flight.AircraftState, c flight.ControlInputs, t float64) {
	r.samples++
	if math.Abs(s.PitchRate) < r.params.MaxPitchRate &&
		math.Abs(s.YawRate) < r.params.MaxYawRate &&
		math.Abs(s.RollRate) < r.params.MaxRollRate {
		r.inside++
	}
}

func (r *RateMargin) Value() float64 {
	if r.samples == 0 {
		return 1.0
	}
	return float64(r.inside) / float64(r.samples)
}

func (r *RateMargin) Reset() {
	r.inside = 0
	r.samples = 0
}
