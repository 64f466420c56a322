package metrics

import (
	"math"

	"github.com/san-kum/flightdyn/internal/flight"
)

// AltitudeBand records the worst altitude deviation from a reference
// height over a run.
type AltitudeBand struct {
	name     string
	ref      float64
	maxDev   float64
	samples  int
}

func NewAltitudeBand(ref float64) *AltitudeBand {
	return &AltitudeBand{
		name: "altitude_band",
		ref:  ref,
	}
}

func (a *AltitudeBand) Name() string { return a.name }

func (a *AltitudeBand) Observe(s flight.AircraftState, c flight.ControlInputs, t float64) {
	dev := math.Abs(s.Position.Y - a.ref)
	a.maxDev = math.Max(a.maxDev, dev)
	a.samples++
}

func (a *AltitudeBand) Value() float64 { return a.maxDev }

func (a *AltitudeBand) Reset() {
	a.maxDev = 0
	a.samples = 0
}
