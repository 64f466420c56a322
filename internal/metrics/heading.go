package metrics

import (
	"math"

	"github.com/san-kum/flightdyn/internal/flight"
	"github.com/san-kum/flightdyn/internal/geom"
)

// HeadingDrift records the worst shortest-way yaw deviation from a
// reference heading, radians.
type HeadingDrift struct {
	name    string
	ref     float64
	maxDev  float64
	samples int
}

func NewHeadingDrift(ref float64) *HeadingDrift {
	return &HeadingDrift{
		name: "heading_drift",
		ref:  ref,
	}
}

func (h *HeadingDrift) Name() string { return h.name }

func (h *HeadingDrift) Observe(s flight.AircraftState, c flight.ControlInputs, t float64) {
	dev := math.Abs(geom.WrapAngle(s.Yaw - h.ref))
	h.maxDev = math.Max(h.maxDev, dev)
	h.samples++
}

func (h *HeadingDrift) Value() float64 { return h.maxDev }

func (h *HeadingDrift) Reset() {
	h.maxDev = 0
	h.samples = 0
}
