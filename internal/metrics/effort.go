package metrics

import (
	"math"

	"github.com/san-kum/flightdyn/internal/flight"
)

// ControlEffort averages total absolute surface deflection per step.
// Throttle is excluded; it is a power setting, not a deflection.
type ControlEffort struct {
	name    string
	sum     float64
	samples int
}

func NewControlEffort() *ControlEffort {
	return &ControlEffort{name: "control_effort"}
}

func (c *ControlEffort) Name() string { return c.name }

func (c *ControlEffort) Observe(s flight.AircraftState, in flight.ControlInputs, t float64) {
	c.sum += math.Abs(in.Elevator) + math.Abs(in.Aileron) + math.Abs(in.Rudder)
	c.samples++
}

func (c *ControlEffort) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.sum / float64(c.samples)
}

func (c *ControlEffort) Reset() {
	c.sum = 0
	c.samples = 0
}
