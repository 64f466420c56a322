package control

import "github.com/san-kum/flightdyn/internal/flight"

// Hold returns the same control inputs every step: hands-off flight at
// a fixed trim.
type Hold struct {
	Inputs flight.ControlInputs
}

func NewHold(in flight.ControlInputs) *Hold {
	return &Hold{Inputs: in}
}

func (h *Hold) Compute(s flight.AircraftState, t float64) flight.ControlInputs {
	return h.Inputs
}
