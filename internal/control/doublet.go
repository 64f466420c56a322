package control

import "github.com/san-kum/flightdyn/internal/flight"

// Axis selects which control surface a doublet deflects.
type Axis int

const (
	AxisElevator Axis = iota
	AxisAileron
	AxisRudder
)

// Doublet applies a classic two-sided step input on one axis: +Amp for
// Width seconds starting at Start, then -Amp for Width seconds, then
// neutral. Used to excite a single response mode for analysis.
type Doublet struct {
	Axis     Axis
	Amp      float64
	Start    float64
	Width    float64
	Throttle float64
}

func NewDoublet(axis Axis, amp, start, width float64) *Doublet {
	return &Doublet{
		Axis:     axis,
		Amp:      amp,
		Start:    start,
		Width:    width,
		Throttle: 0.7,
	}
}

func (d *Doublet) Compute(s flight.AircraftState, t float64) flight.ControlInputs {
	in := flight.ControlInputs{Throttle: d.Throttle}

	var u float64
	switch {
	case t < d.Start:
	case t < d.Start+d.Width:
		u = d.Amp
	case t < d.Start+2*d.Width:
		u = -d.Amp
	}

	switch d.Axis {
	case AxisElevator:
		in.Elevator = u
	case AxisAileron:
		in.Aileron = u
	case AxisRudder:
		in.Rudder = u
	}

	return in
}
