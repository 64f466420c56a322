package control

import (
	"github.com/san-kum/flightdyn/internal/flight"
	"github.com/san-kum/flightdyn/internal/geom"
)

// Autopilot composes per-axis PID loops into ControlInputs. Any loop
// left nil holds that axis at its default.
type Autopilot struct {
	// Altitude drives elevator toward a target height, meters.
	Altitude *PID
	// Heading drives rudder and aileron toward a target yaw, radians.
	Heading *PID
	// Speed drives throttle toward a target airspeed, m/s.
	Speed *PID

	// BaseThrottle is used when no speed loop is installed.
	BaseThrottle float64
}

// NewAltitudeHold builds an autopilot that holds altitude and heading
// at cruise throttle. Gains are trainer-class defaults.
func NewAltitudeHold(altitude, heading float64) *Autopilot {
	alt := NewPID(0.05, 0.001, 0.12, altitude)
	alt.Limit = 1.0
	hdg := NewPID(1.2, 0.0, 2.5, heading)
	hdg.Limit = 1.0
	return &Autopilot{
		Altitude:     alt,
		Heading:      hdg,
		BaseThrottle: 0.7,
	}
}

func (a *Autopilot) Compute(s flight.AircraftState, t float64) flight.ControlInputs {
	in := flight.ControlInputs{Throttle: a.BaseThrottle}

	if a.Altitude != nil {
		in.Elevator = a.Altitude.Compute(s.Position.Y, t)
	}
	if a.Heading != nil {
		// Shortest-way heading error, then split between rudder and
		// aileron for a coordinated-ish turn.
		err := geom.WrapAngle(a.Heading.Target - s.Yaw)
		u := a.Heading.Compute(a.Heading.Target-err, t) // feed wrapped measurement
		in.Rudder = clip(u, 1)
		in.Aileron = clip(u*0.5, 1)
	}
	if a.Speed != nil {
		in.Throttle = clip01(a.Speed.Compute(s.Speed, t))
	}

	return in
}

// Reset clears all loop state, e.g. after re-spawning the aircraft.
func (a *Autopilot) Reset() {
	if a.Altitude != nil {
		a.Altitude.Reset()
	}
	if a.Heading != nil {
		a.Heading.Reset()
	}
	if a.Speed != nil {
		a.Speed.Reset()
	}
}

func clip(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
