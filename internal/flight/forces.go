package flight

import (
	"math"

	"github.com/san-kum/flightdyn/internal/geom"
)

// Torque holds net body-axis moments in N*m, named by the motion each
// one drives rather than by geometric axis (pitch acts about body X,
// yaw about body Y, roll about body Z).
type Torque struct {
	Pitch, Yaw, Roll float64
}

// Forces is the atomic output of one force-model evaluation. The
// integrator consumes one Forces value per step for both rotational
// and translational integration; evaluating the model twice in a step
// would let the two halves disagree.
type Forces struct {
	Force  geom.Vec3 // net body-frame force, N
	Torque Torque
}

// ComputeForces evaluates the force/torque model. Pure function of its
// three inputs; all inputs are assumed finite.
func ComputeForces(s *AircraftState, c *ControlInputs, p *AircraftParams) Forces {
	// Thrust along body forward (-Z).
	thrust := geom.Vec3{Z: -c.Throttle * p.MaxThrust}

	// Gravity enters in world frame and is rotated into the body frame
	// before summing.
	gravity := s.Orientation().WorldToBody(geom.Vec3{Y: -p.Mass * Gravity})

	q := 0.5 * AirDensity * s.Speed * s.Speed

	// Angle of attack approximated from pitch and elevator deflection.
	aoa := s.Pitch + c.Elevator*0.3

	cl := clamp(p.LiftCoeff*(1+aoa*3), -0.5, 1.5)
	// Lift acts along body up. True lift is perpendicular to the
	// velocity vector; the body-axis simplification is intentional and
	// the damping/clamp tuning is balanced against it.
	lift := geom.Vec3{Y: q * p.WingArea * cl}

	cd := p.DragCoeff * (1 + aoa*aoa*5)
	var drag geom.Vec3
	if s.Speed >= 0.1 {
		drag = s.Velocity.Normalize().Scale(-q * p.WingArea * cd)
	}

	force := thrust.Add(gravity).Add(lift).Add(drag)

	// Control authority grows with dynamic pressure, clamped to keep
	// the surfaces useful at low speed and sane at high speed.
	controlPower := clamp(q*p.ControlPowerScale, p.ControlPowerMin, p.ControlPowerMax)

	torque := Torque{
		Pitch: c.Elevator * p.ElevatorPower * controlPower,
		Yaw:   c.Rudder * p.RudderPower * controlPower,
		Roll:  c.Aileron * p.AileronPower * controlPower,
	}

	// Aerodynamic damping opposes each angular rate.
	damping := q * p.DampingScale
	torque.Pitch -= s.PitchRate * p.PitchStability * damping
	torque.Yaw -= s.YawRate * p.YawStability * damping
	torque.Roll -= s.RollRate * p.RollStability * damping

	return Forces{Force: force, Torque: torque}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
