package flight

// Physical constants shared by the force model.
const (
	Gravity    = 9.81  // m/s^2
	AirDensity = 1.225 // kg/m^3, sea level; no altitude model
)

// AircraftParams is the immutable-per-instance configuration of one
// aircraft. The second block holds empirically chosen feel constants:
// they are aircraft-class tuning data, not derived aerodynamics, and
// live here so they can be iterated per aircraft without touching the
// integrator.
type AircraftParams struct {
	// Mass properties
	Mass     float64 `yaml:"mass"`      // kg
	WingArea float64 `yaml:"wing_area"` // m^2
	Wingspan float64 `yaml:"wingspan"`  // m

	// Aerodynamic coefficients
	LiftCoeff      float64 `yaml:"lift_coeff"`
	DragCoeff      float64 `yaml:"drag_coeff"`
	SideForceCoeff float64 `yaml:"side_force_coeff"`

	// Control-surface torque authority
	ElevatorPower float64 `yaml:"elevator_power"`
	AileronPower  float64 `yaml:"aileron_power"`
	RudderPower   float64 `yaml:"rudder_power"`

	// Engine
	MaxThrust float64 `yaml:"max_thrust"` // N

	// Angular-rate damping coefficients
	PitchStability float64 `yaml:"pitch_stability"`
	RollStability  float64 `yaml:"roll_stability"`
	YawStability   float64 `yaml:"yaw_stability"`

	// Moment-of-inertia scale factors. Iyy uses a fixed 144 m^2
	// fuselage-length-squared placeholder, the span terms use the
	// actual wingspan.
	InertiaRollScale  float64 `yaml:"inertia_roll_scale"`
	InertiaPitchScale float64 `yaml:"inertia_pitch_scale"`
	InertiaYawScale   float64 `yaml:"inertia_yaw_scale"`

	// Angular-rate clamp bounds, rad/s.
	MaxPitchRate float64 `yaml:"max_pitch_rate"`
	MaxYawRate   float64 `yaml:"max_yaw_rate"`
	MaxRollRate  float64 `yaml:"max_roll_rate"`

	// Control authority scaling with dynamic pressure:
	// controlPower = clamp(q*ControlPowerScale, ControlPowerMin, ControlPowerMax)
	ControlPowerScale float64 `yaml:"control_power_scale"`
	ControlPowerMin   float64 `yaml:"control_power_min"`
	ControlPowerMax   float64 `yaml:"control_power_max"`

	// Aerodynamic damping scales with q*DampingScale.
	DampingScale float64 `yaml:"damping_scale"`

	// Flight envelope floors
	CruiseSpeed    float64 `yaml:"cruise_speed"`     // m/s, spawn speed
	MinSpeed       float64 `yaml:"min_speed"`        // m/s, hard floor
	GroundHeight   float64 `yaml:"ground_height"`    // m, position.y clamp
	GroundFriction float64 `yaml:"ground_friction"`  // horizontal multiplier on touch-down
	CruiseThrottle float64 `yaml:"cruise_throttle"`  // throttle set on Initialize
}

// DefaultParams models an L-39 Albatros class jet trainer.
func DefaultParams() AircraftParams {
	return AircraftParams{
		Mass:     4700.0,
		WingArea: 18.8,
		Wingspan: 9.46,

		LiftCoeff:      0.5,
		DragCoeff:      0.025,
		SideForceCoeff: 0.0,

		ElevatorPower: 2.0,
		AileronPower:  3.0,
		RudderPower:   1.5,

		MaxThrust: 16870.0,

		PitchStability: 0.8,
		RollStability:  0.9,
		YawStability:   0.7,

		InertiaRollScale:  0.0008,
		InertiaPitchScale: 0.0009,
		InertiaYawScale:   0.0010,

		MaxPitchRate: 4.0,
		MaxYawRate:   3.0,
		MaxRollRate:  6.0,

		ControlPowerScale: 0.03,
		ControlPowerMin:   5.0,
		ControlPowerMax:   150.0,

		DampingScale: 0.001,

		CruiseSpeed:    50.0,
		MinSpeed:       20.0,
		GroundHeight:   2.0,
		GroundFriction: 0.95,
		CruiseThrottle: 0.7,
	}
}

// Inertias returns the simplified per-axis moments of inertia
// (roll Ixx, pitch Iyy, yaw Izz) in kg*m^2.
func (p *AircraftParams) Inertias() (ixx, iyy, izz float64) {
	span2 := p.Wingspan * p.Wingspan
	ixx = p.Mass * span2 * p.InertiaRollScale
	iyy = p.Mass * 144.0 * p.InertiaPitchScale
	izz = p.Mass * span2 * p.InertiaYawScale
	return ixx, iyy, izz
}
