package flight

import (
	"fmt"
	"math"

	"github.com/san-kum/flightdyn/internal/geom"
)

// Timestep sanity bounds for Update. Steps outside (0, MaxTimestep]
// are skipped entirely to survive pause/resume and debugger stalls.
const MaxTimestep = 1.0

// Engine owns one aircraft's state, parameters, and control inputs and
// advances them one frame at a time. It is single-threaded by design:
// one engine per aircraft, never shared across goroutines. Simulating
// a fleet means one independent Engine per aircraft.
type Engine struct {
	state    AircraftState
	params   AircraftParams
	controls ControlInputs

	initialPosition geom.Vec3
	initialHeading  float64

	// Per-instance frame counter; debug state never lives in package
	// globals so engines stay independent.
	frames uint64
}

// NewEngine creates an engine with default trainer parameters, reset
// to 100 m altitude and zero heading.
func NewEngine() *Engine {
	e := &Engine{
		params:          DefaultParams(),
		initialPosition: geom.Vec3{Y: 100},
	}
	e.Reset()
	return e
}

// Initialize records the spawn position and heading for future resets,
// resets, then re-derives the spawn velocity from the heading. Reset
// always leaves the velocity on the canonical forward axis, so any
// nonzero heading needs the world-frame velocity rebuilt and carried
// back through WorldToBody; routing both spawn paths through the same
// reset keeps zero- and nonzero-heading behavior identical.
func (e *Engine) Initialize(position geom.Vec3, heading float64) {
	e.initialPosition = position
	e.initialHeading = heading
	e.Reset()

	speed := e.params.CruiseSpeed
	velWorld := geom.Vec3{
		X: -speed * math.Sin(heading),
		Z: -speed * math.Cos(heading),
	}
	e.state.Velocity = e.state.Orientation().WorldToBody(velWorld)
	e.state.Speed = speed

	e.controls.Throttle = e.params.CruiseThrottle
}

// Reset restores the last-initialized pose with forward cruise
// velocity and default controls.
func (e *Engine) Reset() {
	e.state = AircraftState{
		Position: e.initialPosition,
		Yaw:      e.initialHeading,
		Velocity: geom.Vec3{Z: -e.params.CruiseSpeed},
		Speed:    e.params.CruiseSpeed,
	}
	e.controls.Reset()
	e.frames = 0
}

// Update advances the simulation by dt seconds: one force-model
// evaluation, one integration step, then the ground clamp. Out-of-
// range timesteps are a silent no-op frame.
func (e *Engine) Update(dt float64) {
	if dt <= 0 || dt > MaxTimestep {
		return
	}

	f := ComputeForces(&e.state, &e.controls, &e.params)
	Integrate(&e.state, f, dt, &e.params)
	e.clampToGround()

	e.frames++
}

// clampToGround keeps the aircraft above the floor. A negative
// vertical velocity on contact becomes a skid: vertical component
// zeroed, horizontal components scrubbed by the friction factor.
func (e *Engine) clampToGround() {
	if e.state.Position.Y >= e.params.GroundHeight {
		return
	}
	e.state.Position.Y = e.params.GroundHeight

	o := e.state.Orientation()
	velWorld := o.BodyToWorld(e.state.Velocity)
	if velWorld.Y < 0 {
		velWorld.Y = 0
		velWorld.X *= e.params.GroundFriction
		velWorld.Z *= e.params.GroundFriction
		e.state.Velocity = o.WorldToBody(velWorld)
	}
}

// TransformMatrix builds the world transform for rendering:
// Translation * RotY(yaw) * RotX(pitch) * RotZ(roll).
func (e *Engine) TransformMatrix() geom.Mat4 {
	return Matrix(e.state.Position, e.state.Orientation())
}

// Controls returns a mutable reference so an external controller can
// write deflections in place each frame before Update.
func (e *Engine) Controls() *ControlInputs { return &e.controls }

// SetControls replaces the control inputs wholesale.
func (e *Engine) SetControls(c ControlInputs) { e.controls = c }

// State returns a read-only snapshot of the aircraft state.
func (e *Engine) State() AircraftState { return e.state }

// MutableState exposes the state for callers that need to write it
// directly (spawn adjustment, test setup).
func (e *Engine) MutableState() *AircraftState { return &e.state }

// Params returns the current aircraft parameters.
func (e *Engine) Params() AircraftParams { return e.params }

// SetParams swaps the aircraft configuration wholesale.
func (e *Engine) SetParams(p AircraftParams) { e.params = p }

// Frames is the number of integration steps taken since reset.
func (e *Engine) Frames() uint64 { return e.frames }

// DebugString is a one-line state snapshot for CLI output.
func (e *Engine) DebugString() string {
	s := &e.state
	return fmt.Sprintf(
		"frame=%d pos=(%.1f, %.1f, %.1f) att=(p%.2f y%.2f r%.2f) spd=%.1f m/s ctl=(e%.2f a%.2f r%.2f t%.2f)",
		e.frames,
		s.Position.X, s.Position.Y, s.Position.Z,
		s.Pitch, s.Yaw, s.Roll,
		s.Speed,
		e.controls.Elevator, e.controls.Aileron, e.controls.Rudder, e.controls.Throttle,
	)
}
