package flight

import "github.com/san-kum/flightdyn/internal/geom"

// AircraftState is the full kinematic state of one aircraft. It is
// owned exclusively by one Engine; nothing else mutates it.
type AircraftState struct {
	// Position in world space, meters.
	Position geom.Vec3

	// Euler angles in radians, each kept in (-pi, pi]. Composition
	// order going body to world is roll, then pitch, then yaw.
	Pitch float64
	Yaw   float64
	Roll  float64

	// Velocity in body frame, m/s. Body axes: forward -Z, up +Y,
	// right +X.
	Velocity geom.Vec3

	// Speed is the magnitude of the world-frame velocity. Recomputed
	// every integration step, never set independently.
	Speed float64

	// Body-frame angular rates, rad/s.
	PitchRate float64
	YawRate   float64
	RollRate  float64
}

// Orientation returns the attitude snapshot used for frame transforms.
func (s *AircraftState) Orientation() Orientation {
	return Orientation{Pitch: s.Pitch, Yaw: s.Yaw, Roll: s.Roll}
}

// WorldVelocity is the body-frame velocity expressed in world frame at
// the current attitude.
func (s *AircraftState) WorldVelocity() geom.Vec3 {
	return s.Orientation().BodyToWorld(s.Velocity)
}

// IsValid reports whether every field is finite.
func (s *AircraftState) IsValid() bool {
	if !s.Position.IsValid() || !s.Velocity.IsValid() {
		return false
	}
	for _, v := range [7]float64{s.Pitch, s.Yaw, s.Roll, s.Speed, s.PitchRate, s.YawRate, s.RollRate} {
		if v != v || v > 1e308 || v < -1e308 {
			return false
		}
	}
	return true
}

// ControlInputs are normalized control-surface deflections plus
// throttle, written by an external controller each frame.
//
// Sign convention, applied uniformly everywhere torques are derived:
// positive elevator commands nose-up, positive aileron commands a left
// roll, positive rudder commands a left yaw. The core never re-clamps
// raw inputs; out-of-range values flow into clamped derived quantities.
type ControlInputs struct {
	Elevator float64 // [-1, 1]
	Aileron  float64 // [-1, 1]
	Rudder   float64 // [-1, 1]
	Throttle float64 // [0, 1]
}

// DefaultControls is the state controls return to on reset.
func DefaultControls() ControlInputs {
	return ControlInputs{Throttle: 0.5}
}

// Reset restores the default deflections and half throttle.
func (c *ControlInputs) Reset() {
	*c = DefaultControls()
}
