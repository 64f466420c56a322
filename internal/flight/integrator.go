package flight

import "github.com/san-kum/flightdyn/internal/geom"

// Integrate advances the state by dt seconds using one force-model
// result. The rotational half runs first so the translational half
// uses the updated attitude; speed is re-derived from the world-frame
// velocity and floored at the minimum flying speed.
func Integrate(s *AircraftState, f Forces, dt float64, p *AircraftParams) {
	ixx, iyy, izz := p.Inertias()

	// Angular rates from torques, clamped to the aircraft-class bounds.
	s.PitchRate = clamp(s.PitchRate+(f.Torque.Pitch/iyy)*dt, -p.MaxPitchRate, p.MaxPitchRate)
	s.YawRate = clamp(s.YawRate+(f.Torque.Yaw/izz)*dt, -p.MaxYawRate, p.MaxYawRate)
	s.RollRate = clamp(s.RollRate+(f.Torque.Roll/ixx)*dt, -p.MaxRollRate, p.MaxRollRate)

	s.Pitch = geom.WrapAngle(s.Pitch + s.PitchRate*dt)
	s.Yaw = geom.WrapAngle(s.Yaw + s.YawRate*dt)
	s.Roll = geom.WrapAngle(s.Roll + s.RollRate*dt)

	o := s.Orientation()

	accel := o.BodyToWorld(f.Force).Scale(1 / p.Mass)
	velWorld := o.BodyToWorld(s.Velocity).Add(accel.Scale(dt))

	s.Position = s.Position.Add(velWorld.Scale(dt))
	s.Speed = velWorld.Length()

	// Minimum flying speed: rescale along the existing direction,
	// skipping degenerate vectors that would divide by ~0.
	if s.Speed < p.MinSpeed {
		if velWorld.Length() >= 0.1 {
			velWorld = velWorld.Normalize().Scale(p.MinSpeed)
		}
		s.Speed = p.MinSpeed
	}

	s.Velocity = o.WorldToBody(velWorld)
}
