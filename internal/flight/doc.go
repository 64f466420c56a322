// Package flight implements a real-time fixed-wing flight-dynamics
// engine: a force/torque model, a per-frame Euler integrator, and the
// body/world frame transforms that tie them together.
//
// The model is deliberately simplified three-axis dynamics, not a full
// 6-DoF rigid-body solver: lift acts along the body up axis, inertia
// is diagonal, and the tuning constants on [AircraftParams] are feel
// values chosen per aircraft class rather than derived aerodynamics.
//
//	eng := flight.NewEngine()
//	eng.Initialize(geom.Vec3{Y: 100}, 0)
//	eng.Controls().Elevator = 0.1
//	eng.Update(1.0 / 60.0)
//	m := eng.TransformMatrix()
//
// Engines are not safe for concurrent use. Each simulated aircraft
// owns exactly one Engine; fleets parallelize across independent
// instances.
package flight
