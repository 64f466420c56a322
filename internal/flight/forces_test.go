package flight

import (
	"math"
	"testing"
)

func levelState(speed float64) AircraftState {
	return AircraftState{
		Velocity: geomVec(0, 0, -speed),
		Speed:    speed,
	}
}

func TestThrustAlongForward(t *testing.T) {
	p := DefaultParams()
	s := levelState(0)
	s.Speed = 0
	c := ControlInputs{Throttle: 1.0}

	f := ComputeForces(&s, &c, &p)

	// At zero speed only thrust and gravity act; thrust is pure -Z.
	if math.Abs(f.Force.Z - -p.MaxThrust) > 1e-9 {
		t.Errorf("expected forward force %f, got %f", -p.MaxThrust, f.Force.Z)
	}
	if math.Abs(f.Force.Y - -p.Mass*Gravity) > 1e-9 {
		t.Errorf("expected gravity %f, got %f", -p.Mass*Gravity, f.Force.Y)
	}
	if math.Abs(f.Force.X) > 1e-9 {
		t.Errorf("expected no lateral force, got %f", f.Force.X)
	}
}

func TestGravityRotatesIntoBodyFrame(t *testing.T) {
	p := DefaultParams()
	s := AircraftState{Pitch: math.Pi / 2}
	c := ControlInputs{}

	f := ComputeForces(&s, &c, &p)

	// Nose straight up: gravity acts along body +Z (aft), with the
	// pitched lift term folded into Y.
	if math.Abs(f.Force.Z - p.Mass*Gravity) > 1e-6 {
		t.Errorf("expected aft gravity %f, got %f", p.Mass*Gravity, f.Force.Z)
	}
}

func TestDragOpposesVelocity(t *testing.T) {
	p := DefaultParams()
	s := levelState(80)
	c := ControlInputs{}

	f := ComputeForces(&s, &c, &p)

	// Velocity is -Z, so drag must push +Z (aft) and thrust is zero.
	if f.Force.Z <= 0 {
		t.Errorf("drag should oppose forward velocity, net Z force %f", f.Force.Z)
	}
}

func TestNoDragBelowThreshold(t *testing.T) {
	p := DefaultParams()
	s := AircraftState{Velocity: geomVec(0.01, 0.02, -0.05), Speed: 0.05}
	c := ControlInputs{}

	f := ComputeForces(&s, &c, &p)
	if math.Abs(f.Force.X) > 1e-9 {
		t.Errorf("drag should be skipped below 0.1 m/s, got X force %f", f.Force.X)
	}
}

func TestLiftCoeffClamp(t *testing.T) {
	p := DefaultParams()
	c := ControlInputs{}
	q := 0.5 * AirDensity * 80 * 80

	// Extreme nose-up: CL clamps at 1.5.
	s := levelState(80)
	s.Pitch = 1.5
	f := ComputeForces(&s, &c, &p)
	maxLift := q * p.WingArea * 1.5
	gravityY := s.Orientation().WorldToBody(geomVec(0, -p.Mass*Gravity, 0)).Y
	if f.Force.Y-gravityY > maxLift+1e-6 {
		t.Errorf("lift exceeded clamp: %f > %f", f.Force.Y-gravityY, maxLift)
	}

	// Extreme nose-down: CL clamps at -0.5.
	s = levelState(80)
	s.Pitch = -1.5
	f = ComputeForces(&s, &c, &p)
	minLift := q * p.WingArea * -0.5
	gravityY = s.Orientation().WorldToBody(geomVec(0, -p.Mass*Gravity, 0)).Y
	if f.Force.Y-gravityY < minLift-1e-6 {
		t.Errorf("negative lift exceeded clamp: %f < %f", f.Force.Y-gravityY, minLift)
	}
}

func TestControlTorqueSigns(t *testing.T) {
	p := DefaultParams()
	s := levelState(80)

	c := ControlInputs{Elevator: 1}
	if f := ComputeForces(&s, &c, &p); f.Torque.Pitch <= 0 {
		t.Errorf("positive elevator should command nose-up torque, got %f", f.Torque.Pitch)
	}

	c = ControlInputs{Aileron: 1}
	if f := ComputeForces(&s, &c, &p); f.Torque.Roll <= 0 {
		t.Errorf("positive aileron should command roll-left torque, got %f", f.Torque.Roll)
	}

	c = ControlInputs{Rudder: 1}
	if f := ComputeForces(&s, &c, &p); f.Torque.Yaw <= 0 {
		t.Errorf("positive rudder should command yaw-left torque, got %f", f.Torque.Yaw)
	}
}

func TestControlPowerClamp(t *testing.T) {
	p := DefaultParams()
	c := ControlInputs{Elevator: 1}

	// Essentially zero airspeed: authority floors at ControlPowerMin.
	s := AircraftState{}
	f := ComputeForces(&s, &c, &p)
	want := p.ElevatorPower * p.ControlPowerMin
	if math.Abs(f.Torque.Pitch-want) > 1e-9 {
		t.Errorf("expected floor torque %f, got %f", want, f.Torque.Pitch)
	}

	// Very high airspeed: authority caps at ControlPowerMax.
	s = levelState(400)
	f = ComputeForces(&s, &c, &p)
	want = p.ElevatorPower * p.ControlPowerMax
	if math.Abs(f.Torque.Pitch-want) > 1e-9 {
		t.Errorf("expected capped torque %f, got %f", want, f.Torque.Pitch)
	}
}

func TestDampingOpposesRates(t *testing.T) {
	p := DefaultParams()
	s := levelState(80)
	s.PitchRate = 1.0
	s.YawRate = -0.5
	s.RollRate = 2.0
	c := ControlInputs{}

	f := ComputeForces(&s, &c, &p)
	if f.Torque.Pitch >= 0 {
		t.Errorf("damping should oppose positive pitch rate, got %f", f.Torque.Pitch)
	}
	if f.Torque.Yaw <= 0 {
		t.Errorf("damping should oppose negative yaw rate, got %f", f.Torque.Yaw)
	}
	if f.Torque.Roll >= 0 {
		t.Errorf("damping should oppose positive roll rate, got %f", f.Torque.Roll)
	}
}

func TestComputeForcesIsPure(t *testing.T) {
	p := DefaultParams()
	s := levelState(60)
	s.Pitch = 0.1
	c := ControlInputs{Elevator: 0.2, Throttle: 0.7}

	before := s
	f1 := ComputeForces(&s, &c, &p)
	f2 := ComputeForces(&s, &c, &p)

	if s != before {
		t.Error("ComputeForces mutated the state")
	}
	if f1 != f2 {
		t.Error("ComputeForces is not deterministic")
	}
}
