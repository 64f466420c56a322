package control

// PID is a scalar gain block with integral anti-reset via Reset.
// Output is clamped to [-Limit, Limit] when Limit > 0.
type PID struct {
	Kp       float64
	Ki       float64
	Kd       float64
	Target   float64
	Limit    float64
	integral float64
	prevErr  float64
	prevT    float64
	first    bool
}

func NewPID(kp, ki, kd, target float64) *PID {
	return &PID{
		Kp:     kp,
		Ki:     ki,
		Kd:     kd,
		Target: target,
		first:  true,
	}
}

// Compute returns the control output for measurement x at time t.
func (p *PID) Compute(x, t float64) float64 {
	err := p.Target - x

	if p.first {
		p.prevErr = err
		p.prevT = t
		p.first = false
		return p.clip(p.Kp * err)
	}

	dt := t - p.prevT
	if dt <= 0 {
		return p.clip(p.Kp * err)
	}

	p.integral += err * dt
	derivative := (err - p.prevErr) / dt

	p.prevErr = err
	p.prevT = t

	return p.clip(p.Kp*err + p.Ki*p.integral + p.Kd*derivative)
}

func (p *PID) clip(u float64) float64 {
	if p.Limit <= 0 {
		return u
	}
	if u > p.Limit {
		return p.Limit
	}
	if u < -p.Limit {
		return -p.Limit
	}
	return u
}

// Reset clears integral and derivative state.
func (p *PID) Reset() {
	p.integral = 0
	p.prevErr = 0
	p.first = true
}
