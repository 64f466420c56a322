package sim

import (
	"fmt"

	"github.com/san-kum/flightdyn/internal/flight"
)

// Controller produces the control inputs for the upcoming step.
type Controller interface {
	Compute(s flight.AircraftState, t float64) flight.ControlInputs
}

// Metric accumulates a scalar over a run.
type Metric interface {
	Name() string
	Observe(s flight.AircraftState, c flight.ControlInputs, t float64)
	Value() float64
	Reset()
}

// Observer is called once per step with the pre-step state.
type Observer interface {
	OnStep(s flight.AircraftState, c flight.ControlInputs, t float64)
}

// Config drives one recorded run.
type Config struct {
	Dt            float64
	Duration      float64
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            1.0 / 60.0,
		Duration:      10.0,
		ValidateState: true,
	}
}

// Result is the recorded trajectory of one run.
type Result struct {
	States     []flight.AircraftState
	Controls   []flight.ControlInputs
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
	Errors     []error
}

// SimError carries step context for a failure inside a run.
type SimError struct {
	Time    float64
	Step    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}
