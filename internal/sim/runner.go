package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/flightdyn/internal/flight"
)

// Runner drives one Engine through a recorded run: per step it asks
// the controller for inputs, feeds metrics and observers, then advances
// the engine. The runner owns nothing concurrent; one engine, one
// goroutine.
type Runner struct {
	eng        *flight.Engine
	controller Controller
	metrics    []Metric
	observers  []Observer
}

func New(eng *flight.Engine, controller Controller) *Runner {
	return &Runner{
		eng:        eng,
		controller: controller,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Engine exposes the underlying engine, e.g. for spawn adjustment
// before Run.
func (r *Runner) Engine() *flight.Engine { return r.eng }

func (r *Runner) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 || cfg.Dt > flight.MaxTimestep {
		return fmt.Errorf("%w: got %f", ErrBadTimestep, cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("%w: got %f", ErrBadDuration, cfg.Duration)
	}
	return nil
}

// Run executes the configured number of steps, recording every state.
// Context cancellation returns the partial result with ctx.Err().
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := r.validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		States:   make([]flight.AircraftState, 0, steps+1),
		Controls: make([]flight.ControlInputs, 0, steps),
		Times:    make([]float64, 0, steps+1),
		Metrics:  make(map[string]float64),
		Errors:   make([]error, 0),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	t := 0.0
	result.States = append(result.States, r.eng.State())
	result.Times = append(result.Times, t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		s := r.eng.State()
		in := r.controller.Compute(s, t)

		for _, m := range r.metrics {
			m.Observe(s, in, t)
		}
		for _, obs := range r.observers {
			obs.OnStep(s, in, t)
		}

		r.eng.SetControls(in)
		r.eng.Update(cfg.Dt)
		t += cfg.Dt
		result.StepsTaken++

		next := r.eng.State()
		if cfg.ValidateState && !next.IsValid() {
			err := SimError{Time: t, Step: i, Message: ErrInvalidState.Error()}
			result.Errors = append(result.Errors, err)
			break
		}

		result.States = append(result.States, next)
		result.Controls = append(result.Controls, in)
		result.Times = append(result.Times, t)
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback steps until the duration elapses or the callback
// returns false, without recording a trajectory.
func (r *Runner) RunWithCallback(ctx context.Context, cfg Config, callback func(flight.AircraftState, flight.ControlInputs, float64) bool) error {
	if err := r.validateConfig(cfg); err != nil {
		return err
	}

	t := 0.0
	for t < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s := r.eng.State()
		in := r.controller.Compute(s, t)

		if !callback(s, in, t) {
			return nil
		}

		r.eng.SetControls(in)
		r.eng.Update(cfg.Dt)
		t += cfg.Dt

		if cfg.ValidateState {
			st := r.eng.State()
			if !st.IsValid() {
				return fmt.Errorf("%w at t=%.4f", ErrInvalidState, t)
			}
		}
	}

	return nil
}
