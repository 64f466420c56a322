package sim

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/flightdyn/internal/flight"
	"github.com/san-kum/flightdyn/internal/geom"
)

type holdController struct {
	in flight.ControlInputs
}

func (h holdController) Compute(s flight.AircraftState, t float64) flight.ControlInputs {
	return h.in
}

type countMetric struct {
	samples int
}

func (c *countMetric) Name() string { return "samples" }
func (c *countMetric) Observe(s flight.AircraftState, in flight.ControlInputs, t float64) {
	c.samples++
}
func (c *countMetric) Value() float64 { return float64(c.samples) }
func (c *countMetric) Reset()         { c.samples = 0 }

func newTestRunner(in flight.ControlInputs) *Runner {
	eng := flight.NewEngine()
	eng.Initialize(geom.Vec3{Y: 100}, 0)
	return New(eng, holdController{in: in})
}

func TestRunRecordsTrajectory(t *testing.T) {
	r := newTestRunner(flight.ControlInputs{Throttle: 0.7})
	cfg := Config{Dt: 0.016, Duration: 1.0, ValidateState: true}

	result, err := r.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	steps := int(cfg.Duration / cfg.Dt)
	if result.StepsTaken != steps {
		t.Errorf("expected %d steps, got %d", steps, result.StepsTaken)
	}
	if len(result.States) != steps+1 {
		t.Errorf("expected %d states, got %d", steps+1, len(result.States))
	}
	if len(result.Times) != len(result.States) {
		t.Error("times and states length mismatch")
	}
	if len(result.Errors) != 0 {
		t.Errorf("unexpected run errors: %v", result.Errors)
	}
}

func TestRunValidatesConfig(t *testing.T) {
	r := newTestRunner(flight.ControlInputs{})

	if _, err := r.Run(context.Background(), Config{Dt: 0, Duration: 1}); !errors.Is(err, ErrBadTimestep) {
		t.Errorf("expected ErrBadTimestep, got %v", err)
	}
	if _, err := r.Run(context.Background(), Config{Dt: 2.0, Duration: 1}); !errors.Is(err, ErrBadTimestep) {
		t.Errorf("expected ErrBadTimestep for oversized dt, got %v", err)
	}
	if _, err := r.Run(context.Background(), Config{Dt: 0.01, Duration: -1}); !errors.Is(err, ErrBadDuration) {
		t.Errorf("expected ErrBadDuration, got %v", err)
	}
}

func TestRunHonorsContext(t *testing.T) {
	r := newTestRunner(flight.ControlInputs{Throttle: 0.5})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := r.Run(ctx, Config{Dt: 0.016, Duration: 10})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if result == nil {
		t.Fatal("expected partial result")
	}
	if result.StepsTaken != 0 {
		t.Errorf("canceled before start should take no steps, got %d", result.StepsTaken)
	}
}

func TestRunFeedsMetrics(t *testing.T) {
	r := newTestRunner(flight.ControlInputs{Throttle: 0.7})
	m := &countMetric{}
	r.AddMetric(m)

	result, err := r.Run(context.Background(), Config{Dt: 0.016, Duration: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := float64(result.StepsTaken)
	if math.Abs(result.Metrics["samples"]-want) > 0 {
		t.Errorf("metric observed %f times, want %f", result.Metrics["samples"], want)
	}
}

func TestRunWithCallbackStops(t *testing.T) {
	r := newTestRunner(flight.ControlInputs{Throttle: 0.7})

	calls := 0
	err := r.RunWithCallback(context.Background(), Config{Dt: 0.016, Duration: 10}, func(s flight.AircraftState, in flight.ControlInputs, t float64) bool {
		calls++
		return calls < 5
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 5 {
		t.Errorf("expected 5 callback calls, got %d", calls)
	}
}

func TestEnsembleIndependence(t *testing.T) {
	spawns := []Spawn{
		{Position: geom.Vec3{Y: 100}, Heading: 0},
		{Position: geom.Vec3{Y: 100}, Heading: 0},
		{Position: geom.Vec3{X: 500, Y: 200}, Heading: 1.5},
	}

	ens := NewEnsemble(flight.DefaultParams(), spawns, func() Controller {
		return holdController{in: flight.ControlInputs{Elevator: 0.1, Throttle: 0.7}}
	})

	results, err := ens.Run(context.Background(), Config{Dt: 0.016, Duration: 2, ValidateState: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(spawns) {
		t.Fatalf("expected %d results, got %d", len(spawns), len(results))
	}

	// Identical spawns produce identical trajectories; the third must
	// differ.
	finalA := results[0].States[len(results[0].States)-1]
	finalB := results[1].States[len(results[1].States)-1]
	finalC := results[2].States[len(results[2].States)-1]

	if finalA != finalB {
		t.Error("identical spawns diverged across goroutines")
	}
	if finalA == finalC {
		t.Error("different spawns produced identical trajectories")
	}
}
