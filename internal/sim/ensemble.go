package sim

import (
	"context"
	"sync"

	"github.com/san-kum/flightdyn/internal/flight"
	"github.com/san-kum/flightdyn/internal/geom"
)

// Spawn is one aircraft's starting pose for an ensemble run.
type Spawn struct {
	Position geom.Vec3
	Heading  float64
}

// Ensemble runs many independent aircraft in parallel. Each run gets
// its own Engine and Runner, so there is no shared mutable state to
// protect; the engines never see each other.
type Ensemble struct {
	params     flight.AircraftParams
	controller func() Controller
	spawns     []Spawn
}

// NewEnsemble builds an ensemble over the given spawns. controller is
// a factory because controllers carry per-run state (PID integrals).
func NewEnsemble(params flight.AircraftParams, spawns []Spawn, controller func() Controller) *Ensemble {
	return &Ensemble{
		params:     params,
		controller: controller,
		spawns:     spawns,
	}
}

// Run executes every spawn concurrently and returns per-spawn results
// in order. The first run error aborts the batch.
func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, len(e.spawns))
	errs := make([]error, len(e.spawns))

	var wg sync.WaitGroup
	for i, spawn := range e.spawns {
		wg.Add(1)
		go func(idx int, sp Spawn) {
			defer wg.Done()

			eng := flight.NewEngine()
			eng.SetParams(e.params)
			eng.Initialize(sp.Position, sp.Heading)

			r := New(eng, e.controller())
			results[idx], errs[idx] = r.Run(ctx, cfg)
		}(i, spawn)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
