package storage

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"testing"

	"github.com/san-kum/flightdyn/internal/flight"
	"github.com/san-kum/flightdyn/internal/geom"
	"github.com/san-kum/flightdyn/internal/sim"
)

func sampleResult() *sim.Result {
	r := &sim.Result{
		Metrics: map[string]float64{"altitude_band": 12.5},
	}
	for i := 0; i < 5; i++ {
		st := flight.AircraftState{
			Position: geom.Vec3{X: float64(i), Y: 100 + float64(i), Z: -float64(i) * 2},
			Pitch:    0.05,
			Yaw:      0.1 * float64(i),
			Speed:    50,
		}
		r.States = append(r.States, st)
		r.Times = append(r.Times, float64(i)*0.1)
		if i < 4 {
			r.Controls = append(r.Controls, flight.ControlInputs{Throttle: 0.7, Elevator: 0.1})
		}
	}
	r.StepsTaken = 4
	return r
}

func TestSaveAndList(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	runID, err := store.Save("trainer", "hold", 1.0/60.0, 10, sampleResult())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Aircraft != "trainer" {
		t.Errorf("aircraft = %q, want trainer", runs[0].Aircraft)
	}
	if runs[0].Metrics["altitude_band"] != 12.5 {
		t.Errorf("metric not persisted: %v", runs[0].Metrics)
	}
}

func TestListEmptyBaseDir(t *testing.T) {
	store := New(t.TempDir() + "/nonexistent")
	runs, err := store.List()
	if err != nil {
		t.Fatalf("list on missing dir: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoadSeriesRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	result := sampleResult()
	runID, err := store.Save("trainer", "hold", 1.0/60.0, 10, result)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	series, err := store.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series: %v", err)
	}

	if len(series.Times) != len(result.Times) {
		t.Fatalf("expected %d samples, got %d", len(result.Times), len(series.Times))
	}

	altitude := series.Column("pos_y")
	if altitude == nil {
		t.Fatal("missing pos_y column")
	}
	for i := range altitude {
		want := result.States[i].Position.Y
		if math.Abs(altitude[i]-want) > 1e-5 {
			t.Errorf("pos_y[%d] = %v, want %v", i, altitude[i], want)
		}
	}

	if series.Column("no_such_column") != nil {
		t.Error("expected nil for unknown column")
	}

	throttle := series.Column("throttle")
	if math.Abs(throttle[0]-0.7) > 1e-5 {
		t.Errorf("throttle[0] = %v, want 0.7", throttle[0])
	}
	// Final state carries no control row.
	if throttle[len(throttle)-1] != 0 {
		t.Errorf("trailing throttle = %v, want 0", throttle[len(throttle)-1])
	}
}

func TestLoadMissingRun(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Load("no_such_run"); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestExportJSON(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	runID, err := store.Save("trainer", "hold", 1.0/60.0, 10, sampleResult())
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	var buf bytes.Buffer
	if err := store.ExportJSON(runID, &buf); err != nil {
		t.Fatalf("export: %v", err)
	}

	var out struct {
		Metadata RunMetadata `json:"metadata"`
		Samples  []struct {
			Time   float64            `json:"time"`
			Fields map[string]float64 `json:"fields"`
		} `json:"samples"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}

	if out.Metadata.ID != runID {
		t.Errorf("metadata id = %q, want %q", out.Metadata.ID, runID)
	}
	if len(out.Samples) != 5 {
		t.Fatalf("expected 5 samples, got %d", len(out.Samples))
	}
	if math.Abs(out.Samples[2].Fields["pos_y"]-102) > 1e-5 {
		t.Errorf("pos_y sample = %v, want 102", out.Samples[2].Fields["pos_y"])
	}
}
