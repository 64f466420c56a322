package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/flightdyn/internal/sim"
)

// Store persists recorded runs under a base directory, one
// subdirectory per run holding metadata.json and states.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Aircraft   string             `json:"aircraft"`
	Scenario   string             `json:"scenario,omitempty"`
	Timestamp  time.Time          `json:"timestamp"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Controller string             `json:"controller"`
	Metrics    map[string]float64 `json:"metrics"`
}

// csvHeader is the fixed column layout of states.csv.
var csvHeader = []string{
	"time",
	"pos_x", "pos_y", "pos_z",
	"pitch", "yaw", "roll",
	"speed",
	"pitch_rate", "yaw_rate", "roll_rate",
	"elevator", "aileron", "rudder", "throttle",
}

func (s *Store) Save(aircraft, controller string, dt, duration float64, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", aircraft, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Aircraft:   aircraft,
		Timestamp:  time.Now(),
		Dt:         dt,
		Duration:   duration,
		Controller: controller,
		Metrics:    result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}

	for i, st := range result.States {
		row := make([]string, 0, len(csvHeader))
		row = append(row, fmtF(result.Times[i]))
		row = append(row,
			fmtF(st.Position.X), fmtF(st.Position.Y), fmtF(st.Position.Z),
			fmtF(st.Pitch), fmtF(st.Yaw), fmtF(st.Roll),
			fmtF(st.Speed),
			fmtF(st.PitchRate), fmtF(st.YawRate), fmtF(st.RollRate),
		)

		// The control row i drove the transition from state i to i+1;
		// the final state has no controls.
		if i < len(result.Controls) {
			c := result.Controls[i]
			row = append(row, fmtF(c.Elevator), fmtF(c.Aileron), fmtF(c.Rudder), fmtF(c.Throttle))
		} else {
			row = append(row, "0", "0", "0", "0")
		}

		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func fmtF(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func (s *Store) statesPath(runID string) string {
	return filepath.Join(s.baseDir, runID, "states.csv")
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// Series is one recorded run as named columns, times separated out.
type Series struct {
	Columns []string
	Times   []float64
	Values  [][]float64 // indexed [sample][column], time excluded
}

// Column returns the values of a named column, or nil.
func (d *Series) Column(name string) []float64 {
	idx := -1
	for i, c := range d.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	out := make([]float64, len(d.Values))
	for i := range d.Values {
		out[i] = d.Values[i][idx]
	}
	return out
}

// LoadSeries reads states.csv for a run back into columns.
func (s *Store) LoadSeries(runID string) (*Series, error) {
	file, err := os.Open(s.statesPath(runID))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("empty states file for run %s", runID)
	}

	series := &Series{
		Columns: records[0][1:],
		Times:   make([]float64, 0, len(records)-1),
		Values:  make([][]float64, 0, len(records)-1),
	}

	for _, record := range records[1:] {
		if len(record) != len(records[0]) {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}

		vals := make([]float64, 0, len(record)-1)
		ok := true
		for _, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				ok = false
				break
			}
			vals = append(vals, v)
		}
		if !ok {
			continue
		}

		series.Times = append(series.Times, t)
		series.Values = append(series.Values, vals)
	}

	return series, nil
}
