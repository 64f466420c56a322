package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

type exportSample struct {
	Time   float64            `json:"time"`
	Fields map[string]float64 `json:"fields"`
}

type exportRun struct {
	Metadata *RunMetadata   `json:"metadata"`
	Samples  []exportSample `json:"samples"`
}

// ExportJSON writes a run's metadata and full trajectory as JSON.
func (s *Store) ExportJSON(runID string, w io.Writer) error {
	meta, err := s.Load(runID)
	if err != nil {
		return fmt.Errorf("load metadata: %w", err)
	}

	series, err := s.LoadSeries(runID)
	if err != nil {
		return fmt.Errorf("load states: %w", err)
	}

	out := exportRun{
		Metadata: meta,
		Samples:  make([]exportSample, 0, len(series.Times)),
	}

	for i, t := range series.Times {
		fields := make(map[string]float64, len(series.Columns))
		for j, col := range series.Columns {
			fields[col] = series.Values[i][j]
		}
		out.Samples = append(out.Samples, exportSample{Time: t, Fields: fields})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ExportJSONFile exports a run to the named file, or stdout when
// path is "-".
func (s *Store) ExportJSONFile(runID, path string) error {
	if path == "-" {
		return s.ExportJSON(runID, os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return s.ExportJSON(runID, f)
}

// ExportCSVFile copies a run's states.csv to the named file, or
// stdout when path is "-".
func (s *Store) ExportCSVFile(runID, path string) error {
	src, err := os.Open(s.statesPath(runID))
	if err != nil {
		return err
	}
	defer src.Close()

	var dst io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		dst = f
	}

	_, err = io.Copy(dst, src)
	return err
}
