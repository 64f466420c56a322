package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/flightdyn/internal/flight"
	"github.com/san-kum/flightdyn/internal/geom"
)

const (
	DefaultDt       = 1.0 / 60.0
	DefaultDuration = 10.0
	DefaultAltitude = 100.0
)

// Config describes one simulation scenario: which aircraft to fly,
// where it spawns, who flies it, and for how long.
type Config struct {
	Aircraft   string           `yaml:"aircraft"`
	Dt         float64          `yaml:"dt"`
	Duration   float64          `yaml:"duration"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Controller string           `yaml:"controller"`
	Autopilot  AutopilotConfig  `yaml:"autopilot"`
	Doublet    DoubletConfig    `yaml:"doublet"`
	Trim       TrimConfig       `yaml:"trim"`

	// Params overrides the named aircraft preset when non-nil.
	Params *flight.AircraftParams `yaml:"params,omitempty"`
}

type SpawnConfig struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Z       float64 `yaml:"z"`
	Heading float64 `yaml:"heading"` // radians
}

func (s SpawnConfig) Position() geom.Vec3 {
	return geom.Vec3{X: s.X, Y: s.Y, Z: s.Z}
}

type AutopilotConfig struct {
	Altitude float64 `yaml:"altitude"`
	Heading  float64 `yaml:"heading"`
}

type DoubletConfig struct {
	Axis  string  `yaml:"axis"`
	Amp   float64 `yaml:"amp"`
	Start float64 `yaml:"start"`
	Width float64 `yaml:"width"`
}

// TrimConfig is the fixed control setting for the "hold" controller.
type TrimConfig struct {
	Elevator float64 `yaml:"elevator"`
	Aileron  float64 `yaml:"aileron"`
	Rudder   float64 `yaml:"rudder"`
	Throttle float64 `yaml:"throttle"`
}

func (t TrimConfig) Inputs() flight.ControlInputs {
	return flight.ControlInputs{
		Elevator: t.Elevator,
		Aileron:  t.Aileron,
		Rudder:   t.Rudder,
		Throttle: t.Throttle,
	}
}

func DefaultConfig() *Config {
	return &Config{
		Aircraft:   "trainer",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		Controller: "hold",
		Spawn:      SpawnConfig{Y: DefaultAltitude},
		Trim:       TrimConfig{Throttle: 0.7},
		Autopilot:  AutopilotConfig{Altitude: DefaultAltitude},
		Doublet:    DoubletConfig{Axis: "elevator", Amp: 0.5, Start: 1.0, Width: 0.5},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// AircraftParams resolves the aircraft for this scenario: an inline
// params block wins, then the named preset.
func (c *Config) AircraftParams() (flight.AircraftParams, error) {
	if c.Params != nil {
		return *c.Params, nil
	}
	p := GetAircraft(c.Aircraft)
	if p == nil {
		return flight.AircraftParams{}, fmt.Errorf("unknown aircraft: %s (available: %v)", c.Aircraft, ListAircraft())
	}
	return *p, nil
}
