package config

import (
	"sort"

	"github.com/san-kum/flightdyn/internal/flight"
)

// Aircraft presets: per-class tuning data. The numbers are feel
// constants balanced against the simplified force model, so a new
// class means a new preset, not new integrator code.
func aircraftPresets() map[string]flight.AircraftParams {
	trainer := flight.DefaultParams()

	aerobatic := flight.DefaultParams()
	aerobatic.Mass = 950
	aerobatic.WingArea = 10.8
	aerobatic.Wingspan = 7.3
	aerobatic.LiftCoeff = 0.65
	aerobatic.DragCoeff = 0.03
	aerobatic.ElevatorPower = 3.5
	aerobatic.AileronPower = 5.0
	aerobatic.RudderPower = 2.5
	aerobatic.MaxThrust = 5600
	aerobatic.PitchStability = 0.5
	aerobatic.RollStability = 0.5
	aerobatic.YawStability = 0.5
	aerobatic.MaxPitchRate = 6.0
	aerobatic.MaxYawRate = 4.0
	aerobatic.MaxRollRate = 9.0
	aerobatic.CruiseSpeed = 55.0

	transport := flight.DefaultParams()
	transport.Mass = 36000
	transport.WingArea = 105.0
	transport.Wingspan = 28.9
	transport.LiftCoeff = 0.55
	transport.DragCoeff = 0.022
	transport.ElevatorPower = 1.2
	transport.AileronPower = 1.5
	transport.RudderPower = 1.0
	transport.MaxThrust = 180000
	transport.PitchStability = 1.2
	transport.RollStability = 1.4
	transport.YawStability = 1.1
	transport.MaxPitchRate = 1.5
	transport.MaxYawRate = 1.0
	transport.MaxRollRate = 2.0
	transport.CruiseSpeed = 120.0

	return map[string]flight.AircraftParams{
		"trainer":   trainer,
		"aerobatic": aerobatic,
		"transport": transport,
	}
}

// GetAircraft returns the preset for name, or nil.
func GetAircraft(name string) *flight.AircraftParams {
	p, ok := aircraftPresets()[name]
	if !ok {
		return nil
	}
	return &p
}

// ListAircraft returns the preset names in stable order.
func ListAircraft() []string {
	presets := aircraftPresets()
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Scenario presets: named run setups for the CLI.
var Scenarios = map[string]*Config{
	"cruise": {
		Aircraft: "trainer", Dt: DefaultDt, Duration: 30.0,
		Controller: "hold",
		Spawn:      SpawnConfig{Y: 100},
		Trim:       TrimConfig{Throttle: 0.7},
	},
	"climb": {
		Aircraft: "trainer", Dt: DefaultDt, Duration: 30.0,
		Controller: "autopilot",
		Spawn:      SpawnConfig{Y: 100},
		Autopilot:  AutopilotConfig{Altitude: 400},
	},
	"pitch-doublet": {
		Aircraft: "trainer", Dt: DefaultDt, Duration: 20.0,
		Controller: "doublet",
		Spawn:      SpawnConfig{Y: 300},
		Doublet:    DoubletConfig{Axis: "elevator", Amp: 0.5, Start: 2.0, Width: 0.5},
	},
	"roll-doublet": {
		Aircraft: "aerobatic", Dt: DefaultDt, Duration: 15.0,
		Controller: "doublet",
		Spawn:      SpawnConfig{Y: 300},
		Doublet:    DoubletConfig{Axis: "aileron", Amp: 1.0, Start: 2.0, Width: 0.3},
	},
	"heavy-cruise": {
		Aircraft: "transport", Dt: DefaultDt, Duration: 60.0,
		Controller: "autopilot",
		Spawn:      SpawnConfig{Y: 500},
		Autopilot:  AutopilotConfig{Altitude: 500},
	},
}

// GetScenario returns a copy of the named scenario, or nil.
func GetScenario(name string) *Config {
	cfg, ok := Scenarios[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

// ListScenarios returns scenario names in stable order.
func ListScenarios() []string {
	names := make([]string, 0, len(Scenarios))
	for name := range Scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
