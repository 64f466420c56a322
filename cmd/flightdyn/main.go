package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/flightdyn/internal/analysis"
	"github.com/san-kum/flightdyn/internal/config"
	"github.com/san-kum/flightdyn/internal/control"
	"github.com/san-kum/flightdyn/internal/flight"
	"github.com/san-kum/flightdyn/internal/metrics"
	"github.com/san-kum/flightdyn/internal/sim"
	"github.com/san-kum/flightdyn/internal/storage"
	"github.com/san-kum/flightdyn/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	aircraft   string
	controller string
	altitude   float64
	heading    float64
	throttle   float64
	configFile string
	scenario   string
	// Analyze column
	column string
	// Export target
	outFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "flightdyn",
		Short: "real-time flight dynamics lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".flightdyn", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a flight and record it",
		RunE:  runFlight,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	runCmd.Flags().StringVar(&aircraft, "aircraft", "trainer", "aircraft preset")
	runCmd.Flags().StringVar(&controller, "controller", "hold", "controller (hold, autopilot, doublet)")
	runCmd.Flags().Float64Var(&altitude, "altitude", config.DefaultAltitude, "spawn / autopilot altitude")
	runCmd.Flags().Float64Var(&heading, "heading", 0.0, "spawn heading (radians)")
	runCmd.Flags().Float64Var(&throttle, "throttle", 0.7, "held throttle")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&scenario, "scenario", "", "use scenario preset")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded flights",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded flight",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export flight data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVar(&outFile, "out", "-", "output file (- for stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export flight data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outFile, "out", "-", "output file (- for stdout)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "fly interactively in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	liveCmd.Flags().StringVar(&aircraft, "aircraft", "trainer", "aircraft preset")
	liveCmd.Flags().Float64Var(&altitude, "altitude", config.DefaultAltitude, "spawn altitude")
	liveCmd.Flags().Float64Var(&heading, "heading", 0.0, "spawn heading (radians)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list aircraft and scenario presets",
		RunE:  listPresets,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark engine step rate",
		RunE:  benchEngine,
	}
	benchCmd.Flags().StringVar(&aircraft, "aircraft", "trainer", "aircraft preset")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a recorded flight",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&column, "column", "pitch", "recorded column to analyze")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, liveCmd, presetsCmd, benchCmd, analyzeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig builds the effective scenario: scenario preset, then
// config file, then CLI flags, later sources winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if scenario != "" {
		c := config.GetScenario(scenario)
		if c == nil {
			return nil, fmt.Errorf("unknown scenario: %s (available: %v)", scenario, config.ListScenarios())
		}
		cfg = c
	}

	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("aircraft") {
		cfg.Aircraft = aircraft
	}
	if cmd.Flags().Changed("controller") {
		cfg.Controller = controller
	}
	if cmd.Flags().Changed("altitude") {
		cfg.Spawn.Y = altitude
		cfg.Autopilot.Altitude = altitude
	}
	if cmd.Flags().Changed("heading") {
		cfg.Spawn.Heading = heading
		cfg.Autopilot.Heading = heading
	}
	if cmd.Flags().Changed("throttle") {
		cfg.Trim.Throttle = throttle
	}

	return cfg, nil
}

func buildController(cfg *config.Config) (sim.Controller, error) {
	switch cfg.Controller {
	case "hold", "":
		return control.NewHold(cfg.Trim.Inputs()), nil
	case "autopilot":
		return control.NewAltitudeHold(cfg.Autopilot.Altitude, cfg.Autopilot.Heading), nil
	case "doublet":
		var axis control.Axis
		switch cfg.Doublet.Axis {
		case "elevator", "":
			axis = control.AxisElevator
		case "aileron":
			axis = control.AxisAileron
		case "rudder":
			axis = control.AxisRudder
		default:
			return nil, fmt.Errorf("unknown doublet axis: %s", cfg.Doublet.Axis)
		}
		return control.NewDoublet(axis, cfg.Doublet.Amp, cfg.Doublet.Start, cfg.Doublet.Width), nil
	default:
		return nil, fmt.Errorf("unknown controller: %s", cfg.Controller)
	}
}

func buildEngine(cfg *config.Config) (*flight.Engine, error) {
	params, err := cfg.AircraftParams()
	if err != nil {
		return nil, err
	}

	eng := flight.NewEngine()
	eng.SetParams(params)
	eng.Initialize(cfg.Spawn.Position(), cfg.Spawn.Heading)
	return eng, nil
}

func runFlight(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	ctrl, err := buildController(cfg)
	if err != nil {
		return err
	}

	runner := sim.New(eng, ctrl)
	runner.AddMetric(metrics.NewAltitudeBand(cfg.Spawn.Y))
	runner.AddMetric(metrics.NewHeadingDrift(cfg.Spawn.Heading))
	runner.AddMetric(metrics.NewControlEffort())
	runner.AddMetric(metrics.NewRateMargin(eng.Params()))

	fmt.Printf("flying %s (%s)...\n", cfg.Aircraft, cfg.Controller)
	start := time.Now()

	result, err := runner.Run(context.Background(), sim.Config{
		Dt:            cfg.Dt,
		Duration:      cfg.Duration,
		ValidateState: true,
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Aircraft, cfg.Controller, cfg.Dt, cfg.Duration, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	for _, e := range result.Errors {
		fmt.Printf("warning: %v\n", e)
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no flights found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tAIRCRAFT\tTIME\tDURATION\tDT\tCTRL")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%s\n",
			run.ID,
			run.Aircraft,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Controller,
		)
	}

	return w.Flush()
}

// plotColumns is what plot shows, in order.
var plotColumns = []struct {
	name    string
	caption string
}{
	{"pos_y", "altitude (m)"},
	{"speed", "speed (m/s)"},
	{"pitch", "pitch (rad)"},
	{"roll", "roll (rad)"},
	{"yaw", "heading (rad)"},
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(series.Times) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("aircraft: %s\n", meta.Aircraft)
	fmt.Printf("samples: %d\n\n", len(series.Times))

	for _, pc := range plotColumns {
		data := series.Column(pc.name)
		if data == nil {
			continue
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(pc.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	return st.ExportCSVFile(args[0], outFile)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	return st.ExportJSONFile(args[0], outFile)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	cfg.Aircraft = aircraft
	if cmd.Flags().Changed("altitude") {
		cfg.Spawn.Y = altitude
	}
	if cmd.Flags().Changed("heading") {
		cfg.Spawn.Heading = heading
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	stepDt := config.DefaultDt
	if cmd.Flags().Changed("dt") {
		stepDt = dt
	}

	p := tea.NewProgram(viz.NewModel(eng, stepDt))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	fmt.Println("aircraft:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  NAME\tMASS\tWING AREA\tMAX THRUST\tCRUISE")
	for _, name := range config.ListAircraft() {
		p := config.GetAircraft(name)
		fmt.Fprintf(w, "  %s\t%.0f kg\t%.1f m²\t%.0f N\t%.0f m/s\n",
			name, p.Mass, p.WingArea, p.MaxThrust, p.CruiseSpeed)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\nscenarios:")
	for _, name := range config.ListScenarios() {
		c := config.GetScenario(name)
		fmt.Printf("  %-14s %s, %s, %.0fs\n", name, c.Aircraft, c.Controller, c.Duration)
	}
	return nil
}

func benchEngine(cmd *cobra.Command, args []string) error {
	params := config.GetAircraft(aircraft)
	if params == nil {
		return fmt.Errorf("unknown aircraft: %s (available: %v)", aircraft, config.ListAircraft())
	}

	durations := []float64{1.0, 10.0, 60.0}
	dts := []float64{1.0 / 240.0, 1.0 / 60.0, 1.0 / 30.0}

	fmt.Printf("benchmarking %s\n\n", aircraft)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tDT\tSTEPS\tTIME\tSTEPS/SEC")

	for _, dur := range durations {
		for _, stepDt := range dts {
			eng := flight.NewEngine()
			eng.SetParams(*params)
			eng.Initialize(config.DefaultConfig().Spawn.Position(), 0)

			runner := sim.New(eng, control.NewHold(flight.ControlInputs{Throttle: 0.7}))

			start := time.Now()
			result, err := runner.Run(context.Background(), sim.Config{Dt: stepDt, Duration: dur})
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			stepsPerSec := float64(result.StepsTaken) / elapsed.Seconds()
			fmt.Fprintf(w, "%.1fs\t%.4fs\t%d\t%v\t%.0f\n",
				dur, stepDt, result.StepsTaken, elapsed, stepsPerSec)
		}
	}

	return w.Flush()
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	data := series.Column(column)
	if data == nil {
		return fmt.Errorf("no column %q (available: %v)", column, series.Columns)
	}
	if len(data) < 4 {
		return fmt.Errorf("not enough samples to analyze")
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("column: %s\n\n", column)

	n := 1
	for n*2 <= len(data) {
		n *= 2
	}
	ps := analysis.PowerSpectrum(analysis.Detrend(data[:n]))

	plotData := ps[:len(ps)/4]
	if len(plotData) > 1 {
		graph := asciigraph.Plot(plotData,
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("power spectrum (%s)", column)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	freq, mag := analysis.DominantFrequency(data, meta.Dt)
	if freq == 0 {
		fmt.Println("no dominant oscillation found")
		return nil
	}
	fmt.Printf("dominant frequency: %.3f hz (magnitude %.3f)\n", freq, mag)
	fmt.Printf("period: %.3f s\n", 1.0/freq)

	return nil
}
