package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orbitview/internal/analysis"
	"github.com/san-kum/orbitview/internal/config"
	"github.com/san-kum/orbitview/internal/gui"
	"github.com/san-kum/orbitview/internal/physics"
	"github.com/san-kum/orbitview/internal/storage"
	"github.com/san-kum/orbitview/internal/units"
	"github.com/san-kum/orbitview/internal/vec"
	"github.com/san-kum/orbitview/internal/viz"
)

var (
	dataDir    string
	configFile string
	duration   float64
	integrator string
	frameName  string
	scale      float64
	speed      float64
	samples    int
	bodyID     string
	axis       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitview",
		Short: "n-body orbit viewer",
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the interactive GUI when no command given.
			gui.RunInteractive()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orbitview", "data directory")

	guiCmd := &cobra.Command{
		Use:   "gui [preset]",
		Short: "open a system in the graphical viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}
	addConfigFlags(guiCmd)

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "view a system in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addConfigFlags(liveCmd)

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a system headless and record it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	addConfigFlags(runCmd)
	runCmd.Flags().Float64Var(&duration, "time", 10.0, "simulated duration in seconds")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded body coordinate",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&bodyID, "body", "", "body id (defaults to the first body)")
	plotCmd.Flags().StringVar(&axis, "axis", "x", "coordinate axis: x, y, or z")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "orbital period analysis of a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&bodyID, "body", "", "body id (defaults to the first body)")
	analyzeCmd.Flags().StringVar(&axis, "axis", "x", "coordinate axis: x, y, or z")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in systems",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a recorded run as json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(args[0])
		},
	}

	saveConfigCmd := &cobra.Command{
		Use:   "save-config [preset] [path]",
		Short: "write a preset out as a yaml config",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetPreset(args[0])
			if cfg == nil {
				return fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
			}
			return config.Save(args[1], cfg)
		},
	}

	rootCmd.AddCommand(guiCmd, liveCmd, runCmd, listCmd, plotCmd, analyzeCmd, presetsCmd, exportJSONCmd, saveConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&integrator, "integrator", "leapfrog", "integrator: leapfrog or rk4")
	cmd.Flags().StringVar(&frameName, "frame", "fixed", "reference frame: fixed, barycenter, or a body id")
	cmd.Flags().Float64Var(&scale, "scale", 1.0, "render scale")
	cmd.Flags().Float64Var(&speed, "speed", 0.02, "simulated seconds per tick")
	cmd.Flags().IntVar(&samples, "samples", 4, "integrator substeps per tick")
}

// loadConfig resolves the session config: preset or yaml file first,
// then any explicitly set flags override it.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	var cfg *config.Config

	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	case len(args) > 0:
		cfg = config.GetPreset(args[0])
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
	default:
		cfg = config.DefaultConfig()
	}

	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}
	if cmd.Flags().Changed("frame") {
		cfg.Frame = frameName
	}
	if cmd.Flags().Changed("scale") {
		cfg.Scale = scale
	}
	if cmd.Flags().Changed("speed") {
		cfg.Speed = speed
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}

	return cfg, cfg.Validate()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	m, err := viz.NewModel(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	sys, err := cfg.BuildSystem()
	if err != nil {
		return err
	}
	integ := physics.NewIntegrator(cfg.Integrator)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ticks := int(duration / cfg.Speed)
	if ticks < 1 {
		ticks = 1
	}

	bodies := make([]string, len(sys.Bodies))
	for i, b := range sys.Bodies {
		bodies[i] = b.ID
	}

	energy0 := sys.Energy()
	momentum0 := sys.Momentum()

	result := &storage.Result{
		Times:     make([]float64, 0, ticks),
		Positions: make([][]vec.Vec3, 0, ticks),
	}

	fmt.Printf("running %s for %s...\n", cfg.Name, units.FormatDuration(duration))
	start := time.Now()

	elapsed := 0.0
	for i := 0; i < ticks; i++ {
		if err := sys.Advance(integ, cfg.Speed, cfg.Samples); err != nil {
			return err
		}
		elapsed += cfg.Speed

		row := make([]vec.Vec3, len(sys.Bodies))
		for j, b := range sys.Bodies {
			row[j] = b.Position
		}
		result.Times = append(result.Times, elapsed)
		result.Positions = append(result.Positions, row)
	}

	energy1 := sys.Energy()
	drift := 0.0
	if energy0 != 0 {
		drift = math.Abs((energy1 - energy0) / energy0)
	}
	result.Metrics = map[string]float64{
		"energy_initial":  energy0,
		"energy_final":    energy1,
		"energy_drift":    drift,
		"momentum_change": sys.Momentum().Sub(momentum0).Length(),
	}

	runID, err := st.Save(cfg.Name, cfg.Integrator, cfg.Speed, cfg.Samples, ticks, bodies, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("ticks: %d\n", ticks)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6e\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSYSTEM\tTIME\tTICKS\tSPEED\tINTEG\tBODIES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%d\n",
			run.ID,
			run.System,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Ticks,
			units.FormatDuration(run.Speed),
			run.Integrator,
			len(run.Bodies),
		)
	}

	return w.Flush()
}

// series extracts one body's coordinate over time from a stored run.
func series(runID string) (*storage.RunMetadata, []float64, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	_, positions, err := st.LoadPositions(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(positions) == 0 {
		return nil, nil, fmt.Errorf("no data in run %s", runID)
	}

	idx := 0
	if bodyID != "" {
		idx = -1
		for i, id := range meta.Bodies {
			if strings.EqualFold(id, bodyID) {
				idx = i
			}
		}
		if idx < 0 {
			return nil, nil, fmt.Errorf("unknown body %q (available: %v)", bodyID, meta.Bodies)
		}
	}

	data := make([]float64, len(positions))
	for i, row := range positions {
		if idx >= len(row) {
			return nil, nil, fmt.Errorf("run %s has truncated rows", runID)
		}
		switch axis {
		case "y":
			data[i] = row[idx].Y
		case "z":
			data[i] = row[idx].Z
		default:
			data[i] = row[idx].X
		}
	}
	return meta, data, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, data, err := series(args[0])
	if err != nil {
		return err
	}

	name := meta.Bodies[0]
	if bodyID != "" {
		name = bodyID
	}
	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("system: %s\n\n", meta.System)

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s %s vs time", name, axis)),
	)
	fmt.Println(graph)
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, data, err := series(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("period analysis: %s\n", meta.ID)
	fmt.Printf("system: %s\n\n", meta.System)

	ps := analysis.PowerSpectrum(data)
	plotData := ps
	if len(plotData) > 4 {
		plotData = ps[:len(ps)/4]
	}
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum"),
	)
	fmt.Println(graph)
	fmt.Println()

	freq, power := analysis.DominantFrequency(data, meta.Speed)
	if freq == 0 {
		fmt.Println("no dominant frequency found")
		return nil
	}
	fmt.Printf("dominant frequency: %.6e hz (power %.3e)\n", freq, power)
	fmt.Printf("period: %s\n", units.FormatDuration(1.0/freq))
	return nil
}
