package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pendsim/internal/analysis"
	"github.com/san-kum/pendsim/internal/app"
	"github.com/san-kum/pendsim/internal/config"
	"github.com/san-kum/pendsim/internal/display"
	"github.com/san-kum/pendsim/internal/display/raster"
	"github.com/san-kum/pendsim/internal/display/term"
	"github.com/san-kum/pendsim/internal/display/window"
	"github.com/san-kum/pendsim/internal/dynamo"
	"github.com/san-kum/pendsim/internal/export"
	"github.com/san-kum/pendsim/internal/metrics"
	"github.com/san-kum/pendsim/internal/physics"
	"github.com/san-kum/pendsim/internal/sim"
	"github.com/san-kum/pendsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	width      int
	height     int
	fps        int
	theta      float64
	omega      float64
	radius     float64
	mass       float64

	theme     string
	recordOut string
	traceOut  string
	frames    int
	steps     int
	format    string
	plotTrace bool
	analyze   bool

	saveConfig  string
	pacedRecord bool
)

var logger = log.New(os.Stderr, "pendsim: ", log.LstdFlags)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Print(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pendsim",
		Short:         "simple pendulum simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runWindow,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.IntVar(&width, "width", config.DefaultWidth, "surface width in pixels")
	pf.IntVar(&height, "height", config.DefaultHeight, "surface height in pixels")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	pf.Float64Var(&theta, "theta", config.DefaultTheta, "initial angle (rad)")
	pf.Float64Var(&omega, "omega", config.DefaultThetaDot, "initial angular velocity (rad/s)")
	pf.Float64Var(&radius, "radius", config.DefaultRadius, "pendulum length (x100 px)")
	pf.Float64Var(&mass, "mass", config.DefaultMass, "bob mass")
	pf.StringVar(&saveConfig, "save-config", "", "write the effective config to this yaml file")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "run simulation in a desktop window",
		RunE:  runWindow,
	}

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "run simulation in the terminal",
		RunE:  runTerm,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation with live dashboard",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&theme, "theme", viz.Themes[0].Name, fmt.Sprintf("color theme %v", viz.ThemeNames()))

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "render frames headlessly to an animated GIF",
		RunE:  runRecord,
	}
	recordCmd.Flags().StringVarP(&recordOut, "output", "o", "pendulum.gif", "output file")
	recordCmd.Flags().IntVar(&frames, "frames", 100, "number of frames")
	recordCmd.Flags().BoolVar(&pacedRecord, "paced", false, "render in real time instead of as fast as possible")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "integrate without rendering and write the trajectory",
		RunE:  runTrace,
	}
	traceCmd.Flags().IntVar(&steps, "steps", 100, "number of steps")
	traceCmd.Flags().StringVar(&format, "format", "csv", "output format (csv, json, svg)")
	traceCmd.Flags().StringVarP(&traceOut, "output", "o", "", "output file (default stdout)")
	traceCmd.Flags().BoolVar(&plotTrace, "plot", false, "plot theta to stderr")
	traceCmd.Flags().BoolVar(&analyze, "analyze", false, "print period estimates and phase portrait to stderr")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-12s theta=%.4f omega=%.2f fps=%d\n", name, p.Theta, p.ThetaDot, p.FPS)
			}
			return nil
		},
	}

	rootCmd.AddCommand(windowCmd, termCmd, liveCmd, recordCmd, traceCmd, presetsCmd)
	return rootCmd
}

// loadConfig layers defaults, preset, config file and explicitly set flags,
// in that order.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return config.Config{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("theta") {
		cfg.Theta = theta
	}
	if flags.Changed("omega") {
		cfg.ThetaDot = omega
	}
	if flags.Changed("radius") {
		cfg.Radius = radius
	}
	if flags.Changed("mass") {
		cfg.Mass = mass
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	if saveConfig != "" {
		if err := config.Save(saveConfig, cfg); err != nil {
			return config.Config{}, fmt.Errorf("save config: %w", err)
		}
		logger.Printf("saved config to %s", saveConfig)
	}
	return *cfg, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func run(cfg config.Config, backend display.Backend) error {
	ctx, stop := signalContext()
	defer stop()

	r, err := app.NewRunner(cfg, backend, logger)
	if err != nil {
		return err
	}
	return r.RunUntilClosed(ctx)
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return run(cfg, window.NewBackend(cfg.Width, cfg.Height, cfg.Title, display.DefaultPalette()))
}

func runTerm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	return run(cfg, term.NewBackend(screen, cfg.Width, cfg.Height, display.DefaultPalette()))
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return run(cfg, viz.NewBackend(cfg.Width, cfg.Height, display.DefaultPalette(), viz.GetTheme(theme)))
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}

	palette := display.DefaultPalette()
	backend := raster.NewBackend(cfg.Width, cfg.Height, palette)
	backend.Frames = frames
	backend.Paced = pacedRecord
	rec := raster.NewRecorder(palette.Colors(), cfg.FPS)
	backend.Record(rec)

	if err := run(cfg, backend); err != nil {
		return err
	}

	err = writeFile(recordOut, func(w io.Writer) error {
		if err := rec.Encode(w); err != nil {
			return fmt.Errorf("encode gif: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Printf("wrote %d frames to %s", rec.Len(), recordOut)
	return nil
}

// writeFile creates path and hands it to write. The close error is
// returned when write itself succeeded.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}

var traceFormats = map[string]bool{"csv": true, "json": true, "svg": true}

type traceRun struct {
	sim     *sim.Simulation
	samples *export.Recorder
	drift   *metrics.EnergyDrift
	metrics []dynamo.Metric
}

// integrate steps a headless simulation, recording the initial state and
// every step after it. It stops early once the state stops being finite.
func integrate(cfg config.Config, steps int) (*traceRun, error) {
	surface := raster.NewSurface(cfg.Width, cfg.Height, display.DefaultPalette().Background)
	s, err := sim.New(physics.NewGravityField(surface), surface, app.Params(cfg))
	if err != nil {
		return nil, err
	}

	drift := metrics.NewEnergyDrift(s.Model())
	tr := &traceRun{
		sim:     s,
		samples: export.NewRecorder(s.Model()),
		drift:   drift,
		metrics: []dynamo.Metric{metrics.NewEnergy(s.Model()), drift},
	}

	tr.samples.Record(s.State(), s.Time())
	s.AddObserver(tr.samples)
	for _, m := range tr.metrics {
		m.OnStep(s.State(), s.Time())
		s.AddObserver(m)
	}

	for i := 0; i < steps; i++ {
		s.Step()
		if !s.State().IsValid() {
			return tr, fmt.Errorf("step %d: %w", s.Steps(), dynamo.ErrInvalidState)
		}
	}
	return tr, nil
}

func writeTrace(w io.Writer, tr *traceRun, cfg config.Config) error {
	switch format {
	case "csv":
		return export.WriteCSV(w, tr.samples.Samples())
	case "json":
		values := make(map[string]float64, len(tr.metrics))
		for _, m := range tr.metrics {
			values[m.Name()] = m.Value()
		}
		return export.WriteJSON(w, &export.Trace{
			Radius:  tr.sim.Radius(),
			Mass:    tr.sim.Mass(),
			Dt:      tr.sim.Dt(),
			Steps:   tr.sim.Steps(),
			Metrics: values,
			Samples: tr.samples.Samples(),
		})
	case "svg":
		return export.WriteSVG(w, tr.samples.Samples(), cfg.Width, cfg.Height, "#640032")
	}
	return fmt.Errorf("unknown format: %s (csv, json, svg)", format)
}

func runTrace(cmd *cobra.Command, args []string) error {
	if !traceFormats[format] {
		return fmt.Errorf("unknown format: %s (csv, json, svg)", format)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}

	tr, err := integrate(cfg, steps)
	if err != nil {
		return err
	}

	if traceOut == "" {
		err = writeTrace(os.Stdout, tr, cfg)
	} else {
		err = writeFile(traceOut, func(w io.Writer) error { return writeTrace(w, tr, cfg) })
	}
	if err != nil {
		return err
	}

	samples := tr.samples.Samples()
	thetas := make([]float64, len(samples))
	omegas := make([]float64, len(samples))
	for i, sm := range samples {
		thetas[i] = sm.Theta
		omegas[i] = sm.ThetaDot
	}

	if plotTrace {
		graph := asciigraph.Plot(thetas,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("theta (angle)"),
		)
		fmt.Fprintln(os.Stderr, graph)
	}

	if analyze {
		printAnalysis(os.Stderr, thetas, omegas, tr.sim.Dt())
	}

	logger.Printf("%d steps, %s max=%.4g final=%.4g",
		tr.sim.Steps(), tr.drift.Name(), tr.drift.Value(), tr.drift.Current())
	return nil
}

func printAnalysis(w io.Writer, thetas, omegas []float64, dt float64) {
	level := analysis.RestLevel(thetas)
	fmt.Fprintf(w, "rest angle:         %.4f\n", level)
	if p, err := analysis.CrossingPeriod(thetas, dt, level); err == nil {
		fmt.Fprintf(w, "period (crossings): %.3f\n", p)
	} else {
		fmt.Fprintf(w, "period (crossings): %v\n", err)
	}
	if p, err := analysis.DominantPeriod(thetas, dt); err == nil {
		fmt.Fprintf(w, "period (spectrum):  %.3f\n", p)
	} else {
		fmt.Fprintf(w, "period (spectrum):  %v\n", err)
	}
	fmt.Fprintln(w, "phase portrait (theta, omega):")
	fmt.Fprint(w, analysis.PhasePortraitToASCII(analysis.PhasePortrait(thetas, omegas), 60, 20))
}
