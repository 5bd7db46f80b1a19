package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/springlab/internal/analysis"
	"github.com/san-kum/springlab/internal/config"
	"github.com/san-kum/springlab/internal/curve"
	"github.com/san-kum/springlab/internal/export"
	"github.com/san-kum/springlab/internal/metrics"
	"github.com/san-kum/springlab/internal/playback"
	"github.com/san-kum/springlab/internal/reference"
	"github.com/san-kum/springlab/internal/spring"
	"github.com/san-kum/springlab/internal/sweep"
	"github.com/san-kum/springlab/internal/tui"
	"github.com/san-kum/springlab/internal/viz"
)

var (
	configFile string
	logLevel   string
	logger     = slog.Default()

	durationMs float64
	bounce     float64
	presetName string

	plotWidth  int
	plotHeight int

	svgWidth  int
	svgHeight int
	outFile   string
	phase     bool

	// play
	realtime bool

	// analyze
	analyzeSpan    float64
	analyzeSamples int

	// sweep
	dMin, dMax float64
	bMin, bMax float64
	dN, bN     int
	workers    int
	sweepCSV   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "springlab",
		Short:        "damped spring step responses from duration and bounce",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLogLevel(logLevel)
			if err != nil {
				return err
			}
			logger = setupLogger(os.Stderr, level)
			slog.SetDefault(logger)
			return nil
		},
		RunE: runInteractive,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (error, warn, info, debug)")
	addSpringFlags(rootCmd)

	paramsCmd := &cobra.Command{
		Use:   "params",
		Short: "print derived spring parameters",
		Args:  cobra.NoArgs,
		RunE:  showParams,
	}

	evalCmd := &cobra.Command{
		Use:   "eval [t...]",
		Short: "evaluate the step response at times in seconds",
		Args:  cobra.MinimumNArgs(1),
		RunE:  evalResponse,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the step response with metrics",
		Args:  cobra.NoArgs,
		RunE:  plotResponse,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 70, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 12, "plot height")

	csvCmd := &cobra.Command{
		Use:   "csv",
		Short: "write the sampled response as CSV",
		Args:  cobra.NoArgs,
		RunE:  exportCSV,
	}

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "render the step response as SVG",
		Args:  cobra.NoArgs,
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	svgCmd.Flags().IntVar(&svgWidth, "width", 600, "image width")
	svgCmd.Flags().IntVar(&svgHeight, "height", 300, "image height")
	svgCmd.Flags().BoolVar(&phase, "phase", false, "draw the phase portrait instead")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "animate the box along its track",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}
	playCmd.Flags().BoolVar(&realtime, "realtime", true, "pace frames with the wall clock")

	uiCmd := &cobra.Command{
		Use:   "ui",
		Short: "interactive spring editor",
		Args:  cobra.NoArgs,
		RunE:  runInteractive,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare the closed form against a harmonica trace",
		Args:  cobra.NoArgs,
		RunE:  compareReference,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "frequency analysis of the response",
		Args:  cobra.NoArgs,
		RunE:  analyzeResponse,
	}
	analyzeCmd.Flags().Float64Var(&analyzeSpan, "span", 8, "sampled span as a multiple of the duration")
	analyzeCmd.Flags().IntVar(&analyzeSamples, "samples", 2048, "number of sample intervals")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "overshoot and settling time over a duration x bounce grid",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&dMin, "dmin", 200, "minimum duration (ms)")
	sweepCmd.Flags().Float64Var(&dMax, "dmax", 1000, "maximum duration (ms)")
	sweepCmd.Flags().IntVar(&dN, "dn", 5, "duration steps")
	sweepCmd.Flags().Float64Var(&bMin, "bmin", -0.5, "minimum bounce")
	sweepCmd.Flags().Float64Var(&bMax, "bmax", 0.6, "maximum bounce")
	sweepCmd.Flags().IntVar(&bN, "bn", 5, "bounce steps")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (default NumCPU)")
	sweepCmd.Flags().BoolVar(&sweepCSV, "csv", false, "write CSV instead of a table")

	rootCmd.AddCommand(paramsCmd, evalCmd, plotCmd, csvCmd, svgCmd, playCmd, uiCmd, presetsCmd, compareCmd, analyzeCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSpringFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Float64Var(&durationMs, "duration", config.DefaultDurationMillis, "perceptual duration (ms)")
	cmd.PersistentFlags().Float64Var(&bounce, "bounce", config.DefaultBounce, "bounce, negative for sluggish")
	cmd.PersistentFlags().StringVar(&presetName, "preset", "", "use preset configuration")
}

// loadConfig layers defaults, the config file, the preset and explicit
// flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("preset") {
		cfg.Preset = presetName
	}
	if err := cfg.Resolve(); err != nil {
		return nil, err
	}
	if flags.Changed("duration") {
		cfg.DurationMillis = durationMs
	}
	if flags.Changed("bounce") {
		cfg.Bounce = bounce
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("config resolved",
		"duration_ms", cfg.DurationMillis,
		"bounce", cfg.Bounce,
		"preset", cfg.Preset,
		"file", configFile)
	return cfg, nil
}

func sampled(cfg *config.Config) (spring.Params, []curve.Point) {
	p := spring.Compute(cfg.DurationMillis, cfg.Bounce)
	span := curve.Span(cfg.DurationMillis, cfg.SpanFactor)
	return p, curve.Sample(p, span, cfg.Steps)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return viz.RunInteractive(cfg)
}

func showParams(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p := spring.Compute(cfg.DurationMillis, cfg.Bounce)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "duration\t%.1f ms\n", cfg.DurationMillis)
	fmt.Fprintf(w, "bounce\t%.3f\n", cfg.Bounce)
	fmt.Fprintf(w, "zeta\t%.6f\n", p.Zeta)
	fmt.Fprintf(w, "omega_n\t%.6f rad/s\n", p.OmegaN)
	fmt.Fprintf(w, "stiffness\t%.6f\n", p.Stiffness())
	fmt.Fprintf(w, "regime\t%s\n", p.Regime())
	fmt.Fprintf(w, "omega_d\t%.6f rad/s\n", p.DampedFrequency())
	fmt.Fprintf(w, "peak_time\t%s\n", formatSeconds(p.PeakTime()))
	fmt.Fprintf(w, "overshoot\t%.2f%%\n", spring.PeakOvershoot(p.Zeta)*100)
	return w.Flush()
}

func evalResponse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p := spring.Compute(cfg.DurationMillis, cfg.Bounce)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "T\tY")
	for _, arg := range args {
		t, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid time %q: %w", arg, err)
		}
		fmt.Fprintf(w, "%.6f\t%.6f\n", t, p.At(t))
	}
	return w.Flush()
}

func plotResponse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p, points := sampled(cfg)

	caption := fmt.Sprintf("%.0fms bounce %.2f (ζ=%.3f, %s)", cfg.DurationMillis, cfg.Bounce, p.Zeta, p.Regime())
	fmt.Println(viz.Graph(points, plotWidth, plotHeight, caption))
	fmt.Println()
	printMetrics(os.Stdout, metrics.Default(), points)
	return nil
}

func printMetrics(out io.Writer, ms []metrics.Metric, points []curve.Point) {
	values := metrics.Evaluate(points, ms...)
	for _, name := range metrics.Names(ms) {
		fmt.Fprintf(out, "  %-14s %s\n", name, formatValue(name, values[name]))
	}
}

func formatValue(name string, v float64) string {
	switch name {
	case "overshoot":
		return fmt.Sprintf("%.2f%%", v*100)
	case "peak_time", "rise_time", "settling_time":
		return formatSeconds(v)
	}
	return fmt.Sprintf("%.6f", v)
}

func formatSeconds(s float64) string {
	if math.IsInf(s, 1) {
		return "never"
	}
	return fmt.Sprintf("%.4fs", s)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	_, points := sampled(cfg)
	return export.WriteCSV(os.Stdout, points)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	_, points := sampled(cfg)
	theme, _ := viz.GetTheme(cfg.Theme)

	var svg string
	if phase {
		portrait := analysis.NewPhasePortrait(points)
		svg = export.TrajectoryToSVG(portrait.Points, svgWidth, svgHeight, string(theme.Curve))
	} else {
		svg = export.CurveSVG(points, svgWidth, svgHeight, cfg.MaxY, string(theme.Curve))
	}

	if outFile == "" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(svg), 0o644); err != nil {
		return err
	}
	logger.Info("svg written", "path", outFile, "points", len(points))
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p := spring.Compute(cfg.DurationMillis, cfg.Bounce)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	label := fmt.Sprintf("%.0fms bounce %.2f", cfg.DurationMillis, cfg.Bounce)
	pcfg := playback.Config{
		Span:     curve.Span(cfg.DurationMillis, cfg.SpanFactor),
		FPS:      cfg.FPS,
		Realtime: realtime,
	}
	renderer := tui.NewPlaybackRenderer(label, pcfg, cfg.MaxY)

	player := playback.New(p, pcfg, logger)
	player.AddObserver(renderer)
	ms := metrics.Default()
	for _, m := range ms {
		player.AddMetric(m)
	}

	renderer.Start()
	summary, err := player.Run(ctx)
	renderer.Stop()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	fmt.Printf("\n  frames %d in %v\n", summary.Frames, summary.Elapsed.Round(time.Millisecond))
	for _, name := range metrics.Names(ms) {
		fmt.Printf("  %-14s %s\n", name, formatValue(name, summary.Metrics[name]))
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLABEL\tDURATION\tBOUNCE\tZETA\tREGIME")
	for _, name := range config.ListPresets() {
		preset, _ := config.GetPreset(name)
		p := spring.Compute(preset.DurationMillis, preset.Bounce)
		fmt.Fprintf(w, "%s\t%s\t%.0fms\t%.2f\t%.4f\t%s\n",
			name, preset.Label, preset.DurationMillis, preset.Bounce, p.Zeta, p.Regime())
	}
	return w.Flush()
}

func compareReference(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p := spring.Compute(cfg.DurationMillis, cfg.Bounce)
	span := curve.Span(cfg.DurationMillis, cfg.SpanFactor)

	ref := reference.Trace(p, cfg.FPS, span)
	cmp := reference.Compare(p, ref)

	closed := make([]curve.Point, len(ref))
	for i, pt := range ref {
		closed[i] = curve.Point{T: pt.T, Y: p.At(pt.T)}
	}

	fmt.Printf("regime %s, %d samples at %d fps\n", p.Regime(), cmp.Samples, cfg.FPS)
	fmt.Printf("max deviation %.6g at t=%.4fs, rms %.6g\n\n", cmp.MaxDeviation, cmp.At, cmp.RMS)

	closedValues := metrics.Evaluate(closed)
	refValues := metrics.Evaluate(ref)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tCLOSED FORM\tHARMONICA")
	for _, name := range metrics.Names(metrics.Default()) {
		fmt.Fprintf(w, "%s\t%s\t%s\n", name,
			formatValue(name, closedValues[name]),
			formatValue(name, refValues[name]))
	}
	return w.Flush()
}

// checkAnalyzeFlags rejects spans and sample counts that collapse every
// sample onto t = 0.
func checkAnalyzeFlags(span float64, samples int) error {
	if !(span > 0) || math.IsInf(span, 0) {
		return fmt.Errorf("analyze: --span must be positive, got %v", span)
	}
	if samples < 1 {
		return fmt.Errorf("analyze: --samples must be positive, got %d", samples)
	}
	return nil
}

func analyzeResponse(cmd *cobra.Command, args []string) error {
	if err := checkAnalyzeFlags(analyzeSpan, analyzeSamples); err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p := spring.Compute(cfg.DurationMillis, cfg.Bounce)
	points := curve.Sample(p, curve.Span(cfg.DurationMillis, analyzeSpan), analyzeSamples)

	expected := analysis.ExpectedFrequency(p)
	fmt.Printf("regime      %s\n", p.Regime())
	fmt.Printf("expected    %.4f Hz\n", expected)

	crossing, err := analysis.CrossingFrequency(points)
	switch {
	case errors.Is(err, analysis.ErrNoOscillation):
		fmt.Println("crossings   none, response never passes the target")
		return nil
	case err != nil:
		return err
	}
	fmt.Printf("crossings   %.4f Hz (%+.3f%%)\n", crossing, relErr(crossing, expected))

	dominant, err := analysis.DominantFrequency(points)
	if err != nil {
		return err
	}
	fmt.Printf("spectrum    %.4f Hz (%+.3f%%)\n", dominant, relErr(dominant, expected))
	return nil
}

func relErr(got, want float64) float64 {
	if want == 0 {
		return 0
	}
	return (got - want) / want * 100
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	grid := sweep.Grid{
		Durations: sweep.Linspace(dMin, dMax, dN),
		Bounces:   sweep.Linspace(bMin, bMax, bN),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rows, err := sweep.Run(ctx, grid, sweep.Options{
		Workers:    workers,
		Steps:      cfg.Steps,
		SpanFactor: cfg.SpanFactor,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	if sweepCSV {
		return export.WriteSweepCSV(os.Stdout, rows)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tBOUNCE\tZETA\tOMEGA_N\tOVERSHOOT\tSETTLE")
	for _, r := range rows {
		fmt.Fprintf(w, "%.0fms\t%+.2f\t%.4f\t%.3f\t%.2f%%\t%s\n",
			r.DurationMillis, r.Bounce, r.Params.Zeta, r.Params.OmegaN,
			r.Overshoot*100, formatSeconds(r.SettlingTime))
	}
	return w.Flush()
}
