package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/accrete/internal/accrete"
	"github.com/san-kum/accrete/internal/config"
	"github.com/san-kum/accrete/internal/experiment"
	"github.com/san-kum/accrete/internal/export"
	"github.com/san-kum/accrete/internal/logging"
	"github.com/san-kum/accrete/internal/optim"
	"github.com/san-kum/accrete/internal/storage"
	"github.com/san-kum/accrete/internal/viz"
)

var (
	dataDir    string
	logLevel   string
	mass       float64
	luminosity float64
	seed       int64
	source     string
	configFile string
	preset     string
	format     string
	save       bool
	svgPath    string
	psPath     string
	runs       int
	checks     bool
	masses     []float64
	lums       []float64
	objective  string
	maximize   bool
)

// main registers the accrete commands. With no subcommand it runs the
// default system and prints one planet per line.
func main() {
	rootCmd := &cobra.Command{
		Use:          "accrete",
		Short:        "planetary system formation by dust accretion",
		SilenceUsage: true,
		RunE:         runDefault,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".accrete", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (error, warn, info, debug, trace)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "form one planetary system",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addStarFlags(runCmd)
	runCmd.Flags().StringVar(&format, "format", config.DefaultFormat, "output format (text, table, json, csv)")
	runCmd.Flags().BoolVar(&save, "save", false, "archive the run under --data")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write an SVG plot to this path")
	runCmd.Flags().StringVar(&psPath, "ps", "", "write a PostScript plot to this path")
	runCmd.Flags().BoolVar(&checks, "checks", false, "verify disk and planet invariants after every step")

	ensembleCmd := &cobra.Command{
		Use:   "ensemble",
		Short: "form many systems over consecutive seeds and summarize",
		Args:  cobra.NoArgs,
		RunE:  runEnsemble,
	}
	addStarFlags(ensembleCmd)
	ensembleCmd.Flags().IntVar(&runs, "runs", 10, "number of runs")
	ensembleCmd.Flags().StringVar(&format, "format", config.DefaultFormat, "output format (text, json)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch a system form nucleus by nucleus",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addStarFlags(liveCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "grid search over stellar mass and luminosity",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addStarFlags(sweepCmd)
	sweepCmd.Flags().Float64SliceVar(&masses, "masses", []float64{0.5, 0.75, 1.0, 1.25, 1.5}, "stellar masses to sweep")
	sweepCmd.Flags().Float64SliceVar(&lums, "luminosities", nil, "luminosities to sweep (default: follow L = M^3.5)")
	sweepCmd.Flags().StringVar(&objective, "objective", "planets", "quantity to rank by (planets, giants, total_mass, nuclei, or a metric name)")
	sweepCmd.Flags().BoolVar(&maximize, "maximize", false, "rank highest first")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list archived runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot an archived run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&svgPath, "svg", "", "write an SVG plot to this path")
	plotCmd.Flags().StringVar(&psPath, "ps", "", "write a PostScript plot to this path")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export an archived run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export an archived run's planets to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list star presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMASS\tLUMINOSITY")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%g\t%g\n", name, p.Star.Mass, p.Star.Luminosity)
			}
			w.Flush()
		},
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default configuration as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, ensembleCmd, liveCmd, sweepCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, presetsCmd, initConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addStarFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&mass, "mass", config.DefaultMass, "stellar mass (solar masses)")
	cmd.Flags().Float64Var(&luminosity, "luminosity", config.DefaultLuminosity, "stellar luminosity (solar luminosities)")
	cmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")
	cmd.Flags().StringVar(&source, "source", config.DefaultSource, "random source (java, go)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a star preset")
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("mass") {
		cfg.Star.Mass = mass
	}
	if flags.Changed("luminosity") {
		cfg.Star.Luminosity = luminosity
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("source") {
		cfg.Source = source
	}
	if flags.Changed("format") {
		cfg.Output.Format = format
	}
	if flags.Changed("save") {
		cfg.Output.Save = save
	}
	if flags.Changed("svg") {
		cfg.Output.SVG = svgPath
	}
	if flags.Changed("ps") {
		cfg.Output.PostScript = psPath
	}
	if flags.Changed("runs") {
		cfg.Runs = runs
	}
	if flags.Changed("checks") {
		cfg.Checks = checks
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logging.NewLogger(cfg.LogLevel, os.Stderr)
}

func experimentConfig(cfg *config.Config, logger *slog.Logger) experiment.Config {
	return experiment.Config{
		Star:   cfg.GetStar(),
		Seed:   cfg.Seed,
		Source: cfg.Source,
		Checks: cfg.Checks,
		Logger: logger,
	}
}

func runDefault(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return formSystem(cfg)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return formSystem(cfg)
}

func formSystem(cfg *config.Config) error {
	logger := newLogger(cfg)

	exp := experiment.New(experimentConfig(cfg, logger))
	if err := exp.Setup(nil); err != nil {
		return err
	}

	start := time.Now()
	result, err := exp.Run()
	if err != nil {
		return err
	}
	logger.Info("system formed",
		"planets", len(result.Planets),
		"nuclei", result.Nuclei,
		"elapsed", time.Since(start))

	if err := writeResult(os.Stdout, cfg, result); err != nil {
		return err
	}

	if cfg.Output.SVG != "" {
		if err := export.WriteFile(cfg.Output.SVG, "svg", result.Planets); err != nil {
			return err
		}
		logger.Info("wrote plot", "path", cfg.Output.SVG)
	}
	if cfg.Output.PostScript != "" {
		if err := export.WriteFile(cfg.Output.PostScript, "ps", result.Planets); err != nil {
			return err
		}
		logger.Info("wrote plot", "path", cfg.Output.PostScript)
	}

	if cfg.Output.Save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg.Seed, cfg.Source, result)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "run id: %s\n", runID)
	}
	return nil
}

func writeResult(w io.Writer, cfg *config.Config, result *accrete.Result) error {
	switch cfg.Output.Format {
	case "table":
		fmt.Fprintln(w, viz.PlanetTable(result.Planets))
		fmt.Fprintln(w, viz.MassProfile(result.Planets, 60))
		fmt.Fprintln(w, "metrics:")
		for _, name := range slices.Sorted(maps.Keys(result.Metrics)) {
			fmt.Fprintf(w, "  %s: %.6f\n", name, result.Metrics[name])
		}
		return nil
	case "json":
		return export.WriteJSON(w, export.NewExportData(cfg.Seed, cfg.Source, result))
	case "csv":
		return export.WriteCSV(w, result.Planets)
	default:
		return export.WriteText(w, result.Planets)
	}
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("runs") && cfg.Runs == config.DefaultRuns {
		cfg.Runs = runs
	}
	logger := newLogger(cfg)

	ens := experiment.NewEnsemble(experimentConfig(cfg, logger), cfg.Runs)
	start := time.Now()
	results, err := ens.Run()
	if err != nil {
		return err
	}
	logger.Info("ensemble complete", "runs", len(results), "elapsed", time.Since(start))

	summary := experiment.Summarize(results)
	if cfg.Output.Format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	fmt.Println(viz.SummaryView(summary))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// Log output would tear the TUI.
	expCfg := experimentConfig(cfg, nil)
	build := func() (*accrete.Simulator, error) {
		exp := experiment.New(expCfg)
		if err := exp.Setup(nil); err != nil {
			return nil, err
		}
		return exp.GetSimulator(), nil
	}

	m, err := viz.NewModel(build)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(viz.Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	names, ranges := []string{"mass"}, [][]float64{masses}
	if len(lums) > 0 {
		names, ranges = append(names, "luminosity"), append(ranges, lums)
	}
	g := optim.NewGridSearch(names, ranges)

	best, all, err := g.Search(optim.StarExperiment(experimentConfig(cfg, logger), len(lums) == 0), optim.Objective(objective), maximize)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range g.Names() {
		fmt.Fprintf(w, "%s\t", strings.ToUpper(name))
	}
	fmt.Fprintln(w, strings.ToUpper(objective))
	for _, p := range all {
		for _, name := range g.Names() {
			fmt.Fprintf(w, "%g\t", p.Params[name])
		}
		fmt.Fprintf(w, "%g\n", p.Value)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nbest: %v -> %g\n", best.Params, best.Value)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	archived, err := st.List()
	if err != nil {
		return err
	}

	if len(archived) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSEED\tSOURCE\tSTAR\tPLANETS\tNUCLEI")

	for _, run := range archived {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%g/%g\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Seed,
			run.Source,
			run.Star.Mass,
			run.Star.Luminosity,
			run.NumPlanets,
			run.Nuclei,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	planets, err := st.LoadPlanets(runID)
	if err != nil {
		return err
	}

	if len(planets) == 0 {
		return fmt.Errorf("no planets to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("star: %g M☉ %g L☉\n", meta.Star.Mass, meta.Star.Luminosity)
	fmt.Printf("planets: %d\n\n", len(planets))
	fmt.Println(viz.PlanetTable(planets))
	fmt.Println(viz.MassProfile(planets, 60))

	if svgPath != "" {
		if err := export.WriteFile(svgPath, "svg", planets); err != nil {
			return err
		}
	}
	if psPath != "" {
		if err := export.WriteFile(psPath, "ps", planets); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	planets, err := st.LoadPlanets(runID)
	if err != nil {
		return err
	}

	return export.WriteJSON(os.Stdout, export.ExportData{
		Star:    meta.Star,
		Seed:    meta.Seed,
		Source:  meta.Source,
		Nuclei:  meta.Nuclei,
		Merges:  meta.Merges,
		Planets: export.Records(planets),
		Metrics: meta.Metrics,
	})
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	planets, err := st.LoadPlanets(args[0])
	if err != nil {
		return err
	}
	return export.WriteCSV(os.Stdout, planets)
}
