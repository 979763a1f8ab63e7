package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/growvec/internal/config"
	"github.com/san-kum/growvec/internal/dynarray"
	"github.com/san-kum/growvec/internal/logging"
	"github.com/san-kum/growvec/internal/metrics"
	"github.com/san-kum/growvec/internal/scenario"
	"github.com/san-kum/growvec/internal/storage"
	"github.com/san-kum/growvec/internal/sweep"
	"github.com/san-kum/growvec/internal/viz"
)

var (
	dataDir     string
	debug       bool
	configFile  string
	capacity    int
	save        bool
	plot        bool
	stopOnError bool
	interval    time.Duration
	sweepFrom   int
	sweepTo     int

	logger = zap.NewNop()
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers every command and flag. With no subcommand the root
// runs the demonstration driver.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "growvec",
		Short:         "growable array playground",
		SilenceUsage:  true,
		RunE:          runDemo,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = logging.New(debug)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".growvec", "data directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every operation")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a scenario",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	runCmd.Flags().IntVar(&capacity, "capacity", 0, "initial capacity (switches the constructor to capacity)")
	runCmd.Flags().BoolVar(&save, "save", false, "save the run to the data directory")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot size and capacity after the run")
	runCmd.Flags().BoolVar(&stopOnError, "stop-on-error", false, "stop at the first failed operation")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available scenario presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, p := range config.ListPresets() {
				fmt.Fprintf(out, "  %s\n", p)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot size and capacity of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	watchCmd := &cobra.Command{
		Use:   "watch [preset]",
		Short: "step through a scenario interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  watchScenario,
	}
	watchCmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	watchCmd.Flags().DurationVar(&interval, "interval", 250*time.Millisecond, "autoplay interval")

	compareCmd := &cobra.Command{
		Use:   "compare [preset]",
		Short: "compare growth across initial capacities",
		Args:  cobra.MaximumNArgs(1),
		RunE:  compareCapacities,
	}
	compareCmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	compareCmd.Flags().IntVar(&sweepFrom, "from", 0, "first initial capacity")
	compareCmd.Flags().IntVar(&sweepTo, "to", 16, "last initial capacity")

	rootCmd.AddCommand(runCmd, presetsCmd, listCmd, plotCmd, exportCmd, watchCmd, compareCmd)
	return rootCmd
}

// runDemo fills an array past its default capacity, empties it again and
// prints the result.
func runDemo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	list1 := dynarray.New[int]()
	list2 := dynarray.New[int]()
	for i := 0; i < 10; i++ {
		list1.Append(i)
		list2.Append(i + 1)
	}
	list1.Append(1)

	for i := 0; i < 11; i++ {
		if err := list1.RemoveAt(0); err != nil {
			return err
		}
	}

	logger.Debug("demo finished", zap.Object("list1", list1), zap.Object("list2", list2))

	fmt.Fprintln(out, list1.IsEmpty())
	return list1.Dump(out)
}

// loadScenario resolves the scenario from a preset name and/or config file.
// The file wins over the preset; explicitly set flags win over both.
func loadScenario(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.GetPreset("demo")
	if len(args) > 0 {
		cfg = config.GetPreset(args[0])
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if f := cmd.Flags().Lookup("capacity"); f != nil && f.Changed {
		cfg.Constructor = config.ConstructorCapacity
		cfg.Capacity = capacity
	}
	if f := cmd.Flags().Lookup("stop-on-error"); f != nil && f.Changed {
		cfg.StopOnError = stopOnError
	}
	return cfg, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	runner := scenario.New(logger)
	for _, m := range metrics.Default() {
		runner.AddMetric(m)
	}

	result, err := runner.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, step := range result.Steps {
		fmt.Fprintln(out, viz.RenderStep(step))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, viz.RenderState(result.Name, result.Final))
	fmt.Fprintln(out, viz.RenderMetrics(result.Metrics))

	if plot {
		fmt.Fprintln(out)
		fmt.Fprintln(out, viz.PlotGrowth(result.Steps, 60, 10))
	}

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(result)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "saved run %s\n", runID)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tSTEPS\tERRORS\tSIZE\tCAP")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Errors,
			run.FinalSize,
			run.FinalCapacity,
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

	steps, err := st.LoadSteps(runID)
	if err != nil {
		return err
	}

	if len(steps) == 0 {
		return fmt.Errorf("no data to plot")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "scenario: %s\n", meta.Scenario)
	fmt.Fprintf(out, "steps: %d\n\n", len(steps))
	fmt.Fprintln(out, viz.PlotGrowth(steps, 80, 12))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func compareCapacities(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	points, err := sweep.RunSweep(cmd.Context(), logger, cfg, sweepFrom, sweepTo)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "comparing initial capacities %d..%d for %s\n\n", sweepFrom, sweepTo, cfg.Name)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INITIAL\tGROWTHS\tSHRINKS\tPEAK\tUTIL\tFINAL\tERRORS")
	for _, p := range points {
		fmt.Fprintf(w, "%d\t%.0f\t%.0f\t%.0f\t%.3f\t%d\t%d\n",
			p.Capacity,
			p.Metrics["growths"],
			p.Metrics["shrinks"],
			p.Metrics["peak_capacity"],
			p.Metrics["utilization"],
			p.FinalCapacity,
			p.Errors,
		)
	}
	return w.Flush()
}

func watchScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd, args)
	if err != nil {
		return err
	}

	// the TUI owns the terminal, so step logs are dropped
	session, err := scenario.New(logging.Nop()).Start(cfg)
	if err != nil {
		return err
	}
	return viz.RunStepper(session, interval)
}
