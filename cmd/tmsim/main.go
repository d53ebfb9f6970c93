package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/tmsim/internal/config"
	"github.com/san-kum/tmsim/internal/machine"
	"github.com/san-kum/tmsim/internal/storage"
	"github.com/san-kum/tmsim/internal/viz"
)

var (
	dataDir    string
	noColor    bool
	configFile string
	preset     string
	maxSteps   int
	showTrace  bool
	noSave     bool
	batchFile  string
	fps        int
	tapeWidth  int
	delayMS    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tmsim",
		Short: "turing machine palindrome simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive TUI when no command given.
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return viz.RunInteractive(cfg.FPS, cfg.TapeWidth, cfg.MaxSteps)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	runCmd := &cobra.Command{
		Use:   "run [input]",
		Short: "run the machine on an input string",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInput,
	}
	runCmd.Flags().IntVar(&maxSteps, "max-steps", config.DefaultMaxSteps, "step limit safety bound")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset input")
	runCmd.Flags().BoolVar(&showTrace, "trace", false, "print the step table")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not persist the run")

	batchCmd := &cobra.Command{
		Use:   "batch [inputs...]",
		Short: "run several inputs sequentially",
		RunE:  runBatch,
	}
	batchCmd.Flags().IntVar(&maxSteps, "max-steps", config.DefaultMaxSteps, "step limit safety bound")
	batchCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	batchCmd.Flags().StringVar(&batchFile, "file", "", "file with one input per line")
	batchCmd.Flags().BoolVar(&noSave, "no-save", false, "do not persist the runs")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print a stored run log as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored trace to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot head position and remaining symbols",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	replayCmd := &cobra.Command{
		Use:   "replay [run_id]",
		Short: "re-render a stored trace frame by frame",
		Args:  cobra.ExactArgs(1),
		RunE:  replayRun,
	}
	replayCmd.Flags().IntVar(&delayMS, "delay", config.DefaultDelayMS, "delay between frames (ms)")
	replayCmd.Flags().IntVar(&tapeWidth, "width", config.DefaultTapeWidth, "tape window width")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the engine over growing inputs",
		RunE:  benchEngine,
	}

	liveCmd := &cobra.Command{
		Use:   "live [input]",
		Short: "run with live visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "steps per second")
	liveCmd.Flags().IntVar(&tapeWidth, "width", config.DefaultTapeWidth, "tape window width")
	liveCmd.Flags().IntVar(&maxSteps, "max-steps", config.DefaultMaxSteps, "step limit safety bound")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset input")
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return viz.RunInteractive(cfg.FPS, cfg.TapeWidth, cfg.MaxSteps)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tINPUT")
			for _, name := range config.ListPresets() {
				fmt.Fprintf(w, "%s\t%q\n", name, config.GetPreset(name).Input)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, batchCmd, listCmd, showCmd, exportCSVCmd, plotCmd, replayCmd, benchCmd, liveCmd, tuiCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges defaults, config file, env, preset and flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configFile != "" {
		cfg, err = config.Load(configFile)
	} else {
		cfg, err = config.FromEnv()
	}
	if err != nil {
		return nil, err
	}

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Input = p.Input
		cfg.FPS = p.FPS
		cfg.DelayMS = p.DelayMS
		cfg.TapeWidth = p.TapeWidth
	}

	f := cmd.Flags()
	if f.Changed("max-steps") {
		cfg.MaxSteps = maxSteps
	}
	if f.Changed("fps") {
		cfg.FPS = fps
	}
	if f.Changed("width") {
		cfg.TapeWidth = tapeWidth
	}
	if f.Changed("delay") {
		cfg.DelayMS = delayMS
	}
	if cmd.InheritedFlags().Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}

	if noColor || cfg.NoColor {
		viz.DisableColor()
	}
	return cfg, nil
}

func runInput(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	input := cfg.Input
	if len(args) > 0 {
		input = args[0]
	} else if preset == "" && configFile == "" {
		return fmt.Errorf("no input: pass a string, --preset or --config")
	}

	m, err := machine.New(input)
	if err != nil {
		return err
	}

	result, err := m.Run(context.Background(), cfg.MaxSteps)
	if err != nil {
		var lim *machine.StepLimitExceededError
		if errors.As(err, &lim) {
			fmt.Printf("no verdict after %d steps; partial trace below\n", lim.Limit)
			_ = viz.WriteStepTable(os.Stdout, lim.Trace)
		}
		return err
	}

	fmt.Printf("input: %q\n", input)
	fmt.Printf("verdict: %s (%s)\n", result.Verdict, result.Verdict.Marker())
	fmt.Printf("steps: %d\n", result.Steps)
	fmt.Printf("elapsed: %v\n", result.Elapsed)
	fmt.Printf("final tape: %q\n", result.FinalTape)

	if showTrace {
		fmt.Println()
		if err := viz.WriteStepTable(os.Stdout, result.Trace); err != nil {
			return err
		}
	}

	if !noSave {
		st := storage.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(result)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	inputs := args
	if batchFile != "" {
		file, err := os.Open(batchFile)
		if err != nil {
			return err
		}
		defer file.Close()
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				inputs = append(inputs, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}
	if len(inputs) == 0 {
		inputs = cfg.Batch
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no inputs: pass strings, --file or a config batch list")
	}

	var st *storage.Store
	if !noSave {
		st = storage.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INPUT\tVERDICT\tSTEPS\tTIME\tRUN")

	// Each input is an independent machine instance; failures don't stop
	// the batch.
	for _, input := range inputs {
		m, err := machine.New(input)
		if err != nil {
			fmt.Fprintf(w, "%q\terror: %v\t\t\t\n", input, err)
			continue
		}
		result, err := m.Run(context.Background(), cfg.MaxSteps)
		if err != nil {
			fmt.Fprintf(w, "%q\terror: %v\t\t\t\n", input, err)
			continue
		}

		runID := "-"
		if st != nil {
			if runID, err = st.Save(result); err != nil {
				return err
			}
		}
		fmt.Fprintf(w, "%q\t%s\t%d\t%v\t%s\n", input, result.Verdict.Marker(), result.Steps, result.Elapsed, runID)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tINPUT\tRESULT\tSTEPS\tTIME")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%q\t%s\t%d\t%s\n",
			run.ID,
			run.InputString,
			run.FinalResult,
			run.TotalSteps,
			run.Timestamp.Format("2006-01-02 15:04:05"),
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	log, err := st.Load(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSONStdout(log)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	log, err := st.Load(args[0])
	if err != nil {
		return err
	}
	return storage.WriteTraceCSV(os.Stdout, log)
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	log, recs, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		return fmt.Errorf("no steps to plot")
	}

	fmt.Printf("run: %s\n", args[0])
	fmt.Printf("input: %q  result: %s  steps: %d\n\n", log.InputString, log.FinalResult, log.TotalSteps)

	heads := make([]float64, len(recs))
	remaining := make([]float64, len(recs))
	left := len(log.InputString)
	for i, rec := range recs {
		heads[i] = float64(rec.Position)
		if rec.Read != rec.Write {
			if rec.Read == machine.SymbolA || rec.Read == machine.SymbolB {
				left--
			}
			if rec.Write == machine.SymbolA || rec.Write == machine.SymbolB {
				left++
			}
		}
		remaining[i] = float64(left)
	}

	fmt.Println(asciigraph.Plot(heads,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("head position vs step"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(remaining,
		asciigraph.Height(8),
		asciigraph.Width(80),
		asciigraph.Caption("unmatched symbols vs step"),
	))
	return nil
}

func replayRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	log, recs, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}

	tape := machine.NewTape(log.InputString)
	delay := time.Duration(delayMS) * time.Millisecond

	fmt.Printf("replaying %s: %q (%d steps)\n\n", args[0], log.InputString, log.TotalSteps)
	for _, rec := range recs {
		if got := tape.Read(rec.Position); got != rec.Read {
			return fmt.Errorf("trace diverged at step %d: tape has %q, log says %q", rec.Step, byte(got), byte(rec.Read))
		}
		tape.Write(rec.Position, rec.Write)

		head := rec.Position
		switch rec.Move {
		case machine.MoveLeft:
			head--
		case machine.MoveRight:
			head++
		}

		fmt.Printf("step %-4d %s → %s\n", rec.Step, rec.State, rec.NextState)
		fmt.Println(viz.TapeWindow(tape, head, tapeWidth))
		time.Sleep(delay)
	}

	fmt.Printf("final tape: %q  result: %s\n", tape.Contents(), log.FinalResult)
	return nil
}

// makePalindrome builds an alternating palindrome of length n for
// benchmarks.
func makePalindrome(n int) string {
	b := make([]byte, n)
	for i := 0; i < (n+1)/2; i++ {
		c := byte('a')
		if i%2 == 1 {
			c = 'b'
		}
		b[i] = c
		b[n-1-i] = c
	}
	return string(b)
}

func benchEngine(cmd *cobra.Command, args []string) error {
	lengths := []int{4, 8, 16, 32, 64, 128, 256}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LENGTH\tSTEPS\tTIME\tSTEPS/SEC")

	for _, n := range lengths {
		m, err := machine.New(makePalindrome(n))
		if err != nil {
			return err
		}
		result, err := m.Run(context.Background(), 0)
		if err != nil {
			return err
		}
		stepsPerSec := float64(result.Steps) / result.Elapsed.Seconds()
		fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\n", n, result.Steps, result.Elapsed, stepsPerSec)
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	input := cfg.Input
	if len(args) > 0 {
		input = args[0]
	} else if preset == "" && configFile == "" {
		return fmt.Errorf("no input: pass a string, --preset or --config")
	}

	m, err := machine.New(input)
	if err != nil {
		return err
	}
	return viz.RunLive(m, cfg.FPS, cfg.TapeWidth, cfg.MaxSteps)
}
