package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"diec/internal/driver"
	"diec/internal/observ"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.die|directory]...",
	Short: "Run syntax and semantic checks without emitting class files",
	Long: `Check lexes, parses and validates each input. Without arguments the
sources listed in the nearest diec.toml are checked.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json|short)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	opts, jobs, timer, err := compileOptions(cmd, driver.StageCheck)
	if err != nil {
		return err
	}
	in, err := resolveInputs(args)
	if err != nil {
		return err
	}
	tracer, cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	results, err := driver.CompileAll(cmd.Context(), in.Paths, opts, jobs)
	if err != nil {
		return err
	}
	dumpTraceOnInvariant(tracer, results)
	failed, err := printDiagnostics(cmd, results, format, withNotes)
	if err != nil {
		return err
	}
	printTimings(os.Stderr, timer)
	if failed {
		return errCompile
	}
	return nil
}

// compileOptions reads the persistent flags shared by check and build.
func compileOptions(cmd *cobra.Command, stage driver.Stage) (driver.Options, int, *observ.Timer, error) {
	pf := cmd.Root().PersistentFlags()
	maxDiagnostics, err := pf.GetInt("max-diagnostics")
	if err != nil {
		return driver.Options{}, 0, nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	jobs, err := pf.GetInt("jobs")
	if err != nil {
		return driver.Options{}, 0, nil, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	showTimings, err := pf.GetBool("timings")
	if err != nil {
		return driver.Options{}, 0, nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
	}
	return driver.Options{
		Stage:          stage,
		MaxDiagnostics: maxDiagnostics,
		Timer:          timer,
	}, jobs, timer, nil
}
