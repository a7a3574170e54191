package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"diec/internal/diag"
	"diec/internal/driver"
	"diec/internal/trace"
)

// configureLogging wires --verbose into commonlog. Verbosity 0 keeps the
// logger quiet.
func configureLogging(cmd *cobra.Command) error {
	verbose, err := cmd.Root().PersistentFlags().GetCount("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	trace.ConfigureLog(verbose, nil)
	return nil
}

// setupTracing inspects trace-related flags and attaches a tracer to the
// command context. The returned cleanup flushes and closes it.
func setupTracing(cmd *cobra.Command) (trace.Tracer, func(), error) {
	root := cmd.Root()

	traceOutput, err := root.PersistentFlags().GetString("trace")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := root.PersistentFlags().GetString("trace-level")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	formatStr, err := root.PersistentFlags().GetString("trace-format")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace-format flag: %w", err)
	}
	ringSize, err := root.PersistentFlags().GetInt("trace-ring-size")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}
	verbose, err := root.PersistentFlags().GetCount("verbose")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get verbose flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid trace level: %w", err)
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return nil, nil, err
	}
	// -v без --trace-level включает фазы в лог
	if level == trace.LevelOff && verbose > 0 {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff && traceOutput != "" {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return trace.Nop, func() {}, nil
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Format:     format,
		OutputPath: traceOutput,
		RingSize:   ringSize,
		Log:        verbose > 0,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))

	cleanup := func() {
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}
	return tracer, cleanup, nil
}

// dumpTraceOnInvariant writes the in-memory trace tail to stderr when a unit
// hit a class-file format invariant. Those are compiler bugs, not user errors.
func dumpTraceOnInvariant(tracer trace.Tracer, results []*driver.Result) {
	ring, ok := trace.Ring(tracer)
	if !ok {
		return
	}
	for _, res := range results {
		if res == nil {
			continue
		}
		for _, d := range res.Bag.Items() {
			if d.Code.Category() != diag.CategoryFormat {
				continue
			}
			fmt.Fprintf(os.Stderr, "internal error in %s; last trace events:\n", res.Path)
			if err := ring.Dump(os.Stderr, trace.FormatText); err != nil {
				fmt.Fprintf(os.Stderr, "trace: dump error: %v\n", err)
			}
			return
		}
	}
}
