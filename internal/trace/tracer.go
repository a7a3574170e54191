package trace

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Tracer receives trace events. Implementations are goroutine-safe.
type Tracer interface {
	Emit(ev Event)
	Flush() error
	Close() error
	Level() Level
	Enabled() bool
}

// Config holds tracer configuration.
type Config struct {
	Level      Level
	Format     Format
	Output     io.Writer // takes precedence over OutputPath
	OutputPath string    // "-" for stderr
	// RingSize keeps the last events for Dump; 0 disables the ring.
	RingSize int
	// Log forwards span ends to commonlog.
	Log bool
}

// New builds the tracer described by cfg.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	var tracers []Tracer
	if cfg.Output != nil || cfg.OutputPath != "" {
		w, err := openOutput(cfg)
		if err != nil {
			return nil, err
		}
		format := cfg.Format
		if format == FormatAuto {
			format = FormatText
			if strings.HasSuffix(cfg.OutputPath, ".ndjson") {
				format = FormatNDJSON
			}
		}
		tracers = append(tracers, NewStreamTracer(w, cfg.Level, format))
	}
	if cfg.RingSize > 0 {
		tracers = append(tracers, NewRingTracer(cfg.RingSize, cfg.Level))
	}
	if cfg.Log {
		tracers = append(tracers, NewLogTracer(cfg.Level))
	}
	switch len(tracers) {
	case 0:
		return Nop, nil
	case 1:
		return tracers[0], nil
	default:
		return NewMultiTracer(cfg.Level, tracers...), nil
	}
}

func openOutput(cfg Config) (io.Writer, error) {
	if cfg.Output != nil {
		return cfg.Output, nil
	}
	if cfg.OutputPath == "-" {
		return os.Stderr, nil
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	return f, nil
}

// Ring returns the ring tracer inside t, if any.
func Ring(t Tracer) (*RingTracer, bool) {
	switch t := t.(type) {
	case *RingTracer:
		return t, true
	case *MultiTracer:
		for _, inner := range t.tracers {
			if r, ok := Ring(inner); ok {
				return r, true
			}
		}
	}
	return nil, false
}
