package driver

import (
	"diec/internal/observ"
)

// Stage is the last pipeline stage to run.
type Stage uint8

const (
	StageTokenize Stage = iota + 1
	StageParse
	StageCheck
	StageEmit
)

func (s Stage) String() string {
	switch s {
	case StageTokenize:
		return "tokenize"
	case StageParse:
		return "parse"
	case StageCheck:
		return "check"
	case StageEmit:
		return "emit"
	default:
		return "unknown"
	}
}

// Options configures one compilation.
type Options struct {
	Stage          Stage
	MaxDiagnostics int
	// Class names the main class; empty derives it from the file name.
	Class string
	Major uint16
	// Cache, if set, short-circuits StageEmit for unchanged sources.
	Cache *DiskCache
	// Timer collects phase timings; nil disables them.
	Timer *observ.Timer
}

func (o Options) stage() Stage {
	if o.Stage == 0 {
		return StageEmit
	}
	return o.Stage
}
