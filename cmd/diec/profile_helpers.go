package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"diec/internal/prof"
)

var profSession *prof.Session

func startProfiling(cmd *cobra.Command) error {
	pf := cmd.Root().PersistentFlags()
	var cfg prof.Config
	var err error
	if cfg.CPU, err = pf.GetString("cpuprofile"); err != nil {
		return fmt.Errorf("failed to get cpuprofile flag: %w", err)
	}
	if cfg.Mem, err = pf.GetString("memprofile"); err != nil {
		return fmt.Errorf("failed to get memprofile flag: %w", err)
	}
	if cfg.Trace, err = pf.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !cfg.Enabled() {
		return nil
	}
	profSession, err = prof.Start(cfg)
	return err
}

// stopProfiling runs after Execute so failed commands still flush profiles.
func stopProfiling(cmd *cobra.Command) {
	if err := profSession.Stop(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "prof: %v\n", err)
	}
	profSession = nil
}
