package main

import (
	"fmt"
	"os"
	"path/filepath"

	"diec/internal/project"
)

// inputs is what a compile command works on: explicit files, or the
// sources of the diec.toml found above the working directory.
type inputs struct {
	Paths    []string
	Manifest *project.Manifest
}

func resolveInputs(args []string) (*inputs, error) {
	if len(args) > 0 {
		paths := make([]string, 0, len(args))
		for _, arg := range args {
			st, err := os.Stat(arg)
			if err != nil {
				return nil, err
			}
			if !st.IsDir() {
				paths = append(paths, arg)
				continue
			}
			matches, err := filepath.Glob(filepath.Join(arg, "*.die"))
			if err != nil {
				return nil, err
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("%s: no .die files", arg)
			}
			paths = append(paths, matches...)
		}
		return &inputs{Paths: paths}, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	m, ok, err := project.Load(wd)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no input files and no %s found", project.ManifestName)
	}
	paths, err := m.Sources()
	if err != nil {
		return nil, err
	}
	return &inputs{Paths: paths, Manifest: m}, nil
}
