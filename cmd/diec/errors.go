package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errCompile marks a run that printed compiler diagnostics. Nothing more
// is printed for it.
var errCompile = errors.New("compilation failed")

func exitCode(cmd *cobra.Command, err error) int {
	if errors.Is(err, errCompile) {
		return 1
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "diec: %v\n", err)
	return 2
}
