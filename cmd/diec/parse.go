package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"diec/internal/diagfmt"
	"diec/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.die",
	Short: "Parse a die source file and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json|cbor)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	_, cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := driver.Compile(cmd.Context(), args[0], driver.Options{
		Stage:          driver.StageParse,
		MaxDiagnostics: maxDiagnostics,
	})
	if err != nil {
		return err
	}
	if failed, err := printDiagnostics(cmd, []*driver.Result{res}, "pretty", false); err != nil {
		return err
	} else if failed {
		return errCompile
	}

	switch format {
	case "tree":
		return diagfmt.FormatASTTree(os.Stdout, res.Program)
	case "json":
		return diagfmt.FormatASTJSON(os.Stdout, res.Program)
	case "cbor":
		if isTerminal(os.Stdout) {
			return fmt.Errorf("refusing to write binary CBOR to a terminal")
		}
		return diagfmt.FormatASTCBOR(os.Stdout, res.Program)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
