package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"diec/internal/diagfmt"
	"diec/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.die",
	Short: "Tokenize a die source file",
	Long:  `Tokenize breaks a die source file down into its tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
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
		Stage:          driver.StageTokenize,
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
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, res.Tokens, useColor(cmd, os.Stdout))
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, res.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
