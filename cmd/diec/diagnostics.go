package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"diec/internal/diag"
	"diec/internal/diagfmt"
	"diec/internal/driver"
)

// printDiagnostics renders every result's bag to stderr in the requested
// format and reports whether any unit failed. JSON output is one document
// for all units.
func printDiagnostics(cmd *cobra.Command, results []*driver.Result, format string, withNotes bool) (bool, error) {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return false, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	failed := false
	doc := diagfmt.DiagnosticsOutput{Diagnostics: []diagfmt.DiagnosticJSON{}}
	for _, res := range results {
		if res == nil {
			continue
		}
		if res.Bag.HasErrors() {
			failed = true
		}
		if res.Bag.Len() == 0 {
			continue
		}
		res.Bag.Sort()
		switch format {
		case "json":
			part := diagfmt.BuildDiagnosticsOutput(res.Bag, res.FileSet, diagfmt.JSONOpts{IncludeNotes: withNotes})
			doc.Diagnostics = append(doc.Diagnostics, part.Diagnostics...)
		default:
			if err := renderBag(os.Stderr, cmd, res, format, withNotes); err != nil {
				return failed, err
			}
		}
	}
	if format != "json" {
		return failed, nil
	}
	if maxDiagnostics > 0 && len(doc.Diagnostics) > maxDiagnostics {
		doc.Diagnostics = doc.Diagnostics[:maxDiagnostics]
	}
	doc.Count = len(doc.Diagnostics)
	enc := json.NewEncoder(os.Stderr)
	enc.SetIndent("", "  ")
	return failed, enc.Encode(doc)
}

func renderBag(w io.Writer, cmd *cobra.Command, res *driver.Result, format string, withNotes bool) error {
	switch format {
	case "pretty":
		return diagfmt.Pretty(w, res.Bag, res.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, w),
			ShowNotes: withNotes,
		})
	case "short":
		_, err := io.WriteString(w, diag.FormatShort(res.Bag.Items(), res.FileSet, withNotes))
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
