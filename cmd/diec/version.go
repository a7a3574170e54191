package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"diec/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type versionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	Go        string `json:"go"`
}

func runVersion(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		color.NoColor = !useColor(cmd, out)
		_, err = fmt.Fprintln(out, version.String())
		return err
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(versionInfo{
			Version:   version.Version,
			GitCommit: version.GitCommit,
			BuildDate: version.BuildDate,
			Go:        runtime.Version(),
		})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
