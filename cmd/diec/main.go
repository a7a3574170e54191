package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"diec/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "diec",
	Short: "Compiler for the die language",
	Long:  `diec compiles die source files into JVM class files`,
	// ошибки печатаем сами, usage только для ошибок флагов
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := configureLogging(cmd); err != nil {
			return err
		}
		return startProfiling(cmd)
	},
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	pf.Int("jobs", 0, "max parallel compile units (0=auto)")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring-size", 4096, "events kept in memory for crash dumps (0=off)")
	pf.CountP("verbose", "v", "log verbosity; repeat for more")
	pf.String("cpuprofile", "", "write a CPU profile to file")
	pf.String("memprofile", "", "write a heap profile to file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to file")
}

// main runs the root command. Exit status is 1 for compile errors and 2
// for usage or I/O failures.
func main() {
	err := rootCmd.Execute()
	stopProfiling(rootCmd)
	if err != nil {
		os.Exit(exitCode(rootCmd, err))
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}

// useColor resolves --color against the stream the output goes to.
func useColor(cmd *cobra.Command, w io.Writer) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "on", "always":
		return true
	case "off", "never":
		return false
	default:
		f, ok := w.(*os.File)
		return ok && isTerminal(f)
	}
}
