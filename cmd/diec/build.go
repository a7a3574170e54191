package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"diec/internal/classfile"
	"diec/internal/diagfmt"
	"diec/internal/driver"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] [file.die|directory]...",
	Short: "Compile die sources into JVM class files",
	Long: `Build compiles each input into <Class>.class (plus one <Class>$<record>.class
per record type) in the output directory. Without arguments the sources,
output directory and cache of the nearest diec.toml are used.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringP("out", "o", "", "output directory (default: manifest out_dir or .)")
	buildCmd.Flags().String("class", "", "main class name (single input only)")
	buildCmd.Flags().Int("major", 0, "class file major version (default 52)")
	buildCmd.Flags().String("cache", "", "build cache directory (\"user\" for the per-user cache)")
	buildCmd.Flags().Bool("no-cache", false, "ignore the build cache")
	buildCmd.Flags().Bool("dump", false, "print a javap-like listing of every emitted class")
	buildCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json|short)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	format, err := flags.GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	outDir, err := flags.GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}
	className, err := flags.GetString("class")
	if err != nil {
		return fmt.Errorf("failed to get class flag: %w", err)
	}
	major, err := flags.GetInt("major")
	if err != nil {
		return fmt.Errorf("failed to get major flag: %w", err)
	}
	cacheDir, err := flags.GetString("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	noCache, err := flags.GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	dump, err := flags.GetBool("dump")
	if err != nil {
		return fmt.Errorf("failed to get dump flag: %w", err)
	}

	opts, jobs, timer, err := compileOptions(cmd, driver.StageEmit)
	if err != nil {
		return err
	}
	in, err := resolveInputs(args)
	if err != nil {
		return err
	}

	// флаги важнее манифеста
	if m := in.Manifest; m != nil {
		if outDir == "" {
			outDir = m.OutDir()
		}
		if cacheDir == "" {
			cacheDir = m.CacheDir()
		}
		if className == "" && len(in.Paths) == 1 {
			className = m.Config.Build.Class
		}
		if major == 0 {
			major = m.Config.Build.Major
		}
	}
	if outDir == "" {
		outDir = "."
	}
	if className != "" && len(in.Paths) > 1 {
		return fmt.Errorf("--class needs exactly one input, got %d", len(in.Paths))
	}
	opts.Class = className
	if major != 0 {
		m, err := safecast.Conv[uint16](major)
		if err != nil || m < 45 {
			return fmt.Errorf("--major %d out of range", major)
		}
		opts.Major = m
	}
	if cacheDir != "" && !noCache {
		if cacheDir == "user" {
			cacheDir = ""
		}
		cache, err := driver.OpenDiskCache(cacheDir)
		if err != nil {
			return err
		}
		opts.Cache = cache
	}

	tracer, cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	results, err := driver.CompileAll(cmd.Context(), in.Paths, opts, jobs)
	if err != nil {
		return err
	}
	dumpTraceOnInvariant(tracer, results)
	failed, err := printDiagnostics(cmd, results, format, false)
	if err != nil {
		return err
	}
	if failed {
		printTimings(os.Stderr, timer)
		return errCompile
	}

	for _, res := range results {
		written, err := driver.WriteClasses(outDir, res.Classes)
		if err != nil {
			return err
		}
		note := ""
		if res.Cached {
			note = " (cached)"
		}
		for _, path := range written {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s%s\n", relPath(path), note)
		}
		if dump {
			if err := dumpClasses(cmd, res); err != nil {
				return err
			}
		}
	}
	printTimings(os.Stderr, timer)
	return nil
}

func dumpClasses(cmd *cobra.Command, res *driver.Result) error {
	for _, c := range res.Classes {
		cf, err := classfile.Parse(c.Data)
		if err != nil {
			return fmt.Errorf("%s: %w", c.Name, err)
		}
		if err := diagfmt.FormatClass(cmd.OutOrStdout(), cf); err != nil {
			return err
		}
	}
	return nil
}

func relPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	if rel, err := filepath.Rel(wd, path); err == nil {
		return rel
	}
	return path
}
