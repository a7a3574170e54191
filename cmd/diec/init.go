package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"diec/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new die project",
	Long: `Initialize a new die project by creating a diec.toml manifest and a
hello-world main.die. If [path|name] is omitted, initializes the current
directory. A non-existing name creates the directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	target := wd
	if len(args) == 1 && args[0] != "." {
		target = args[0]
		if !filepath.IsAbs(target) {
			target = filepath.Join(wd, target)
		}
	}

	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err = os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "die-project"
	}
	if _, err := project.Init(target, name); err != nil {
		return err
	}

	mainPath := filepath.Join(target, "main.die")
	createdMain := false
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(defaultMain), 0o600); err != nil {
			return fmt.Errorf("failed to write main.die: %w", err)
		}
		createdMain = true
	}

	rel := target
	if r, err := filepath.Rel(wd, target); err == nil {
		rel = r
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized die project in %s\n", rel)
	fmt.Fprintf(out, "  - %s\n", project.ManifestName)
	if createdMain {
		fmt.Fprintf(out, "  - main.die\n")
	} else {
		fmt.Fprintf(out, "  - main.die (existing)\n")
	}
	return nil
}

const defaultMain = `func square(x: int): int
  return x * x;
end square

func main()
  write square(7);
end main
`
