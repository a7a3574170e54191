package diagfmt

import (
	"path/filepath"
	"strings"

	"diec/internal/diag"
	"diec/internal/source"
)

func formatPath(path string, mode PathMode, base string) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	case PathModeRelative:
		if base == "" {
			return path
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return path
		}
		if rel, err := filepath.Rel(base, abs); err == nil && !strings.HasPrefix(rel, "..") {
			return rel
		}
	case PathModeBasename:
		return filepath.Base(path)
	}
	return path
}

func fileOf(fs *source.FileSet, d diag.Diagnostic) *source.File {
	if fs == nil {
		return nil
	}
	return fs.Get(d.File)
}
