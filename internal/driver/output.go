package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"diec/internal/diag"
	"diec/internal/emit"
)

// WriteClasses stores each class as <dir>/<Name>.class and returns the
// written paths.
func WriteClasses(dir string, classes []emit.Class) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, diag.Errorf(diag.IOWriteError, 0, "create %s: %v", dir, err)
	}
	paths := make([]string, 0, len(classes))
	for _, c := range classes {
		path := filepath.Join(dir, filepath.FromSlash(c.Name)+".class")
		if err := writeAtomic(path, c.Data); err != nil {
			return paths, diag.Errorf(diag.IOWriteError, 0, "write %s: %v", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return err
	}
	if err := os.Rename(f.Name(), path); err != nil {
		_ = os.Remove(f.Name())
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
