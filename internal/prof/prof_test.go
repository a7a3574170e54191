package prof_test

import (
	"os"
	"path/filepath"
	"testing"

	"diec/internal/prof"
)

func TestSessionWritesProfiles(t *testing.T) {
	dir := t.TempDir()
	cfg := prof.Config{
		CPU:   filepath.Join(dir, "cpu.pprof"),
		Mem:   filepath.Join(dir, "mem.pprof"),
		Trace: filepath.Join(dir, "trace.out"),
	}
	if !cfg.Enabled() {
		t.Fatalf("config with paths must be enabled")
	}
	s, err := prof.Start(cfg)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	for _, p := range []string{cfg.CPU, cfg.Mem, cfg.Trace} {
		st, err := os.Stat(p)
		if err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		if st.Size() == 0 {
			t.Fatalf("%s is empty", p)
		}
	}
}

func TestEmptyConfig(t *testing.T) {
	if (prof.Config{}).Enabled() {
		t.Fatalf("empty config must be disabled")
	}
	var s *prof.Session
	if err := s.Stop(); err != nil {
		t.Fatalf("nil session Stop: %v", err)
	}
}
