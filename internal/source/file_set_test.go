package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetAddKeepsVersions(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("main.die", []byte("func a() end a"), 0)
	id2 := fs.Add("main.die", []byte("func b() end b"), 0)
	if id1 == id2 {
		t.Fatalf("expected distinct IDs, got %d twice", id1)
	}
	latest, ok := fs.GetByPath("main.die")
	if !ok {
		t.Fatalf("expected file to be indexed by path")
	}
	if latest.ID != id2 {
		t.Fatalf("expected latest ID %d, got %d", id2, latest.ID)
	}
	if got := string(fs.Get(id1).Content); got != "func a() end a" {
		t.Fatalf("old version lost: %q", got)
	}
	if fs.Get(FileID(42)) != nil {
		t.Fatalf("expected nil for unknown ID")
	}
}

func TestLoadNormalizesBOMAndCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.die")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("var x: int;\r\nvar y: int;\r\n")...)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	f := fs.Get(id)
	if got := string(f.Content); got != "var x: int;\nvar y: int;\n" {
		t.Fatalf("unexpected content %q", got)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("expected BOM and CRLF flags, got %b", f.Flags)
	}
}

func TestPositionAndGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("t.die", []byte("ab\ncd\n\nef")))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{2, LineCol{Line: 1, Col: 3}}, // the '\n' itself
		{3, LineCol{Line: 2, Col: 1}},
		{6, LineCol{Line: 3, Col: 1}},
		{8, LineCol{Line: 4, Col: 2}},
	}
	for _, tt := range tests {
		if got := f.Position(tt.off); got != tt.want {
			t.Errorf("Position(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}

	lines := map[uint32]string{0: "", 1: "ab", 2: "cd", 3: "", 4: "ef", 5: ""}
	for n, want := range lines {
		if got := f.GetLine(n); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", n, got, want)
		}
	}
	if f.LineCount() != 4 {
		t.Fatalf("expected 4 lines, got %d", f.LineCount())
	}
}

func TestSpanString(t *testing.T) {
	s := Span{File: 2, Start: 4, End: 9}
	if got := s.String(); got != "2:4-9" {
		t.Fatalf("Span.String() = %q", got)
	}
}
