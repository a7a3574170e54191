package driver_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"diec/internal/classfile"
	"diec/internal/diag"
	"diec/internal/driver"
	"diec/internal/observ"
	"diec/internal/trace"
)

func testdata(name string) string { return filepath.Join("testdata", name) }

func TestCompileGood(t *testing.T) {
	tests := []struct {
		file    string
		classes []string
	}{
		{"fact.die", []string{"Fact"}},
		{"linked_list.die", []string{"LinkedList", "LinkedList$list"}},
		{"arrays.die", []string{"Arrays"}},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			res, err := driver.Compile(context.Background(), testdata(tt.file), driver.Options{MaxDiagnostics: 10})
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}
			if !res.OK() {
				t.Fatalf("unexpected diagnostics:\n%s", diag.FormatShort(res.Bag.Items(), res.FileSet, true))
			}
			var names []string
			for _, c := range res.Classes {
				names = append(names, c.Name)
				if _, err := classfile.Parse(c.Data); err != nil {
					t.Fatalf("%s does not decode: %v", c.Name, err)
				}
			}
			if diff := cmp.Diff(tt.classes, names); diff != "" {
				t.Fatalf("classes (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileBad(t *testing.T) {
	tests := []struct {
		file string
		code diag.Code
		line int
	}{
		{"bad_syntax.die", diag.SynUnexpectedToken, 3},
		{"bad_types.die", diag.SemaTypeMismatch, 3},
		{"bad_names.die", diag.SemaFnNameMismatch, 3},
		{"missing.die", diag.IOLoadFileError, 0},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			res, err := driver.Compile(context.Background(), testdata(tt.file), driver.Options{MaxDiagnostics: 10})
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}
			if res.OK() {
				t.Fatalf("expected a diagnostic")
			}
			items := res.Bag.Items()
			if len(items) != 1 {
				t.Fatalf("want exactly the first error, got %d", len(items))
			}
			if items[0].Code != tt.code || items[0].Line != tt.line {
				t.Fatalf("got %s at line %d, want %s at line %d", items[0].Code.ID(), items[0].Line, tt.code.ID(), tt.line)
			}
			if res.Classes != nil {
				t.Fatalf("classes emitted for a failing unit")
			}
		})
	}
}

func TestStages(t *testing.T) {
	ctx := context.Background()
	src := []byte("func f(): int return 1; end f")

	res, err := driver.CompileSource(ctx, "f.die", src, driver.Options{Stage: driver.StageTokenize})
	if err != nil || !res.OK() || len(res.Tokens) != 11 || res.Program != nil {
		t.Fatalf("tokenize: err=%v tokens=%d program=%v", err, len(res.Tokens), res.Program)
	}
	res, _ = driver.CompileSource(ctx, "f.die", src, driver.Options{Stage: driver.StageParse})
	if res.Program == nil || res.Info != nil {
		t.Fatalf("parse stage ran too far or not far enough")
	}
	res, _ = driver.CompileSource(ctx, "f.die", src, driver.Options{Stage: driver.StageCheck})
	if res.Info == nil || res.Classes != nil {
		t.Fatalf("check stage ran too far or not far enough")
	}
	res, _ = driver.CompileSource(ctx, "f.die", src, driver.Options{Class: "Custom"})
	if len(res.Classes) != 1 || res.Classes[0].Name != "Custom" {
		t.Fatalf("emit classes = %+v", res.Classes)
	}
}

func TestCompileAllKeepsOrder(t *testing.T) {
	paths := []string{testdata("fact.die"), testdata("bad_types.die"), testdata("arrays.die"), testdata("linked_list.die")}
	timer := observ.NewTimer()
	results, err := driver.CompileAll(context.Background(), paths, driver.Options{MaxDiagnostics: 5, Timer: timer}, 2)
	if err != nil {
		t.Fatalf("CompileAll: %v", err)
	}
	for i, res := range results {
		if res.Path != paths[i] {
			t.Fatalf("result %d is %s, want %s", i, res.Path, paths[i])
		}
	}
	if results[1].OK() || !results[0].OK() || !results[2].OK() {
		t.Fatalf("unexpected ok flags")
	}
	var sawPrefixed bool
	for _, p := range timer.Report().Phases {
		if strings.HasPrefix(p.Name, paths[0]+"/") {
			sawPrefixed = true
		}
	}
	if !sawPrefixed {
		t.Fatalf("unit timings not merged: %+v", timer.Report())
	}
}

func TestCompileCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := driver.CompileAll(ctx, []string{testdata("fact.die")}, driver.Options{}, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestCacheRoundTrip(t *testing.T) {
	cache, err := driver.OpenDiskCache(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	opts := driver.Options{Cache: cache}
	first, _ := driver.Compile(context.Background(), testdata("linked_list.die"), opts)
	if !first.OK() || first.Cached {
		t.Fatalf("first build: ok=%v cached=%v", first.OK(), first.Cached)
	}
	second, _ := driver.Compile(context.Background(), testdata("linked_list.die"), opts)
	if !second.Cached {
		t.Fatalf("second build missed the cache")
	}
	if len(first.Classes) != len(second.Classes) {
		t.Fatalf("cached class count %d, want %d", len(second.Classes), len(first.Classes))
	}
	for i := range first.Classes {
		if !bytes.Equal(first.Classes[i].Data, second.Classes[i].Data) {
			t.Fatalf("cached %s differs", first.Classes[i].Name)
		}
	}
	renamed, _ := driver.Compile(context.Background(), testdata("linked_list.die"), driver.Options{Cache: cache, Class: "Other"})
	if renamed.Cached {
		t.Fatalf("class name change must miss the cache")
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	third, _ := driver.Compile(context.Background(), testdata("linked_list.die"), opts)
	if third.Cached {
		t.Fatalf("hit after DropAll")
	}
}

func TestWriteClasses(t *testing.T) {
	res, _ := driver.Compile(context.Background(), testdata("linked_list.die"), driver.Options{})
	dir := t.TempDir()
	paths, err := driver.WriteClasses(dir, res.Classes)
	if err != nil {
		t.Fatalf("WriteClasses: %v", err)
	}
	want := []string{filepath.Join(dir, "LinkedList.class"), filepath.Join(dir, "LinkedList$list.class")}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("paths (-want +got):\n%s", diff)
	}
	data, err := os.ReadFile(paths[0])
	if err != nil || !bytes.Equal(data, res.Classes[0].Data) {
		t.Fatalf("written class differs: %v", err)
	}
}

func TestCompileTraces(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDetail, trace.FormatText)
	ctx := trace.WithTracer(context.Background(), tr)
	if _, err := driver.Compile(ctx, testdata("fact.die"), driver.Options{}); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	out := buf.String()
	for _, pass := range []string{"unit:", "parse", "names", "returns", "symbols", "types", "emit"} {
		if !strings.Contains(out, "← "+pass) {
			t.Fatalf("trace lacks %q:\n%s", pass, out)
		}
	}
	if !strings.Contains(out, "@testdata/fact.die") {
		t.Fatalf("pass events are not tagged with the unit:\n%s", out)
	}
}
