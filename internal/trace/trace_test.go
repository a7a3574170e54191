package trace_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"diec/internal/trace"
)

func TestLevelScopes(t *testing.T) {
	tests := []struct {
		level trace.Level
		scope trace.Scope
		want  bool
	}{
		{trace.LevelOff, trace.ScopeDriver, false},
		{trace.LevelPhase, trace.ScopePass, true},
		{trace.LevelPhase, trace.ScopeUnit, false},
		{trace.LevelDetail, trace.ScopeUnit, true},
		{trace.LevelDetail, trace.ScopeNode, false},
		{trace.LevelDebug, trace.ScopeNode, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Fatalf("%s.ShouldEmit(%s) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	if l, err := trace.ParseLevel("DETAIL"); err != nil || l != trace.LevelDetail {
		t.Fatalf("ParseLevel = %v, %v", l, err)
	}
	if _, err := trace.ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestStreamSpans(t *testing.T) {
	var buf bytes.Buffer
	tr, err := trace.New(trace.Config{Level: trace.LevelPhase, Output: &buf, Format: trace.FormatText})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := trace.WithTracer(context.Background(), tr)
	ctx, drv := trace.Start(ctx, trace.ScopeDriver, "build")
	_, pass := trace.Start(ctx, trace.ScopePass, "parse")
	pass.End("ok")
	_, unit := trace.Start(ctx, trace.ScopeUnit, "unit:a.die")
	unit.End("")
	drv.End("")

	out := buf.String()
	for _, want := range []string{"→ build", "→ parse", "← parse", "(ok)", "← build"} {
		if !strings.Contains(out, want) {
			t.Fatalf("trace output lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "unit:a.die") {
		t.Fatalf("unit span emitted at phase level:\n%s", out)
	}
}

func TestNDJSONParent(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDebug, trace.FormatNDJSON)
	ctx := trace.WithTracer(context.Background(), tr)
	ctx, outer := trace.Start(ctx, trace.ScopeDriver, "outer")
	_, inner := trace.Start(ctx, trace.ScopePass, "inner")
	inner.End("")
	outer.End("")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("want 4 events, got %d", len(lines))
	}
	var ev struct {
		Name     string `json:"name"`
		SpanID   uint64 `json:"span_id"`
		ParentID uint64 `json:"parent_id"`
	}
	if err := json.Unmarshal([]byte(lines[1]), &ev); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev.Name != "inner" || ev.ParentID != outer.ID() {
		t.Fatalf("inner event = %+v, outer id %d", ev, outer.ID())
	}
}

func TestRingKeepsLast(t *testing.T) {
	r := trace.NewRingTracer(2, trace.LevelDebug)
	ctx := trace.WithTracer(context.Background(), r)
	for _, name := range []string{"a", "b", "c"} {
		trace.Point(ctx, trace.ScopePass, name, "")
	}
	snap := r.Snapshot()
	if len(snap) != 2 || snap[0].Name != "b" || snap[1].Name != "c" {
		t.Fatalf("snapshot = %+v", snap)
	}
	tr, err := trace.New(trace.Config{Level: trace.LevelError, RingSize: 8, Log: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := trace.Ring(tr); !ok {
		t.Fatalf("ring not found in %T", tr)
	}
}

func TestOffIsNop(t *testing.T) {
	tr, err := trace.New(trace.Config{Level: trace.LevelOff, OutputPath: "-"})
	if err != nil || tr.Enabled() {
		t.Fatalf("off tracer = %T, %v", tr, err)
	}
	if s := trace.Begin(tr, trace.ScopeDriver, "x", 0); s.ID() != 0 {
		t.Fatalf("nop span has id %d", s.ID())
	}
}

func TestUnitTagging(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDetail, trace.FormatText)
	ctx := trace.WithUnit(trace.WithTracer(context.Background(), tr), "a.die")
	ctx, unit := trace.Start(ctx, trace.ScopeUnit, "unit:a.die")
	_, pass := trace.Start(ctx, trace.ScopePass, "parse")
	pass.End("")
	trace.Point(ctx, trace.ScopePass, "cache", "miss")
	unit.End("")

	out := buf.String()
	for _, want := range []string{"→ parse @a.die", "• cache @a.die (miss)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("trace output lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "unit:a.die @a.die") {
		t.Fatalf("unit spans must not repeat their own path:\n%s", out)
	}
	if trace.UnitOf(context.Background()) != "" {
		t.Fatalf("empty context has a unit")
	}
}
