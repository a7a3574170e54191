package trace

import (
	"context"
	"sync/atomic"
	"time"
)

var (
	seqCounter  atomic.Uint64
	spanCounter atomic.Uint64
)

// NextSeq returns the next global event sequence number.
func NextSeq() uint64 { return seqCounter.Add(1) }

// NextSpanID returns a fresh span ID; 0 is never returned.
func NextSpanID() uint64 { return spanCounter.Add(1) }

// Span is an open interval on a tracer. A nil or disabled span is inert.
type Span struct {
	tracer   Tracer
	id       uint64
	parentID uint64
	unit     string
	scope    Scope
	name     string
	started  time.Time
	extra    map[string]string
}

var inert = &Span{tracer: Nop}

// Begin starts a span under parent (0 for a root) and emits its begin
// event. Prefer Start, which also carries the parent and unit in ctx.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	return begin(t, scope, name, parent, "")
}

func begin(t Tracer, scope Scope, name string, parent uint64, unit string) *Span {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return inert
	}
	s := &Span{
		tracer:   t,
		id:       NextSpanID(),
		parentID: parent,
		unit:     unit,
		scope:    scope,
		name:     name,
		started:  time.Now(),
	}
	t.Emit(s.event(KindSpanBegin, s.started))
	return s
}

func (s *Span) event(kind Kind, at time.Time) Event {
	return Event{
		Time:     at,
		Seq:      NextSeq(),
		Kind:     kind,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parentID,
		Unit:     s.unit,
		Name:     s.name,
	}
}

// End emits the end event and returns the span duration.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.id == 0 {
		return 0
	}
	now := time.Now()
	ev := s.event(KindSpanEnd, now)
	ev.Detail = detail
	ev.Elapsed = now.Sub(s.started)
	ev.Extra = s.extra
	s.tracer.Emit(ev)
	return ev.Elapsed
}

// WithExtra adds a key-value pair to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s == nil || s.id == 0 {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string, 2)
	}
	s.extra[key] = value
	return s
}

// ID returns the span ID, 0 for inert spans.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// Point emits an instant event under the span and unit carried by ctx.
func Point(ctx context.Context, scope Scope, name, detail string) {
	t := FromContext(ctx)
	if !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return
	}
	p := Span{id: NextSpanID(), parentID: ParentID(ctx), unit: UnitOf(ctx), scope: scope, name: name}
	ev := p.event(KindPoint, time.Now())
	ev.Detail = detail
	t.Emit(ev)
}
