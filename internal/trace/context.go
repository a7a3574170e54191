package trace

import "context"

type ctxKey struct{}

type spanKey struct{}

type unitKey struct{}

// FromContext returns the tracer attached to ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx == nil {
		return Nop
	}
	if t, ok := ctx.Value(ctxKey{}).(Tracer); ok {
		return t
	}
	return Nop
}

// WithTracer attaches t to ctx.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, ctxKey{}, t)
}

// WithSpan makes s the parent of spans started from the returned context.
func WithSpan(ctx context.Context, s *Span) context.Context {
	return context.WithValue(ctx, spanKey{}, s.ID())
}

// ParentID returns the ID of the span attached by WithSpan, or 0.
func ParentID(ctx context.Context) uint64 {
	if ctx == nil {
		return 0
	}
	id, _ := ctx.Value(spanKey{}).(uint64)
	return id
}

// WithUnit tags every span and point started from ctx with the source path
// of the unit being compiled. Parallel builds interleave events; the tag
// keeps them attributable.
func WithUnit(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, unitKey{}, path)
}

// UnitOf returns the path attached by WithUnit, or "".
func UnitOf(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	u, _ := ctx.Value(unitKey{}).(string)
	return u
}

// Start begins a span under the span carried by ctx and returns a context
// carrying the new one.
func Start(ctx context.Context, scope Scope, name string) (context.Context, *Span) {
	s := begin(FromContext(ctx), scope, name, ParentID(ctx), UnitOf(ctx))
	if s.ID() == 0 {
		return ctx, s
	}
	return WithSpan(ctx, s), s
}
