// Package trace records compiler phase spans.
//
// Enable it from the command line:
//
//	diec check --trace=- --trace-level=phase prog.die
//
// Tracers:
//
//   - Nop: zero cost when tracing is off
//   - StreamTracer: writes every event to a file or stderr
//   - RingTracer: keeps the last events for a dump after an internal error
//   - LogTracer: forwards span ends to commonlog
//   - MultiTracer: fans out to several tracers
//
// Levels select scopes: phase covers driver and pass spans, detail adds
// per-unit spans, debug adds node-level events.
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
package trace
