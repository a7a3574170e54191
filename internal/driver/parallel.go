package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"diec/internal/observ"
	"diec/internal/trace"
)

// CompileAll compiles every path with at most jobs units in flight. Each
// unit owns its file set, interner and constant pool; results keep the
// order of paths. Per-unit timers are merged into opts.Timer under a
// "<path>/" prefix.
func CompileAll(ctx context.Context, paths []string, opts Options, jobs int) ([]*Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	ctx, span := trace.Start(ctx, trace.ScopeDriver, "compile-all")
	defer span.End("")

	results := make([]*Result, len(paths))
	timers := make([]*observ.Timer, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		g.Go(func() error {
			unitOpts := opts
			if opts.Timer != nil {
				timers[i] = observ.NewTimer()
				unitOpts.Timer = timers[i]
			}
			res, err := Compile(gctx, path, unitOpts)
			// индекс i уникален для каждой горутины, мьютекс не нужен
			results[i] = res
			return err
		})
	}
	err := g.Wait()
	if opts.Timer != nil {
		for i, t := range timers {
			opts.Timer.Merge(paths[i]+"/", t)
		}
	}
	return results, err
}
