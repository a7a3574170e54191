package driver

import (
	"context"
	"fmt"
	"path/filepath"

	"diec/internal/ast"
	"diec/internal/diag"
	"diec/internal/emit"
	"diec/internal/lexer"
	"diec/internal/observ"
	"diec/internal/parser"
	"diec/internal/project"
	"diec/internal/sema"
	"diec/internal/source"
	"diec/internal/token"
	"diec/internal/trace"
	"diec/internal/types"
)

// Result is everything one unit produced up to the stage that ran.
type Result struct {
	Path    string
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Program *ast.Program
	Info    *sema.Info
	Classes []emit.Class
	Bag     *diag.Bag
	// Cached reports that Classes came from the build cache.
	Cached bool
}

// OK reports whether the unit finished without errors.
func (r *Result) OK() bool { return r != nil && !r.Bag.HasErrors() }

// Compile runs the pipeline over the file at path. Compiler errors land in
// Result.Bag; the returned error is reserved for cancellation.
func Compile(ctx context.Context, path string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	res := &Result{Path: path, FileSet: fs, Bag: diag.NewBag(opts.MaxDiagnostics)}
	id, err := fs.Load(path)
	if err != nil {
		res.Bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOLoadFileError,
			Message:  "failed to load file: " + err.Error(),
		})
		return res, nil
	}
	return compileFile(ctx, res, fs.Get(id), opts)
}

// CompileSource compiles in-memory text registered under name.
func CompileSource(ctx context.Context, name string, text []byte, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, text)
	res := &Result{Path: name, FileSet: fs, Bag: diag.NewBag(opts.MaxDiagnostics)}
	return compileFile(ctx, res, fs.Get(id), opts)
}

func compileFile(ctx context.Context, res *Result, file *source.File, opts Options) (*Result, error) {
	res.File = file
	ctx = trace.WithUnit(ctx, file.Path)
	ctx, unit := trace.Start(ctx, trace.ScopeUnit, "unit:"+file.Path)
	defer unit.End("")

	stage := opts.stage()
	timer := opts.Timer
	if timer == nil {
		timer = observ.NewTimer()
	}
	fail := func(err error) (*Result, error) {
		res.Bag.AddError(file.ID, err)
		unit.WithExtra("error", err.Error())
		return res, nil
	}
	run := func(name string, fn func() error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, span := trace.Start(ctx, trace.ScopePass, name)
		idx := timer.Begin(name)
		err := fn()
		timer.End(idx, "")
		span.End("")
		return err
	}

	class := opts.Class
	if class == "" {
		class = project.ClassName(file.Path)
	}
	emitOpts := emit.Options{Class: class, SourceFile: filepath.Base(file.Path), Major: opts.Major}
	var key project.Digest
	if stage == StageEmit && opts.Cache != nil {
		key = CacheKey(file, emitOpts)
		var payload CachePayload
		hit, err := opts.Cache.Get(key, &payload)
		if err != nil {
			unit.WithExtra("cache", err.Error())
		} else if hit && payload.Valid(file) {
			res.Classes = payload.Classes()
			res.Cached = true
			trace.Point(ctx, trace.ScopePass, "cache", "hit")
			return res, nil
		}
	}

	if stage == StageTokenize {
		err := run("lex", func() error {
			toks, err := lexer.New(file).All()
			res.Tokens = toks
			return err
		})
		if err != nil {
			if ctx.Err() != nil {
				return res, err
			}
			return fail(err)
		}
		return res, nil
	}

	err := run("parse", func() error {
		prog, err := parser.Parse(file)
		res.Program = prog
		return err
	})
	if err != nil {
		if ctx.Err() != nil {
			return res, err
		}
		return fail(err)
	}
	if stage == StageParse {
		return res, nil
	}

	hook := func(name string) func() {
		_, span := trace.Start(ctx, trace.ScopePass, name)
		done := timer.Track(name)
		return func() {
			done()
			span.End("")
		}
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}
	info, err := sema.ValidateWith(res.Program, types.NewInterner(), hook)
	if err != nil {
		return fail(err)
	}
	res.Info = info
	if stage == StageCheck {
		return res, nil
	}

	err = run("emit", func() error {
		classes, err := emit.Unit(res.Program, info, emitOpts)
		res.Classes = classes
		return err
	})
	if err != nil {
		if ctx.Err() != nil {
			return res, err
		}
		return fail(err)
	}
	if opts.Cache != nil {
		if err := opts.Cache.Put(key, NewCachePayload(file, res.Classes)); err != nil {
			res.Bag.Add(diag.Diagnostic{
				Severity: diag.SevWarning,
				Code:     diag.IOCacheError,
				Message:  fmt.Sprintf("build cache not updated: %v", err),
				File:     file.ID,
			})
		}
	}
	return res, nil
}
