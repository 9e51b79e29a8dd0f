// File: polytope.go
// Title: Polytope Engine
// Description: Configured entry point for parsing Polytope sources. Wraps
//              the parser with timing and logging, reads files with a size
//              limit and parses batches of files on a bounded worker pool.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.1.0: Initial engine implementation
// - 2025-10-18 v0.2.0: Optional program cache

package polytope

import (
	"context"
	"errors"
	"os"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	mdwerror "github.com/msto63/polytope/foundation/core/error"
	mdwlog "github.com/msto63/polytope/foundation/core/log"
	"github.com/msto63/polytope/foundation/polytope/ast"
	"github.com/msto63/polytope/foundation/polytope/parser"
	mdwfilex "github.com/msto63/polytope/foundation/utils/filex"
)

// Options configures an Engine
type Options struct {
	Logger         *mdwlog.Logger
	MaxInputLength int // bytes; 0 selects parser.DefaultMaxInputLength
	MaxDepth       int // 0 selects parser.DefaultMaxDepth
	Workers        int // concurrent files in ParseFiles; 0 selects runtime.NumCPU()
	Cache          ProgramCache
}

// ProgramCache stores parsed programs by source text. Cached programs are
// shared between callers and must not be modified.
type ProgramCache interface {
	Get(source string) (*ast.Program, bool)
	Add(source string, prog *ast.Program)
}

// Engine parses Polytope programs. It is safe for concurrent use.
type Engine struct {
	parser  *parser.Parser
	logger  *mdwlog.Logger
	workers int
	cache   ProgramCache
}

// Result is the outcome of parsing one file
type Result struct {
	Path     string
	Source   string
	Program  *ast.Program
	Err      error
	Duration time.Duration
}

// OK reports whether the file parsed without error
func (r Result) OK() bool {
	return r.Err == nil
}

// NewEngine creates an engine with the given options
func NewEngine(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Workers < 0 {
		return nil, mdwerror.Newf("workers must not be negative: %d", opts.Workers).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("polytope.NewEngine")
	}
	if opts.Workers == 0 {
		opts.Workers = runtime.NumCPU()
	}

	p, err := parser.New(parser.Options{
		Logger:         opts.Logger,
		MaxInputLength: opts.MaxInputLength,
		MaxDepth:       opts.MaxDepth,
	})
	if err != nil {
		return nil, err
	}

	return &Engine{
		parser:  p,
		logger:  opts.Logger.WithField("component", "polytope-engine"),
		workers: opts.Workers,
		cache:   opts.Cache,
	}, nil
}

// Parser returns the underlying parser
func (e *Engine) Parser() *parser.Parser {
	return e.parser
}

// Workers returns the batch worker count
func (e *Engine) Workers() int {
	return e.workers
}

// Parse parses source into a program. Errors are *parser.Diagnostic.
// With a cache configured, a source parsed before returns the cached
// program, which is shared with every other caller that parsed the same
// source and must not be modified.
func (e *Engine) Parse(source string) (*ast.Program, error) {
	if e.cache != nil {
		if prog, ok := e.cache.Get(source); ok {
			e.logger.Trace("Program cache hit", mdwlog.Fields{"length": len(source)})
			return prog, nil
		}
	}

	timer := e.logger.StartTimer("polytope.parse").WithField("length", len(source))

	prog, err := e.parser.Parse(source)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}
	timer.WithField("nodes", ast.Count(prog)).Stop()

	if e.cache != nil {
		e.cache.Add(source, prog)
	}
	return prog, nil
}

// ParseFile reads and parses the file at path. Files larger than the
// input limit are rejected before they are read in full.
func (e *Engine) ParseFile(path string) Result {
	start := time.Now()
	res := Result{Path: path}

	content, err := mdwfilex.ReadFileLimit(path, int64(e.parser.Options().MaxInputLength))
	if err != nil {
		res.Err = readError(path, err)
		res.Duration = time.Since(start)
		e.logger.WarnWithErr("Failed to read source file", res.Err, mdwlog.Fields{"path": path})
		return res
	}

	res.Source = string(content)
	res.Program, res.Err = e.Parse(res.Source)
	res.Duration = time.Since(start)
	return res
}

// ParseFiles parses paths with at most Workers files in flight. Results
// are returned in the order of paths. Files not yet started when ctx is
// done get a CANCELED error.
func (e *Engine) ParseFiles(ctx context.Context, paths []string) []Result {
	results := make([]Result, len(paths))

	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{
					Path: path,
					Err: mdwerror.Wrap(err, "parse canceled").
						WithCode(mdwerror.CodeCanceled).
						WithOperation("polytope.ParseFiles").
						WithDetail("path", path),
				}
				return nil
			}
			results[i] = e.ParseFile(path)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}
	e.logger.Debug("Batch parsing completed", mdwlog.Fields{
		"files":   len(paths),
		"failed":  failed,
		"workers": e.workers,
	})
	return results
}

func readError(path string, err error) error {
	switch {
	case errors.Is(err, mdwfilex.ErrTooLarge):
		return mdwerror.Wrap(err, "source file too large").
			WithCode(mdwerror.CodeInputTooLarge).
			WithOperation("polytope.ParseFile").
			WithDetail("path", path)
	case errors.Is(err, os.ErrNotExist):
		return mdwerror.Wrap(err, "source file not found").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("polytope.ParseFile").
			WithDetail("path", path)
	default:
		return mdwerror.Wrap(err, "failed to read source file").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("polytope.ParseFile").
			WithDetail("path", path)
	}
}

var defaultEngine = sync.OnceValue(func() *Engine {
	e, err := NewEngine(Options{Logger: mdwlog.Discard(), Workers: 1})
	if err != nil {
		panic(err)
	}
	return e
})

// Parse parses source with default limits and no logging
func Parse(source string) (*ast.Program, error) {
	return defaultEngine().Parse(source)
}
