// File: polytope_test.go
// Title: Polytope Engine Tests
// Description: Tests the package-level Parse, engine logging, file and
//              batch parsing, and configuration mapping.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.1.0: Initial engine test suite

package polytope

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwconfig "github.com/msto63/polytope/foundation/core/config"
	mdwerror "github.com/msto63/polytope/foundation/core/error"
	mdwlog "github.com/msto63/polytope/foundation/core/log"
	"github.com/msto63/polytope/foundation/polytope/ast"
	"github.com/msto63/polytope/foundation/polytope/parser"
)

const sample = `input { n: int; a: int[array:5]; } satisfies { in_range(n, 1, 100); sorted(a, asc); }
output { r: int; }
solution { var sum: int = 0; for (0 <= i <= n) { sum = sum + a[i]; } print(sum); }`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = mdwlog.Discard()
	}
	e, err := NewEngine(opts)
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}
	return e
}

func TestParse(t *testing.T) {
	prog, err := Parse(sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kinds := make([]string, 0, len(prog.Solution.Body))
	for _, s := range prog.Solution.Body {
		kinds = append(kinds, ast.TypeName(s))
	}
	if diff := cmp.Diff([]string{"var_decl", "for_stmt", "print_stmt"}, kinds); diff != "" {
		t.Errorf("statement kinds mismatch (-want +got):\n%s", diff)
	}

	forStmt := prog.Solution.Body[1].(*ast.ForStmt)
	if got := ast.SExpr(forStmt.Body[0]); got != "(assign = sum (+ sum (index a i)))" {
		t.Errorf("unexpected loop body %s", got)
	}

	_, err = Parse("input {} output {}")
	d, ok := parser.AsDiagnostic(err)
	if !ok || d.Kind != parser.KindSyntax || !d.Expects("solution") {
		t.Errorf("expected syntax diagnostic expecting solution, got %v", err)
	}
}

func TestEngine_ParseLogsTiming(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelDebug, Format: mdwlog.FormatLogfmt, Output: &buf})
	e := newTestEngine(t, Options{Logger: logger})

	if _, err := e.Parse(sample); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"polytope.parse completed", `component="polytope-engine"`, "nodes="} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if _, err := e.Parse("input {"); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(buf.String(), "success=false") {
		t.Errorf("expected failed timer entry:\n%s", buf.String())
	}
}

func TestEngine_ParseFile(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.poly", sample)
	bad := writeFile(t, dir, "bad.poly", "input { n: int; }\noutput { }\nsolution { x = ; }")

	e := newTestEngine(t, Options{})

	res := e.ParseFile(good)
	if !res.OK() || res.Program == nil {
		t.Fatalf("expected success, got %v", res.Err)
	}
	if res.Source != sample {
		t.Error("expected the source text on the result")
	}

	res = e.ParseFile(bad)
	d, ok := parser.AsDiagnostic(res.Err)
	if !ok {
		t.Fatalf("expected diagnostic, got %v", res.Err)
	}
	if d.Pos.Line != 3 || d.Pos.Column != 16 {
		t.Errorf("expected error at 3:16, got %s", d.Pos)
	}
	if res.Source == "" {
		t.Error("expected the source text on a failed result")
	}

	res = e.ParseFile(filepath.Join(dir, "missing.poly"))
	if !mdwerror.HasCode(res.Err, mdwerror.CodeNotFound) {
		t.Errorf("expected %s, got %v", mdwerror.CodeNotFound, res.Err)
	}

	small := newTestEngine(t, Options{MaxInputLength: 32})
	res = small.ParseFile(good)
	if !mdwerror.HasCode(res.Err, mdwerror.CodeInputTooLarge) {
		t.Errorf("expected %s, got %v", mdwerror.CodeInputTooLarge, res.Err)
	}
}

func TestEngine_ParseFiles(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	var want []bool
	for i := 0; i < 12; i++ {
		name := filepath.Join(dir, "p"+string(rune('a'+i))+".poly")
		content := sample
		ok := i%3 != 0
		if !ok {
			content = "input { } output { }"
		}
		if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, name)
		want = append(want, ok)
	}

	e := newTestEngine(t, Options{Workers: 3})
	results := e.ParseFiles(context.Background(), paths)

	if len(results) != len(paths) {
		t.Fatalf("expected %d results, got %d", len(paths), len(results))
	}
	for i, r := range results {
		if r.Path != paths[i] {
			t.Errorf("result %d: expected path %s, got %s", i, paths[i], r.Path)
		}
		if r.OK() != want[i] {
			t.Errorf("result %d: expected ok=%v, got err %v", i, want[i], r.Err)
		}
	}
}

func TestEngine_ParseFilesCanceled(t *testing.T) {
	dir := t.TempDir()
	paths := []string{writeFile(t, dir, "a.poly", sample), writeFile(t, dir, "b.poly", sample)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := newTestEngine(t, Options{Workers: 1}).ParseFiles(ctx, paths)
	for _, r := range results {
		if !mdwerror.HasCode(r.Err, mdwerror.CodeCanceled) {
			t.Errorf("%s: expected %s, got %v", r.Path, mdwerror.CodeCanceled, r.Err)
		}
	}
}

func TestNewEngine_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"negative workers", Options{Workers: -1}},
		{"negative depth", Options{MaxDepth: -1}},
		{"negative length", Options{MaxInputLength: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Logger = mdwlog.Discard()
			if _, err := NewEngine(tt.opts); !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
				t.Errorf("expected %s, got %v", mdwerror.CodeInvalidConfig, err)
			}
		})
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg, err := mdwconfig.LoadFromString(`
[parser]
max_input_length = 4096
max_depth = 64

[batch]
workers = 2
`, mdwconfig.FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error: %v", err)
	}

	opts, err := OptionsFromConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Options{MaxInputLength: 4096, MaxDepth: 64, Workers: 2}
	if opts != want {
		t.Errorf("expected %+v, got %+v", want, opts)
	}
}

func TestOptionsFromConfig_Defaults(t *testing.T) {
	opts, err := OptionsFromConfig(mdwconfig.New(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.MaxDepth != parser.DefaultMaxDepth || opts.MaxInputLength != parser.DefaultMaxInputLength || opts.Workers != 0 {
		t.Errorf("unexpected defaults: %+v", opts)
	}
}

func TestOptionsFromConfig_EnvOverride(t *testing.T) {
	t.Setenv("POLYTOPE_PARSER_MAX_DEPTH", "40")

	opts, err := OptionsFromConfig(mdwconfig.New(EnvPrefix))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.MaxDepth != 40 {
		t.Errorf("expected max depth 40 from environment, got %d", opts.MaxDepth)
	}
}

func TestOptionsFromConfig_Invalid(t *testing.T) {
	cfg, err := mdwconfig.LoadFromString("parser:\n  max_depth: 0\nlog:\n  level: loud\n", mdwconfig.FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromString() error: %v", err)
	}

	_, err = OptionsFromConfig(cfg)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Fatalf("expected %s, got %v", mdwerror.CodeInvalidConfig, err)
	}
	for _, want := range []string{"parser.max_depth", "log.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected violation for %s in %q", want, err.Error())
		}
	}

	if _, err := OptionsFromConfig(nil); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("expected %s for nil config, got %v", mdwerror.CodeInvalidInput, err)
	}
}

func TestLoggerFromConfig(t *testing.T) {
	cfg := mdwconfig.New("")
	cfg.Set(KeyLogLevel, "warn")
	cfg.Set(KeyLogFormat, "logfmt")

	var buf bytes.Buffer
	logger, err := LoggerFromConfig(cfg, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `message="shown"`) {
		t.Errorf("unexpected log output:\n%s", out)
	}

	cfg.Set(KeyLogFormat, "xml")
	if _, err := LoggerFromConfig(cfg, &buf); !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("expected %s, got %v", mdwerror.CodeInvalidConfig, err)
	}
}

type mapCache struct {
	programs map[string]*ast.Program
	gets     int
}

func (c *mapCache) Get(source string) (*ast.Program, bool) {
	c.gets++
	prog, ok := c.programs[source]
	return prog, ok
}

func (c *mapCache) Add(source string, prog *ast.Program) {
	c.programs[source] = prog
}

func TestEngine_ParseCache(t *testing.T) {
	cache := &mapCache{programs: make(map[string]*ast.Program)}
	engine, err := NewEngine(Options{Logger: mdwlog.Discard(), Cache: cache})
	if err != nil {
		t.Fatal(err)
	}

	first, err := engine.Parse(sample)
	if err != nil {
		t.Fatal(err)
	}
	second, err := engine.Parse(sample)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("second parse of the same source should return the cached program")
	}
	if cache.gets != 2 || len(cache.programs) != 1 {
		t.Errorf("cache gets = %d, entries = %d", cache.gets, len(cache.programs))
	}

	if _, err := engine.Parse("input {} output {}"); err == nil {
		t.Fatal("expected a syntax error")
	}
	if len(cache.programs) != 1 {
		t.Error("failed parses must not be cached")
	}
}
