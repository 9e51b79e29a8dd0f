package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwconfig "github.com/msto63/polytope/foundation/core/config"
	mdwerror "github.com/msto63/polytope/foundation/core/error"
	"github.com/msto63/polytope/foundation/polytope"
)

const validSource = `input { n: int; a: int[array:5]; } satisfies { in_range(n, 1, 100); sorted(a, asc); }
output { r: int; }
solution { var sum: int = 0; for (0 <= i <= n) { sum = sum + a[i]; } print(sum); }
`

const brokenSource = "input {} output {}"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the root command with a quiet config file
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cfg := writeFile(t, t.TempDir(), "polytope.toml", "[log]\nlevel = \"error\"\n")

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--config", cfg, "--no-color"}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestParseCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sum.poly", validSource)

	out, _, err := execute(t, "parse", "--format", "sexp", path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := "(program (input (target n (int)) (target a (array (int) 5)) (satisfies (in_range n 1 100) (sorted a asc))) " +
		"(output (target r (int))) " +
		"(solution (var sum (int) 0) (for 0 i n (body (assign = sum (+ sum (index a i))))) (print sum)))\n"
	if out != want {
		t.Errorf("parse --format sexp =\n%s\nwant\n%s", out, want)
	}
}

func TestParseCommandJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sum.poly", validSource)

	out, _, err := execute(t, "parse", "--format", "json", path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	var tree map[string]interface{}
	if err := json.Unmarshal([]byte(out), &tree); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if tree["type"] != "program" {
		t.Errorf("type = %v", tree["type"])
	}
	if _, ok := tree["span"]; ok {
		t.Error("spans should be omitted without --spans")
	}
}

func TestParseCommandYAMLMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.poly", validSource)
	second := writeFile(t, dir, "b.poly", validSource)

	out, _, err := execute(t, "parse", "--format", "yaml", first, second)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if strings.Count(out, "path: ") != 2 {
		t.Errorf("expected one document per file:\n%s", out)
	}
	if !strings.Contains(out, "type: program") {
		t.Errorf("missing program node:\n%s", out)
	}
}

func TestParseCommandFailure(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.poly", brokenSource)

	_, stderr, err := execute(t, "parse", "--format", "pretty", path)
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	if !strings.Contains(stderr, path+`:1:19: syntax error: expected "solution", found end of input`) {
		t.Errorf("stderr missing diagnostic:\n%s", stderr)
	}
	if !strings.Contains(stderr, "   1 | input {} output {}") {
		t.Errorf("stderr missing source line:\n%s", stderr)
	}
	if ExitCode(err) != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode(err))
	}
}

func TestParseCommandUnknownFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sum.poly", validSource)

	_, _, err := execute(t, "parse", "--format", "xml", path)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
	if ExitCode(err) != 2 {
		t.Errorf("ExitCode = %d, want 2", ExitCode(err))
	}
}

func TestTokensCommand(t *testing.T) {
	path := writeFile(t, t.TempDir(), "t.poly", "var x: int;")

	out, _, err := execute(t, "tokens", path)
	if err != nil {
		t.Fatalf("tokens failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d token lines, want 6:\n%s", len(lines), out)
	}
	if diff := cmp.Diff([]string{"1:1", "KEYWORD", "var"}, strings.Fields(lines[0])); diff != "" {
		t.Errorf("first row mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1:6", "COLON", ":"}, strings.Fields(lines[2])); diff != "" {
		t.Errorf("third row mismatch (-want +got):\n%s", diff)
	}
	if strings.ContainsAny(out, "│─") {
		t.Errorf("token table should be borderless:\n%s", out)
	}

	bad := writeFile(t, t.TempDir(), "bad.poly", "var x @")
	_, stderr, err := execute(t, "tokens", bad)
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	if !strings.Contains(stderr, `lexical error: unexpected character "@"`) {
		t.Errorf("stderr = %s", stderr)
	}
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.poly", validSource)
	writeFile(t, dir, "notes.txt", "ignored")
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, sub, "bad.poly", brokenSource)

	out, stderr, err := execute(t, "check", dir)
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	if !strings.Contains(out, "ok "+filepath.Join(dir, "good.poly")) {
		t.Errorf("stdout missing ok line:\n%s", out)
	}
	if strings.Contains(out+stderr, "notes.txt") {
		t.Error("non-source files must not be checked")
	}
	if !strings.Contains(stderr, "bad.poly:1:19") {
		t.Errorf("stderr missing failure:\n%s", stderr)
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polytope.toml")

	out, _, err := execute(t, "config", "init", "--format", "toml", path)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(out, "created") {
		t.Errorf("stdout = %q", out)
	}

	cfg, err := mdwconfig.Load(path)
	if err != nil {
		t.Fatalf("generated config does not load: %v", err)
	}
	opts, err := polytope.OptionsFromConfig(cfg)
	if err != nil {
		t.Fatalf("generated config is invalid: %v", err)
	}
	if opts.MaxDepth != 512 {
		t.Errorf("MaxDepth = %d, want 512", opts.MaxDepth)
	}

	_, _, err = execute(t, "config", "init", "--format", "toml", path)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("second init err = %v, want INVALID_INPUT", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "Polytope v") {
		t.Errorf("version output = %q", out)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"reported", errReported, 1},
		{"plain", errors.New("boom"), 1},
		{"config", mdwerror.New("bad").WithCode(mdwerror.CodeInvalidConfig), 2},
		{"syntax", mdwerror.New("bad").WithCode(mdwerror.CodeSyntax), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
