// File: logger_test.go
// Title: Logger Tests
// Description: Tests for levels, formats, context fields, error logging
//              and timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2025-10-18 v0.2.0: Rewritten for the trimmed logger

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	mdwerror "github.com/msto63/polytope/foundation/core/error"
)

func newBufferLogger(format Format, level Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: format, Output: buf}), buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		m := map[string]interface{}{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"json", "text", "console", "logfmt"} {
		f, err := ParseFormat(name)
		if err != nil {
			t.Fatalf("ParseFormat(%q) unexpected error: %v", name, err)
		}
		if f.String() != name {
			t.Errorf("ParseFormat(%q).String() = %q", name, f.String())
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(FormatJSON, LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown")

	lines := decodeLines(t, buf)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 entries, got %d: %s", len(lines), buf.String())
	}
	if lines[0]["level"] != "warn" || lines[1]["level"] != "error" {
		t.Errorf("Unexpected levels: %v, %v", lines[0]["level"], lines[1]["level"])
	}
}

func TestWithMethodsDoNotMutate(t *testing.T) {
	base, buf := newBufferLogger(FormatJSON, LevelInfo)
	child := base.WithField("component", "polytope-parser").WithRequestID("req-1")

	base.Info("from base")
	child.Info("from child")

	lines := decodeLines(t, buf)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(lines))
	}
	if _, ok := lines[0]["component"]; ok {
		t.Error("Base logger should not carry child fields")
	}
	if lines[1]["component"] != "polytope-parser" {
		t.Errorf("component = %v", lines[1]["component"])
	}
	if lines[1]["request_id"] != "req-1" {
		t.Errorf("request_id = %v", lines[1]["request_id"])
	}
}

func TestTextFormatterSortsFields(t *testing.T) {
	f := &TextFormatter{DisableTimestamp: true}
	entry := NewEntry(LevelInfo, "parsed")
	entry.Fields = Fields{"zeta": 1, "alpha": 2, "mid": "x"}

	out, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	want := "[INF] parsed [alpha=2 mid=x zeta=1]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	logger, buf := newBufferLogger(FormatLogfmt, LevelInfo)
	logger.Info("done", Fields{"file": "a.poly", "tokens": 12})

	line := buf.String()
	for _, want := range []string{`level=info`, `message="done"`, `file="a.poly"`, `tokens=12`} {
		if !strings.Contains(line, want) {
			t.Errorf("Expected %q in %q", want, line)
		}
	}
	if strings.Index(line, "file=") > strings.Index(line, "tokens=") {
		t.Error("Expected fields in sorted order")
	}
}

func TestConsoleFormatterColors(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableTimestamp = true
	out, _ := f.Format(NewEntry(LevelError, "boom"))
	if !strings.HasPrefix(string(out), LevelError.Color()) {
		t.Errorf("Expected color prefix, got %q", out)
	}

	f.DisableColors = true
	out, _ = f.Format(NewEntry(LevelError, "boom"))
	if strings.Contains(string(out), "\033[") {
		t.Errorf("Expected no escape codes, got %q", out)
	}
}

type syntaxErr struct{}

func (syntaxErr) Error() string       { return "1:5: syntax error" }
func (syntaxErr) Code() mdwerror.Code { return mdwerror.CodeSyntax }

func TestLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  interface{}
	}{
		{
			name:      "plain error",
			err:       errors.New("plain"),
			wantLevel: "error",
			wantCode:  nil,
		},
		{
			name:      "coded source error",
			err:       fmt.Errorf("parse a.poly: %w", syntaxErr{}),
			wantLevel: "info",
			wantCode:  string(mdwerror.CodeSyntax),
		},
		{
			name:      "internal error",
			err:       mdwerror.New("bad state").WithCode(mdwerror.CodeInternal).WithDetail("stage", "lex"),
			wantLevel: "error",
			wantCode:  string(mdwerror.CodeInternal),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(FormatJSON, LevelTrace)
			logger.LogError(tt.err)

			lines := decodeLines(t, buf)
			if len(lines) != 1 {
				t.Fatalf("Expected 1 entry, got %d", len(lines))
			}
			if lines[0]["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", lines[0]["level"], tt.wantLevel)
			}
			if lines[0]["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", lines[0]["error_code"], tt.wantCode)
			}
		})
	}

	logger, buf := newBufferLogger(FormatJSON, LevelTrace)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("Expected no output for nil error, got %q", buf.String())
	}
}

func TestLogErrorIncludesDetails(t *testing.T) {
	logger, buf := newBufferLogger(FormatJSON, LevelTrace)
	err := mdwerror.New("too deep").
		WithCode(mdwerror.CodeNestingTooDeep).
		WithOperation("parser.expression").
		WithDetail("max_depth", 512)
	logger.LogError(err)

	line := decodeLines(t, buf)[0]
	if line["error_operation"] != "parser.expression" {
		t.Errorf("error_operation = %v", line["error_operation"])
	}
	if line["error_max_depth"] != float64(512) {
		t.Errorf("error_max_depth = %v", line["error_max_depth"])
	}
	if _, ok := line["error_details"]; !ok {
		t.Error("Expected error_details from MarshalJSON")
	}
}

func TestConcurrentClonesShareWriter(t *testing.T) {
	logger, buf := newBufferLogger(FormatJSON, LevelInfo)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			logger.WithField("worker", i).Info("tick")
		}(i)
	}
	wg.Wait()

	if got := len(decodeLines(t, buf)); got != 20 {
		t.Errorf("Expected 20 entries, got %d", got)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelError) {
		t.Error("Discard logger should not enable any level")
	}
	logger.Error("nothing")
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(FormatJSON, LevelDebug)

	timer := logger.StartTimer("polytope.parse").WithField("file", "a.poly")
	if d := timer.Stop(); d <= 0 {
		t.Errorf("Stop() returned %v", d)
	}
	if d := timer.Stop(); d != 0 {
		t.Errorf("Second Stop() = %v, want 0", d)
	}

	lines := decodeLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(lines))
	}
	if lines[0]["message"] != "polytope.parse completed" {
		t.Errorf("message = %v", lines[0]["message"])
	}
	if lines[0]["file"] != "a.poly" {
		t.Errorf("file = %v", lines[0]["file"])
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(FormatJSON, LevelDebug)

	timer := logger.StartTimer("polytope.parse")
	timer.StopWithError(syntaxErr{})

	line := decodeLines(t, buf)[0]
	if line["success"] != false {
		t.Errorf("success = %v", line["success"])
	}
	if line["error_code"] != string(mdwerror.CodeSyntax) {
		t.Errorf("error_code = %v", line["error_code"])
	}
	if line["operation"] != "polytope.parse" {
		t.Errorf("operation = %v", line["operation"])
	}
}
