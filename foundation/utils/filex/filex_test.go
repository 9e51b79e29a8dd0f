// File: filex_test.go
// Title: File Utilities Tests
// Description: Tests for bounded reads, source expansion and watching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation with comprehensive coverage
// - 2025-10-18 v0.2.0: Rewritten for the reduced package

package filex

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("Failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
}

func TestExistence(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.poly": "x"})

	if !Exists(dir) || !IsDir(dir) || IsFile(dir) {
		t.Error("Expected temp dir to be an existing directory")
	}
	file := filepath.Join(dir, "a.poly")
	if !IsFile(file) || IsDir(file) {
		t.Error("Expected a.poly to be a file")
	}
	if Exists(filepath.Join(dir, "missing")) {
		t.Error("Expected missing path to not exist")
	}
}

func TestReadFileLimit(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.poly": "0123456789"})
	path := filepath.Join(dir, "a.poly")

	tests := []struct {
		name    string
		limit   int64
		wantErr error
	}{
		{"no limit", 0, nil},
		{"exact", 10, nil},
		{"larger", 100, nil},
		{"too small", 9, ErrTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFileLimit(path, tt.limit)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ReadFileLimit() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFileLimit() unexpected error: %v", err)
			}
			if string(got) != "0123456789" {
				t.Errorf("ReadFileLimit() = %q", got)
			}
		})
	}

	if _, err := ReadFileLimit(filepath.Join(dir, "missing"), 10); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestExpandSources(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"b.poly":         "",
		"a.poly":         "",
		"notes.txt":      "",
		"nested/c.poly":  "",
		"nested/d.POLYX": "",
	})

	single := filepath.Join(dir, "notes.txt")
	got, err := ExpandSources([]string{single, dir, filepath.Join(dir, "a.poly")}, ".poly")
	if err != nil {
		t.Fatalf("ExpandSources() error: %v", err)
	}

	want := []string{
		single,
		filepath.Join(dir, "a.poly"),
		filepath.Join(dir, "b.poly"),
		filepath.Join(dir, "nested", "c.poly"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExpandSources() mismatch (-want +got):\n%s", diff)
	}

	if _, err := ExpandSources([]string{filepath.Join(dir, "nope")}, ".poly"); err == nil {
		t.Error("Expected error for missing argument")
	}
}

func TestHasExt(t *testing.T) {
	if !HasExt("x/a.POLY", ".poly") {
		t.Error("Expected case-insensitive match")
	}
	if HasExt("a.poly.txt", ".poly") {
		t.Error("Expected mismatch")
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.poly": "one", "other.poly": "x"})
	path := filepath.Join(dir, "a.poly")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan string, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, []string{path}, func(p string) { changed <- p }, nil)
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	writeFiles(t, dir, map[string]string{"other.poly": "y"})
	writeFiles(t, dir, map[string]string{"a.poly": "two"})

	select {
	case got := <-changed:
		if got != path {
			t.Errorf("onChange(%q), want %q", got, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for change notification")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
