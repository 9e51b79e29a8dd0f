// File: filex.go
// Title: Core File Utilities
// Description: Implements existence checks, size-bounded reads and source
//              file discovery.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2025-10-18 v0.2.0: ReadFileLimit, ExpandSources; dropped copy/hash helpers

package filex

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrTooLarge is returned by ReadFileLimit when a file exceeds the limit
var ErrTooLarge = errors.New("file exceeds size limit")

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ReadFile reads the entire file and returns its contents
func ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return content, nil
}

// ReadFileLimit reads at most limit bytes. A file larger than limit
// yields ErrTooLarge without reading the remainder. A limit <= 0 means
// no limit.
func ReadFileLimit(path string, limit int64) ([]byte, error) {
	if limit <= 0 {
		return ReadFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if int64(len(content)) > limit {
		return nil, fmt.Errorf("%s: %w (%d bytes)", path, ErrTooLarge, limit)
	}
	return content, nil
}

// FindFiles returns the regular files below root whose base name
// matches pattern, in lexical order
func FindFiles(root, pattern string) ([]string, error) {
	var matches []string

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		matched, err := filepath.Match(pattern, d.Name())
		if err != nil {
			return err
		}
		if matched {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during file search: %w", err)
	}

	sort.Strings(matches)
	return matches, nil
}

// ExpandSources turns a list of command line arguments into files.
// Files are kept as given; directories are searched recursively for
// files ending in ext. Duplicates are dropped, first occurrence wins.
func ExpandSources(args []string, ext string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string

	add := func(p string) {
		key := filepath.Clean(p)
		if !seen[key] {
			seen[key] = true
			out = append(out, p)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			add(arg)
			continue
		}
		files, err := FindFiles(arg, "*"+ext)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			add(f)
		}
	}
	return out, nil
}

// HasExt reports whether path ends in ext, ignoring case
func HasExt(path, ext string) bool {
	return strings.EqualFold(filepath.Ext(path), ext)
}
