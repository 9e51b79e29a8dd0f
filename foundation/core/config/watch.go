// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Implements reloading of file backed configurations when the
//              file changes on disk.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file watching
// - 2025-10-18 v0.2.0: fsnotify based, context bound, no polling goroutine

package config

import (
	"context"
	"os"

	mdwerror "github.com/msto63/polytope/foundation/core/error"
	mdwfilex "github.com/msto63/polytope/foundation/utils/filex"
	mdwstringx "github.com/msto63/polytope/foundation/utils/stringx"
)

// ChangeHandler is called after a successful reload with a snapshot of
// the previous and the new configuration
type ChangeHandler func(oldConfig, newConfig *Config)

// ErrorHandler receives reload and watcher errors
type ErrorHandler func(err error)

// Watch reloads the configuration each time its file changes and calls
// onChange after every successful reload. A failed reload keeps the
// previous values and is reported to onError. Watch blocks until ctx is
// done.
func (c *Config) Watch(ctx context.Context, onChange ChangeHandler, onError ErrorHandler) error {
	path := c.FilePath()
	if mdwstringx.IsBlank(path) {
		return mdwerror.New("file path required for watching").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.Watch")
	}

	report := func(err error) {
		if onError != nil {
			onError(err)
		}
	}

	return mdwfilex.Watch(ctx, []string{path}, func(string) {
		oldConfig := c.snapshot()
		if err := c.Reload(); err != nil {
			report(err)
			return
		}
		if onChange != nil {
			onChange(oldConfig, c.snapshot())
		}
	}, report)
}

// Reload re-reads the configuration file. On error the current values
// are left untouched.
func (c *Config) Reload() error {
	c.mu.RLock()
	path, format, defaults := c.filePath, c.format, c.defaults
	c.mu.RUnlock()

	content, err := os.ReadFile(path)
	if err != nil {
		return mdwerror.Wrap(err, "failed to read config file during reload").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Reload").
			WithDetail("filePath", path)
	}

	newData, err := parseContent(content, format)
	if err != nil {
		return mdwerror.Wrap(err, "failed to parse config file during reload").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Reload").
			WithDetail("filePath", path).
			WithDetail("format", format.String())
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = mergeDefaults(newData, defaults)
	if info, err := os.Stat(path); err == nil {
		c.lastModified = info.ModTime()
	}
	return nil
}
