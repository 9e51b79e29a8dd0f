// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides configuration management with TOML
//              and YAML files, environment variable overrides, validation
//              rules and reload on change.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-10-18 v0.2.0: fsnotify watching, coded validation errors

/*
Package config provides configuration management for the polytope tools.

Values are addressed with dotted keys. An environment variable named after
the key, upper-cased with dots replaced by underscores and prefixed with the
configured prefix, overrides the file value:

	parser.max_depth  ->  POLYTOPE_PARSER_MAX_DEPTH

# Loading

	cfg, err := mdwconfig.LoadWithOptions("polytope.toml", mdwconfig.LoadOptions{
		EnvPrefix: "POLYTOPE",
		Defaults: map[string]interface{}{
			"parser": map[string]interface{}{"max_depth": 512},
		},
	})

	depth := cfg.GetInt("parser.max_depth", 512)

Discover searches a list of directories for the first matching file and,
unless Required is set, falls back to an empty environment-only Config.

# Validation

	err := cfg.Validate(mdwconfig.ValidationRules{
		"parser.max_depth": {Type: "int", Min: mdwconfig.IntPtr(1)},
		"log.level":        {OneOf: []string{"trace", "debug", "info", "warn", "error"}},
	})

# Watching

	go cfg.Watch(ctx, func(old, cur *mdwconfig.Config) {
		logger.Info("configuration reloaded")
	}, func(err error) {
		logger.LogError(err)
	})
*/
package config
