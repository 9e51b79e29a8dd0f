// File: config.go
// Title: Polytope Engine Configuration
// Description: Maps configuration files and environment variables onto
//              engine options and loggers. Keys are validated before use.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.1.0: Initial configuration mapping

package polytope

import (
	"io"

	mdwconfig "github.com/msto63/polytope/foundation/core/config"
	mdwerror "github.com/msto63/polytope/foundation/core/error"
	mdwlog "github.com/msto63/polytope/foundation/core/log"
	"github.com/msto63/polytope/foundation/polytope/parser"
)

// EnvPrefix prefixes environment overrides, e.g. POLYTOPE_PARSER_MAX_DEPTH
const EnvPrefix = "POLYTOPE"

// Configuration keys
const (
	KeyMaxInputLength = "parser.max_input_length"
	KeyMaxDepth       = "parser.max_depth"
	KeyWorkers        = "batch.workers"
	KeyCacheSize      = "cache.size"
	KeyCacheTTL       = "cache.ttl"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
)

// DefaultConfig returns the default values, nested like a config file
func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"parser": map[string]interface{}{
			"max_input_length": parser.DefaultMaxInputLength,
			"max_depth":        parser.DefaultMaxDepth,
		},
		"batch": map[string]interface{}{
			"workers": 0,
		},
		"cache": map[string]interface{}{
			"size": 256,
			"ttl":  "10m",
		},
		"log": map[string]interface{}{
			"level":  "info",
			"format": "text",
		},
	}
}

// ConfigRules are the validation rules for the recognized keys
var ConfigRules = mdwconfig.ValidationRules{
	KeyMaxInputLength: {Type: "int", Min: mdwconfig.IntPtr(1)},
	KeyMaxDepth:       {Type: "int", Min: mdwconfig.IntPtr(1), Max: mdwconfig.IntPtr(100000)},
	KeyWorkers:        {Type: "int", Min: mdwconfig.IntPtr(0), Max: mdwconfig.IntPtr(1024)},
	KeyCacheSize:      {Type: "int", Min: mdwconfig.IntPtr(0)},
	KeyCacheTTL:       {Type: "duration"},
	KeyLogLevel:       {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error"}},
	KeyLogFormat:      {Type: "string", OneOf: []string{"json", "text", "console", "logfmt"}},
}

// OptionsFromConfig validates cfg and returns the engine options it
// describes. The logger and cache are left unset; cache.size and
// cache.ttl are read by the caller that builds the cache.
func OptionsFromConfig(cfg *mdwconfig.Config) (Options, error) {
	if cfg == nil {
		return Options{}, mdwerror.New("configuration is nil").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("polytope.OptionsFromConfig")
	}
	if err := cfg.Validate(ConfigRules); err != nil {
		return Options{}, err
	}
	return Options{
		MaxInputLength: cfg.GetInt(KeyMaxInputLength, parser.DefaultMaxInputLength),
		MaxDepth:       cfg.GetInt(KeyMaxDepth, parser.DefaultMaxDepth),
		Workers:        cfg.GetInt(KeyWorkers, 0),
	}, nil
}

// LoggerFromConfig builds a logger from the log.* keys writing to out
func LoggerFromConfig(cfg *mdwconfig.Config, out io.Writer) (*mdwlog.Logger, error) {
	level, err := mdwlog.ParseLevel(cfg.GetString(KeyLogLevel, "info"))
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log level").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("polytope.LoggerFromConfig")
	}
	format, err := mdwlog.ParseFormat(cfg.GetString(KeyLogFormat, "text"))
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log format").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("polytope.LoggerFromConfig")
	}
	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: out,
		Name:   "polytope",
	}), nil
}
