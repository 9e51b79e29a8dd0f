// Package polytope parses Polytope problem descriptions.
//
// Package: polytope
// Title: Polytope Engine
// Description: Entry point tying together the parser, configuration and
//              logging. Parse covers the common case; an Engine adds
//              limits, timing and concurrent batch parsing of files.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Usage:
//
//	prog, err := polytope.Parse(src)
//
//	cfg, _ := config.Discover(config.DiscoveryOptions{EnvPrefix: polytope.EnvPrefix})
//	opts, err := polytope.OptionsFromConfig(cfg)
//	opts.Logger = logger
//	engine, err := polytope.NewEngine(opts)
//	results := engine.ParseFiles(ctx, paths)
package polytope
