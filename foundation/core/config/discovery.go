// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Implements configuration file discovery across several
//              directories, base names and extensions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2025-10-18 v0.2.0: Optional discovery returns an environment-only config

package config

import (
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/polytope/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string               // Directories to search for config files
	Filenames  []string               // Base filenames to look for (without extension)
	Extensions []string               // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Default values applied to the found file
	Required   bool                   // Whether finding a config file is required
}

// Discover loads the first configuration file found. Paths are searched
// in order, then base names, then extensions. When nothing is found and
// Required is false, an empty Config with the given prefix and defaults
// is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	options = withDiscoveryDefaults(options)

	path, err := FindConfigFile(options)
	if err == nil {
		return LoadWithOptions(path, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
			Defaults:  options.Defaults,
		})
	}

	if options.Required {
		return nil, mdwerror.Newf("no configuration file found in paths: %s",
			strings.Join(ListPossibleConfigFiles(options), ", ")).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.Discover")
	}

	cfg := New(options.EnvPrefix)
	cfg.data = mergeDefaults(cfg.data, options.Defaults)
	cfg.defaults = options.Defaults
	return cfg, nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, candidate := range ListPossibleConfigFiles(withDiscoveryDefaults(options)) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", mdwerror.New("configuration file not found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, dir := range options.Paths {
		if dir == "" {
			continue
		}
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, filename+ext))
			}
		}
	}
	return paths
}

func withDiscoveryDefaults(options DiscoveryOptions) DiscoveryOptions {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"config"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}
	return options
}
