// ============================================================================
// Polytope - Problem description language toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the toolkit components
// Author:      msto63
// Created:     2025-10-18
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the toolkit components
const (
	// Toolkit version
	Toolkit = "0.1.0"

	// Component versions
	Language = "1.0.0" // grammar accepted by the parser
	Parser   = "0.1.0"
	CLI      = "0.1.0"
	Viewer   = "0.1.0"
)

// Build metadata, set with -ldflags "-X .../version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "language":
		return Language
	case "parser":
		return Parser
	case "cli":
		return CLI
	case "viewer":
		return Viewer
	default:
		return Toolkit
	}
}

// Info describes the running build
type Info struct {
	Toolkit   string
	Language  string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Toolkit:   Toolkit,
		Language:  Language,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the info as the version command prints it
func (i Info) String() string {
	return fmt.Sprintf("Polytope v%s (language %s)\n"+
		"  Git Commit: %s\n"+
		"  Build Date: %s\n"+
		"  Go Version: %s\n"+
		"  OS/Arch:    %s\n",
		i.Toolkit, i.Language, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
