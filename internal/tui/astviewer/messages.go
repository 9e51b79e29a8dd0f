// ============================================================================
// Polytope - Problem description language toolkit
// ============================================================================
//
// Package:     astviewer
// Description: Message types for async operations in the AST viewer
// Author:      msto63
// Created:     2025-10-18
// License:     MIT
// ============================================================================

package astviewer

import (
	"github.com/msto63/polytope/foundation/polytope"
)

// programLoadedMsg is sent when the file has been read and parsed
type programLoadedMsg struct {
	result polytope.Result
}

// fileChangedMsg is sent by the watcher when the file was written
type fileChangedMsg struct {
	path string
}

// watchErrorMsg is sent when the watcher reports a failure
type watchErrorMsg struct {
	err error
}
