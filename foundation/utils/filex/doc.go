// Package filex provides the file utilities the polytope tooling needs:
// existence checks, size-bounded reads, source discovery and change watching.
//
// Package: filex
// Title: File Utilities
// Description: Small file helpers shared by the configuration loader, the
//              parse engine and the command line. Watch wraps fsnotify and
//              watches parent directories so that editors which replace files
//              by rename are still observed.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2025-10-18 v0.2.0: Reduced to source handling, added ReadFileLimit and Watch
//
// Usage:
//   import "github.com/msto63/polytope/foundation/utils/filex"
//
//   files, err := filex.ExpandSources([]string{"problems/"}, ".poly")
//
//   err = filex.Watch(ctx, files, func(path string) {
//     // re-check path
//   }, nil)
package filex
