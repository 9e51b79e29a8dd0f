// Package log provides structured logging for the polytope foundation.
//
// Package: log
// Title: Polytope Structured Logging
// Description: Implements a small structured logger with levels, persistent
//              context fields, request ids, several output formats and timers.
//              Errors carrying a code are logged with their code, severity and
//              details as fields.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-10-18 v0.2.0: Synchronous writer only, stderr default, deterministic text fields
//
// Usage:
//   import mdwlog "github.com/msto63/polytope/foundation/core/log"
//
//   logger := mdwlog.New().
//     WithLevel(mdwlog.LevelDebug).
//     WithFormat(mdwlog.FormatText).
//     WithField("component", "polytope-parser")
//
//   logger.Debug("parsing source", mdwlog.Fields{"length": 120})
//
//   timer := logger.StartTimer("polytope.parse")
//   // ... parse
//   timer.Stop()
package log
