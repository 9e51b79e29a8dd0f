// Package error provides structured error handling for the polytope foundation.
//
// Package: error
// Title: Polytope Error Handling Framework
// Description: Implements an error type carrying a code, a severity, the failing
//              operation and free-form details. Parser diagnostics convert into
//              this type so that logging and CLI reporting treat lexical and
//              syntax failures the same way as configuration or I/O failures.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-10-18 v0.2.0: Reduced code set to parser, input and configuration failures
//
// Usage:
//   import mdwerror "github.com/msto63/polytope/foundation/core/error"
//
//   err := mdwerror.New("unexpected token").
//     WithCode(mdwerror.CodeSyntax).
//     WithDetail("line", 3).
//     WithOperation("parser.Parse")
//
//   if mdwerror.HasCode(err, mdwerror.CodeSyntax) {
//     // report to the user
//   }
package error
