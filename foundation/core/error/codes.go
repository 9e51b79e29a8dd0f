// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the polytope foundation for
//              consistent classification of lexical, syntax, input-limit and
//              configuration failures.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-10-18 v0.2.0: Parser diagnostic codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeCanceled     Code = "CANCELED"

	// Source text diagnostics
	CodeLexical        Code = "POLYTOPE_LEXICAL"
	CodeSyntax         Code = "POLYTOPE_SYNTAX"
	CodeInputTooLarge  Code = "INPUT_TOO_LARGE"
	CodeNestingTooDeep Code = "NESTING_TOO_DEEP"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeCanceled,
		CodeLexical, CodeSyntax, CodeInputTooLarge, CodeNestingTooDeep,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical, CodeSyntax:
		return "source"
	case CodeInputTooLarge, CodeNestingTooDeep:
		return "limits"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode maps a code onto a process exit status for command line tools.
// Source problems exit with 1, everything else with 2.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "source", "limits":
		return 1
	default:
		return 2
	}
}
