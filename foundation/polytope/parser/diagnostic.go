// File: diagnostic.go
// Title: Polytope Parse Diagnostics
// Description: Defines the single diagnostic produced by a failed parse.
//              A diagnostic is either lexical or syntactic, carries the
//              position of the offending token, the expected token set
//              and can be rendered as a source snippet with a caret.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.1.0: Initial diagnostic implementation

package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	mdwerror "github.com/msto63/polytope/foundation/core/error"
	"github.com/msto63/polytope/foundation/polytope/ast"
	mdwstringx "github.com/msto63/polytope/foundation/utils/stringx"
)

// DiagnosticKind classifies a diagnostic
type DiagnosticKind int

const (
	// KindLexical means the text could not be split into tokens
	KindLexical DiagnosticKind = iota + 1
	// KindSyntax means the tokens do not form a valid program
	KindSyntax
)

// String returns the lower-case name of the kind
func (k DiagnosticKind) String() string {
	switch k {
	case KindLexical:
		return "lexical"
	case KindSyntax:
		return "syntax"
	default:
		return "unknown"
	}
}

// Diagnostic describes why parsing failed. It implements error.
type Diagnostic struct {
	Kind     DiagnosticKind
	Pos      ast.Position
	Message  string
	Expected []string // display names of acceptable tokens; empty for lexical errors
	Found    string   // display name of the offending token
	Hint     string   // optional remedy shown by Render

	code mdwerror.Code
}

// Error implements the error interface
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s error: %s", d.Pos, d.Kind, d.Message)
}

// Code returns the error code of the diagnostic
func (d *Diagnostic) Code() mdwerror.Code {
	if d.code != "" {
		return d.code
	}
	if d.Kind == KindLexical {
		return mdwerror.CodeLexical
	}
	return mdwerror.CodeSyntax
}

// Expects reports whether name is in the expected set. Both the bare
// and the quoted spelling of a keyword or punctuation token match.
func (d *Diagnostic) Expects(name string) bool {
	for _, e := range d.Expected {
		if e == name || e == quote(name) {
			return true
		}
	}
	return false
}

// AsError converts the diagnostic into a structured error carrying the
// position and token sets as details
func (d *Diagnostic) AsError() *mdwerror.Error {
	details := map[string]interface{}{
		"kind":   d.Kind.String(),
		"line":   d.Pos.Line,
		"column": d.Pos.Column,
		"offset": d.Pos.Offset,
	}
	if d.Found != "" {
		details["found"] = d.Found
	}
	if len(d.Expected) > 0 {
		details["expected"] = append([]string(nil), d.Expected...)
	}
	return mdwerror.New(d.Error()).
		WithCode(d.Code()).
		WithOperation("parser.Parse").
		WithDetails(details)
}

// Render formats the diagnostic followed by the offending source line and
// a caret under the error column. Tabs are expanded to four columns.
func (d *Diagnostic) Render(source string) string {
	var b strings.Builder
	b.WriteString(d.Error())
	b.WriteByte('\n')

	line, caret, ok := d.Snippet(source)
	if ok {
		gutter := fmt.Sprintf("%4d | ", d.Pos.Line)
		b.WriteString(gutter)
		b.WriteString(line)
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", len(gutter)-2))
		b.WriteString("| ")
		b.WriteString(strings.Repeat(" ", caret))
		b.WriteString("^\n")
	}
	if d.Hint != "" {
		b.WriteString("hint: ")
		b.WriteString(d.Hint)
		b.WriteByte('\n')
	}
	return b.String()
}

// Snippet returns the source line of the diagnostic with tabs expanded
// and the zero-based display column of the caret
func (d *Diagnostic) Snippet(source string) (line string, caret int, ok bool) {
	if !d.Pos.IsValid() {
		return "", 0, false
	}
	lines := strings.Split(source, "\n")
	if d.Pos.Line > len(lines) {
		return "", 0, false
	}
	raw := strings.TrimSuffix(lines[d.Pos.Line-1], "\r")

	col := d.Pos.Column - 1
	if col > len(raw) {
		col = len(raw)
	}
	if col < 0 {
		col = 0
	}
	prefix := mdwstringx.ExpandTabs(raw[:col], 4)
	return mdwstringx.ExpandTabs(raw, 4), utf8.RuneCountInString(prefix), true
}

// AsDiagnostic extracts a *Diagnostic from err
func AsDiagnostic(err error) (*Diagnostic, bool) {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}

// lexicalError builds the diagnostic for an illegal token
func lexicalError(tok Token) *Diagnostic {
	var msg string
	switch {
	case tok.Value == `"`:
		msg = "unterminated string literal"
	case tok.Value == "//" || tok.Value == "/*":
		msg = fmt.Sprintf("unexpected %q: comments are not supported", tok.Value)
	default:
		msg = fmt.Sprintf("unexpected character %q", tok.Value)
	}
	return &Diagnostic{
		Kind:    KindLexical,
		Pos:     tok.Pos,
		Message: msg,
		Found:   tok.Describe(),
	}
}

// syntaxError builds the diagnostic for an unexpected token
func syntaxError(tok Token, expected []string) *Diagnostic {
	return &Diagnostic{
		Kind:     KindSyntax,
		Pos:      tok.Pos,
		Message:  fmt.Sprintf("expected %s, found %s", joinExpected(expected), tok.Describe()),
		Expected: expected,
		Found:    tok.Describe(),
	}
}

// joinExpected renders a, b or c
func joinExpected(expected []string) string {
	switch len(expected) {
	case 0:
		return "nothing"
	case 1:
		return expected[0]
	default:
		return strings.Join(expected[:len(expected)-1], ", ") + " or " + expected[len(expected)-1]
	}
}
