// File: token.go
// Title: Polytope Token Definitions
// Description: Defines token types, the reserved keyword set and the
//              display names used in diagnostics.
// Author: msto63
// Version: v0.1.1
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.1.0: Initial token definitions
// - 2025-10-18 v0.1.1: Unterminated strings described as a quote character

package parser

import (
	"fmt"
	"sort"

	"github.com/msto63/polytope/foundation/polytope/ast"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Identifiers, keywords and literals
	TokenIdentifier // sum, a_1
	TokenKeyword    // input, if, array, ...
	TokenInt        // 42
	TokenString     // "text" (Value holds the text between the quotes)

	// Delimiters
	TokenLeftBrace    // {
	TokenRightBrace   // }
	TokenLeftParen    // (
	TokenRightParen   // )
	TokenLeftBracket  // [
	TokenRightBracket // ]
	TokenComma        // ,
	TokenColon        // :
	TokenSemicolon    // ;
	TokenPipe         // |

	// Assignment operators
	TokenAssign    // =
	TokenAddAssign // +=
	TokenSubAssign // -=
	TokenMulAssign // *=
	TokenDivAssign // /=
	TokenModAssign // %=

	// Comparison and logical operators
	TokenEqual        // ==
	TokenNotEqual     // !=
	TokenLess         // <
	TokenLessEqual    // <=
	TokenGreater      // >
	TokenGreaterEqual // >=
	TokenAnd          // &&
	TokenOr           // ||

	// Arithmetic and prefix operators
	TokenPlus    // +
	TokenMinus   // -
	TokenStar    // *
	TokenSlash   // /
	TokenPercent // %
	TokenBang    // !
	TokenTilde   // ~
)

var tokenNames = map[TokenType]string{
	TokenEOF:          "EOF",
	TokenIllegal:      "ILLEGAL",
	TokenIdentifier:   "IDENTIFIER",
	TokenKeyword:      "KEYWORD",
	TokenInt:          "INT",
	TokenString:       "STRING",
	TokenLeftBrace:    "LEFT_BRACE",
	TokenRightBrace:   "RIGHT_BRACE",
	TokenLeftParen:    "LEFT_PAREN",
	TokenRightParen:   "RIGHT_PAREN",
	TokenLeftBracket:  "LEFT_BRACKET",
	TokenRightBracket: "RIGHT_BRACKET",
	TokenComma:        "COMMA",
	TokenColon:        "COLON",
	TokenSemicolon:    "SEMICOLON",
	TokenPipe:         "PIPE",
	TokenAssign:       "ASSIGN",
	TokenAddAssign:    "ADD_ASSIGN",
	TokenSubAssign:    "SUB_ASSIGN",
	TokenMulAssign:    "MUL_ASSIGN",
	TokenDivAssign:    "DIV_ASSIGN",
	TokenModAssign:    "MOD_ASSIGN",
	TokenEqual:        "EQUAL",
	TokenNotEqual:     "NOT_EQUAL",
	TokenLess:         "LESS",
	TokenLessEqual:    "LESS_EQUAL",
	TokenGreater:      "GREATER",
	TokenGreaterEqual: "GREATER_EQUAL",
	TokenAnd:          "AND",
	TokenOr:           "OR",
	TokenPlus:         "PLUS",
	TokenMinus:        "MINUS",
	TokenStar:         "STAR",
	TokenSlash:        "SLASH",
	TokenPercent:      "PERCENT",
	TokenBang:         "BANG",
	TokenTilde:        "TILDE",
}

// punctuation maps every fixed-text token type to its text
var punctuation = map[TokenType]string{
	TokenLeftBrace:    "{",
	TokenRightBrace:   "}",
	TokenLeftParen:    "(",
	TokenRightParen:   ")",
	TokenLeftBracket:  "[",
	TokenRightBracket: "]",
	TokenComma:        ",",
	TokenColon:        ":",
	TokenSemicolon:    ";",
	TokenPipe:         "|",
	TokenAssign:       "=",
	TokenAddAssign:    "+=",
	TokenSubAssign:    "-=",
	TokenMulAssign:    "*=",
	TokenDivAssign:    "/=",
	TokenModAssign:    "%=",
	TokenEqual:        "==",
	TokenNotEqual:     "!=",
	TokenLess:         "<",
	TokenLessEqual:    "<=",
	TokenGreater:      ">",
	TokenGreaterEqual: ">=",
	TokenAnd:          "&&",
	TokenOr:           "||",
	TokenPlus:         "+",
	TokenMinus:        "-",
	TokenStar:         "*",
	TokenSlash:        "/",
	TokenPercent:      "%",
	TokenBang:         "!",
	TokenTilde:        "~",
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return "UNKNOWN"
}

// Display returns the name of the token type as used in diagnostics:
// the quoted text for fixed tokens, a class name otherwise
func (tt TokenType) Display() string {
	if text, ok := punctuation[tt]; ok {
		return quote(text)
	}
	switch tt {
	case TokenEOF:
		return "end of input"
	case TokenIdentifier:
		return "identifier"
	case TokenKeyword:
		return "keyword"
	case TokenInt:
		return "integer literal"
	case TokenString:
		return "string literal"
	default:
		return "invalid token"
	}
}

// Token represents a lexical token with its source range
type Token struct {
	Type  TokenType    // Token type
	Value string       // Token text; string content without quotes
	Pos   ast.Position // First byte of the token
	End   ast.Position // Position just past the token
}

// Span returns the source range of the token
func (t Token) Span() ast.Span {
	return ast.Span{Start: t.Pos, End: t.End}
}

// String returns a debug representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenString:
		return fmt.Sprintf("%s(%q)", t.Type, t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type, t.Value)
	}
}

// Describe returns the token as it is named in diagnostics
func (t Token) Describe() string {
	switch t.Type {
	case TokenEOF:
		return "end of input"
	case TokenIdentifier:
		return "identifier " + quote(t.Value)
	case TokenKeyword:
		return "keyword " + quote(t.Value)
	case TokenInt:
		return "integer literal " + t.Value
	case TokenString:
		return "string literal " + quote(t.Value)
	case TokenIllegal:
		if t.Value == `"` {
			return "quote character"
		}
		return quote(t.Value)
	default:
		return t.Type.Display()
	}
}

// Is reports whether the token is the keyword kw
func (t Token) Is(kw string) bool {
	return t.Type == TokenKeyword && t.Value == kw
}

// keywords is the reserved word set; none of these is ever an identifier
var keywords = map[string]bool{
	"input": true, "output": true, "solution": true, "satisfies": true,
	"if": true, "else": true, "for": true, "while": true, "print": true,
	"continue": true, "break": true, "var": true, "def": true,
	"int": true, "string": true, "bool": true,
	"true": true, "false": true,
	"forall": true, "distinct": true, "sorted": true, "in_range": true,
	"asc": true, "desc": true, "nondecreasing": true, "nonincreasing": true,
	"array": true,
}

// IsKeyword reports whether s is a reserved word
func IsKeyword(s string) bool {
	return keywords[s]
}

// Keywords returns the reserved words in sorted order
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for k := range keywords {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// lookupIdent classifies an identifier-shaped word
func lookupIdent(word string) TokenType {
	if keywords[word] {
		return TokenKeyword
	}
	return TokenIdentifier
}

func quote(s string) string {
	return `"` + s + `"`
}
