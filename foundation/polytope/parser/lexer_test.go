// File: lexer_test.go
// Title: Polytope Lexer Unit Tests
// Description: Tests tokenization, longest-match operators, keyword
//              classification, string escapes, positions and lexical
//              errors.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.1.0: Initial lexer test suite

package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/msto63/polytope/foundation/polytope/ast"
)

func tokenTypes(t *testing.T, input string) []TokenType {
	t.Helper()
	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", input, err)
	}
	types := make([]TokenType, 0, len(tokens))
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	return types
}

func TestLexer_Operators(t *testing.T) {
	tests := []struct {
		input string
		want  []TokenType
	}{
		{"a<=b", []TokenType{TokenIdentifier, TokenLessEqual, TokenIdentifier, TokenEOF}},
		{"a< =b", []TokenType{TokenIdentifier, TokenLess, TokenAssign, TokenIdentifier, TokenEOF}},
		{"+= -= *= /= %=", []TokenType{TokenAddAssign, TokenSubAssign, TokenMulAssign, TokenDivAssign, TokenModAssign, TokenEOF}},
		{"== != < > >=", []TokenType{TokenEqual, TokenNotEqual, TokenLess, TokenGreater, TokenGreaterEqual, TokenEOF}},
		{"&& || |", []TokenType{TokenAnd, TokenOr, TokenPipe, TokenEOF}},
		{"--x", []TokenType{TokenMinus, TokenMinus, TokenIdentifier, TokenEOF}},
		{"!~+-*/%", []TokenType{TokenBang, TokenTilde, TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenPercent, TokenEOF}},
		{"{}()[],:;", []TokenType{
			TokenLeftBrace, TokenRightBrace, TokenLeftParen, TokenRightParen,
			TokenLeftBracket, TokenRightBracket, TokenComma, TokenColon, TokenSemicolon, TokenEOF,
		}},
		{"x=-1", []TokenType{TokenIdentifier, TokenAssign, TokenMinus, TokenInt, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tokenTypes(t, tt.input)); diff != "" {
				t.Errorf("token types mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLexer_KeywordsAndIdentifiers(t *testing.T) {
	tokens, err := Tokenize("input inputs _x array1 array in_range Int 007")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Token{
		{Type: TokenKeyword, Value: "input"},
		{Type: TokenIdentifier, Value: "inputs"},
		{Type: TokenIdentifier, Value: "_x"},
		{Type: TokenIdentifier, Value: "array1"},
		{Type: TokenKeyword, Value: "array"},
		{Type: TokenKeyword, Value: "in_range"},
		{Type: TokenIdentifier, Value: "Int"},
		{Type: TokenInt, Value: "007"},
		{Type: TokenEOF},
	}
	opt := cmp.Comparer(func(a, b Token) bool { return a.Type == b.Type && a.Value == b.Value })
	if diff := cmp.Diff(want, tokens, opt); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestLexer_EveryKeywordIsReserved(t *testing.T) {
	for _, kw := range Keywords() {
		tokens, err := Tokenize(kw)
		if err != nil {
			t.Fatalf("Tokenize(%q) error: %v", kw, err)
		}
		if tokens[0].Type != TokenKeyword {
			t.Errorf("%q lexed as %s, want KEYWORD", kw, tokens[0].Type)
		}
	}
	if len(Keywords()) != 27 {
		t.Errorf("expected 27 keywords, got %d", len(Keywords()))
	}
}

func TestLexer_Strings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `"hello world"`, "hello world"},
		{"empty", `""`, ""},
		{"escaped quote", `"a\"b"`, `a\"b`},
		{"escaped backslash", `"a\\"`, `a\\`},
		{"other escape kept", `"a\nb"`, `a\nb`},
		{"multi line", "\"a\nb\"", "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tokens[0].Type != TokenString {
				t.Fatalf("expected STRING, got %s", tokens[0].Type)
			}
			if tokens[0].Value != tt.want {
				t.Errorf("expected value %q, got %q", tt.want, tokens[0].Value)
			}
			if tokens[1].Type != TokenEOF {
				t.Errorf("expected EOF after string, got %s", tokens[1])
			}
		})
	}
}

func TestLexer_Positions(t *testing.T) {
	tokens, err := Tokenize("ab\n  cd <=\n\t\"x\"")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []ast.Span{
		{Start: ast.Position{Line: 1, Column: 1, Offset: 0}, End: ast.Position{Line: 1, Column: 3, Offset: 2}},
		{Start: ast.Position{Line: 2, Column: 3, Offset: 5}, End: ast.Position{Line: 2, Column: 5, Offset: 7}},
		{Start: ast.Position{Line: 2, Column: 6, Offset: 8}, End: ast.Position{Line: 2, Column: 8, Offset: 10}},
		{Start: ast.Position{Line: 3, Column: 2, Offset: 12}, End: ast.Position{Line: 3, Column: 5, Offset: 15}},
		{Start: ast.Position{Line: 3, Column: 5, Offset: 15}, End: ast.Position{Line: 3, Column: 5, Offset: 15}},
	}
	got := make([]ast.Span, 0, len(tokens))
	for _, tok := range tokens {
		got = append(got, tok.Span())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantPos ast.Position
		wantMsg string
	}{
		{"illegal character", "a @ b", ast.Position{Line: 1, Column: 3, Offset: 2}, `unexpected character "@"`},
		{"single ampersand", "a & b", ast.Position{Line: 1, Column: 3, Offset: 2}, `unexpected character "&"`},
		{"unterminated string", "x \"abc", ast.Position{Line: 1, Column: 3, Offset: 2}, "unterminated string literal"},
		{"escaped closing quote", `"abc\"`, ast.Position{Line: 1, Column: 1, Offset: 0}, "unterminated string literal"},
		{"line comment", "a // note", ast.Position{Line: 1, Column: 3, Offset: 2}, `unexpected "//": comments are not supported`},
		{"block comment", "\n/* c */", ast.Position{Line: 2, Column: 1, Offset: 1}, `unexpected "/*": comments are not supported`},
		{"non ascii", "x é", ast.Position{Line: 1, Column: 3, Offset: 2}, `unexpected character "é"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			d, ok := AsDiagnostic(err)
			if !ok {
				t.Fatalf("expected *Diagnostic, got %v", err)
			}
			if d.Kind != KindLexical {
				t.Errorf("expected lexical diagnostic, got %s", d.Kind)
			}
			if d.Pos != tt.wantPos {
				t.Errorf("expected position %+v, got %+v", tt.wantPos, d.Pos)
			}
			if d.Message != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, d.Message)
			}
			if len(d.Expected) != 0 {
				t.Errorf("lexical diagnostics carry no expected set, got %v", d.Expected)
			}
		})
	}
}

func TestLexer_ErrorFound(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"x \"abc", "quote character"},
		{"a @ b", `"@"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			d, ok := AsDiagnostic(err)
			if !ok {
				t.Fatalf("expected *Diagnostic, got %v", err)
			}
			if d.Found != tt.want {
				t.Errorf("expected found %q, got %q", tt.want, d.Found)
			}
		})
	}
}

func TestLexer_AllAndReset(t *testing.T) {
	lx := NewLexer("a b c")

	var first []string
	for tok, err := range lx.All() {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		first = append(first, tok.Value)
		if len(first) == 2 {
			break
		}
	}
	if diff := cmp.Diff([]string{"a", "b"}, first); diff != "" {
		t.Errorf("early stop mismatch (-want +got):\n%s", diff)
	}

	// A second range starts over
	count := 0
	for range lx.All() {
		count++
	}
	if count != 4 {
		t.Errorf("expected 4 tokens including EOF, got %d", count)
	}

	lx.NextToken()
	lx.NextToken()
	lx.Reset()
	if tok := lx.NextToken(); tok.Value != "a" || tok.Pos.Offset != 0 {
		t.Errorf("expected first token after Reset, got %s at %s", tok, tok.Pos)
	}
}

func TestLexer_EOFIsSticky(t *testing.T) {
	lx := NewLexer("  ")
	for i := 0; i < 3; i++ {
		if tok := lx.NextToken(); tok.Type != TokenEOF {
			t.Fatalf("call %d: expected EOF, got %s", i, tok)
		}
	}
}

func BenchmarkLexer(b *testing.B) {
	src := sampleSource
	b.SetBytes(int64(len(src)))
	for i := 0; i < b.N; i++ {
		lx := NewLexer(src)
		for lx.NextToken().Type != TokenEOF {
		}
	}
}
