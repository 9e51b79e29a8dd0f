// File: lexer.go
// Title: Polytope Lexical Analyzer
// Description: Converts Polytope source text into a stream of tokens on
//              demand. Whitespace separates tokens and is otherwise
//              ignored; operators use longest match.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.1.0: Initial lexer implementation

package parser

import (
	"iter"
	"unicode/utf8"

	"github.com/msto63/polytope/foundation/polytope/ast"
)

// Lexer performs lexical analysis of Polytope source
type Lexer struct {
	input    string
	position int  // current position in input (points to current char)
	readPos  int  // current reading position in input (after current char)
	ch       byte // current char under examination
	line     int  // current line number
	column   int  // current column number
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.Reset()
	return l
}

// Reset rewinds the lexer to the start of its input
func (l *Lexer) Reset() {
	l.position = 0
	l.readPos = 0
	l.ch = 0
	l.line = 1
	l.column = 0
	l.readChar()
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	l.readPos++
	l.column++
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) pos() ast.Position {
	return ast.Position{Line: l.line, Column: l.column, Offset: l.position}
}

// NextToken returns the next token. Once the input is exhausted every
// call returns TokenEOF. Characters that start no token come back as a
// single TokenIllegal.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	start := l.pos()
	if l.atEOF() {
		return Token{Type: TokenEOF, Pos: start, End: start}
	}

	switch {
	case isLetter(l.ch):
		word := l.readIdentifier()
		return Token{Type: lookupIdent(word), Value: word, Pos: start, End: l.pos()}
	case isDigit(l.ch):
		num := l.readNumber()
		return Token{Type: TokenInt, Value: num, Pos: start, End: l.pos()}
	case l.ch == '"':
		return l.readString(start)
	}

	if tt, width := l.matchOperator(); width > 0 {
		text := l.input[l.position : l.position+width]
		for i := 0; i < width; i++ {
			l.readChar()
		}
		return Token{Type: tt, Value: text, Pos: start, End: l.pos()}
	}

	// Take the whole UTF-8 sequence so the offending character is reported intact
	_, size := utf8.DecodeRuneInString(l.input[l.position:])
	if size < 1 {
		size = 1
	}
	if l.ch == '/' {
		size = 2 // "//" or "/*"
	}
	text := l.input[l.position : l.position+size]
	for i := 0; i < size; i++ {
		l.readChar()
	}
	return Token{Type: TokenIllegal, Value: text, Pos: start, End: l.pos()}
}

// matchOperator returns the longest operator or delimiter at the current
// position. A width of zero means no operator starts here.
func (l *Lexer) matchOperator() (TokenType, int) {
	next := l.peekChar()
	switch l.ch {
	case '{':
		return TokenLeftBrace, 1
	case '}':
		return TokenRightBrace, 1
	case '(':
		return TokenLeftParen, 1
	case ')':
		return TokenRightParen, 1
	case '[':
		return TokenLeftBracket, 1
	case ']':
		return TokenRightBracket, 1
	case ',':
		return TokenComma, 1
	case ':':
		return TokenColon, 1
	case ';':
		return TokenSemicolon, 1
	case '~':
		return TokenTilde, 1
	case '|':
		if next == '|' {
			return TokenOr, 2
		}
		return TokenPipe, 1
	case '&':
		if next == '&' {
			return TokenAnd, 2
		}
	case '=':
		if next == '=' {
			return TokenEqual, 2
		}
		return TokenAssign, 1
	case '!':
		if next == '=' {
			return TokenNotEqual, 2
		}
		return TokenBang, 1
	case '<':
		if next == '=' {
			return TokenLessEqual, 2
		}
		return TokenLess, 1
	case '>':
		if next == '=' {
			return TokenGreaterEqual, 2
		}
		return TokenGreater, 1
	case '+':
		if next == '=' {
			return TokenAddAssign, 2
		}
		return TokenPlus, 1
	case '-':
		if next == '=' {
			return TokenSubAssign, 2
		}
		return TokenMinus, 1
	case '*':
		if next == '=' {
			return TokenMulAssign, 2
		}
		return TokenStar, 1
	case '/':
		switch next {
		case '=':
			return TokenDivAssign, 2
		case '/', '*':
			// Comments are not part of the language
			return TokenIllegal, 0
		}
		return TokenSlash, 1
	case '%':
		if next == '=' {
			return TokenModAssign, 2
		}
		return TokenPercent, 1
	}
	return TokenIllegal, 0
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for !l.atEOF() && isSpace(l.ch) {
		l.readChar()
	}
}

// readIdentifier reads an identifier or keyword
func (l *Lexer) readIdentifier() string {
	start := l.position
	for !l.atEOF() && (isLetter(l.ch) || isDigit(l.ch)) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads a run of decimal digits
func (l *Lexer) readNumber() string {
	start := l.position
	for !l.atEOF() && isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readString reads a double-quoted string. The escapes \" and \\ are
// kept verbatim in the token value. An unterminated string yields an
// illegal token located at the opening quote.
func (l *Lexer) readString(start ast.Position) Token {
	l.readChar() // opening quote
	begin := l.position
	for {
		if l.atEOF() {
			return Token{Type: TokenIllegal, Value: `"`, Pos: start, End: ast.Position{Line: start.Line, Column: start.Column + 1, Offset: start.Offset + 1}}
		}
		if l.ch == '\\' && (l.peekChar() == '"' || l.peekChar() == '\\') {
			l.readChar()
			l.readChar()
			continue
		}
		if l.ch == '"' {
			break
		}
		l.readChar()
	}
	value := l.input[begin:l.position]
	l.readChar() // closing quote
	return Token{Type: TokenString, Value: value, Pos: start, End: l.pos()}
}

// All returns an iterator over the tokens of the lexer's input, ending
// with TokenEOF. Iteration stops after the first lexical error, which is
// yielded together with the illegal token. Each range starts from the
// beginning of the input.
func (l *Lexer) All() iter.Seq2[Token, error] {
	input := l.input
	return func(yield func(Token, error) bool) {
		lx := NewLexer(input)
		for {
			tok := lx.NextToken()
			if tok.Type == TokenIllegal {
				yield(tok, lexicalError(tok))
				return
			}
			if !yield(tok, nil) || tok.Type == TokenEOF {
				return
			}
		}
	}
}

// Tokenize lexes the whole input. The returned slice ends with TokenEOF.
// On a lexical error the tokens read so far are returned with a
// *Diagnostic of kind Lexical.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token
	for tok, err := range NewLexer(input).All() {
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}
