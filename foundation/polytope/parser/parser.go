// File: parser.go
// Title: Polytope Recursive Descent Parser
// Description: Implements the parsing phase of Polytope processing. Pulls
//              tokens from the lexer on demand and builds the AST with
//              recursive descent for statements and precedence climbing
//              for expressions. Parsing stops at the first error.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"

	mdwerror "github.com/msto63/polytope/foundation/core/error"
	mdwlog "github.com/msto63/polytope/foundation/core/log"
	"github.com/msto63/polytope/foundation/polytope/ast"
)

const (
	// DefaultMaxInputLength is the default source size limit in bytes
	DefaultMaxInputLength = 1 << 20
	// DefaultMaxDepth is the default limit on syntactic nesting
	DefaultMaxDepth = 512
)

// Parser parses Polytope source. It holds configuration only, so one
// Parser may be used from several goroutines at once.
type Parser struct {
	logger  *mdwlog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger         *mdwlog.Logger
	MaxInputLength int // bytes; 0 selects DefaultMaxInputLength
	MaxDepth       int // nesting levels; 0 selects DefaultMaxDepth
}

// New creates a new Polytope parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.MaxInputLength < 0 {
		return nil, mdwerror.Newf("max input length must not be negative: %d", opts.MaxInputLength).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("parser.New")
	}
	if opts.MaxDepth < 0 {
		return nil, mdwerror.Newf("max depth must not be negative: %d", opts.MaxDepth).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("parser.New")
	}

	// Set defaults
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "polytope-parser"),
		options: opts,
	}, nil
}

// Options returns the effective options
func (p *Parser) Options() Options {
	return p.options
}

// Parse parses a complete Polytope program. On failure the error is a
// *Diagnostic.
func (p *Parser) Parse(source string) (*ast.Program, error) {
	p.logger.Debug("Starting Polytope parsing", mdwlog.Fields{
		"length": len(source),
	})

	s, err := p.begin(source)
	if err != nil {
		return nil, p.fail(err)
	}

	prog, err := s.parseProgram()
	if err != nil {
		return nil, p.fail(err)
	}

	p.logger.Debug("Polytope parsing completed successfully", mdwlog.Fields{
		"inputs":       len(prog.Input.Targets),
		"restrictions": len(prog.Input.Restrictions),
		"outputs":      len(prog.Output.Targets),
		"statements":   len(prog.Solution.Body),
	})
	return prog, nil
}

// ParseExpression parses source as a single expression
func (p *Parser) ParseExpression(source string) (ast.Expr, error) {
	s, err := p.begin(source)
	if err != nil {
		return nil, p.fail(err)
	}
	x, err := s.parseExpr()
	if err == nil {
		err = s.expectEOF()
	}
	if err != nil {
		return nil, p.fail(err)
	}
	return x, nil
}

// ParseType parses source as a single type expression
func (p *Parser) ParseType(source string) (ast.Type, error) {
	s, err := p.begin(source)
	if err != nil {
		return nil, p.fail(err)
	}
	t, err := s.parseType()
	if err == nil {
		err = s.expectEOF()
	}
	if err != nil {
		return nil, p.fail(err)
	}
	return t, nil
}

// ParseStatements parses source as a sequence of solution statements
func (p *Parser) ParseStatements(source string) ([]ast.Stmt, error) {
	s, err := p.begin(source)
	if err != nil {
		return nil, p.fail(err)
	}
	var list []ast.Stmt
	for s.current.Type != TokenEOF {
		stmt, err := s.parseStatement(TokenEOF.Display())
		if err != nil {
			return nil, p.fail(err)
		}
		list = append(list, stmt)
	}
	return list, nil
}

// ParseRestrictions parses source as the contents of a satisfies block
func (p *Parser) ParseRestrictions(source string) ([]ast.Restriction, error) {
	s, err := p.begin(source)
	if err != nil {
		return nil, p.fail(err)
	}
	var list []ast.Restriction
	for s.current.Type != TokenEOF {
		r, err := s.parseRestriction(TokenEOF.Display())
		if err != nil {
			return nil, p.fail(err)
		}
		list = append(list, r)
	}
	return list, nil
}

// begin checks the input size and primes a fresh parse state
func (p *Parser) begin(source string) (*state, error) {
	if len(source) > p.options.MaxInputLength {
		return nil, &Diagnostic{
			Kind:    KindSyntax,
			Pos:     ast.Position{Line: 1, Column: 1},
			Message: fmt.Sprintf("input exceeds maximum length: %d > %d", len(source), p.options.MaxInputLength),
			code:    mdwerror.CodeInputTooLarge,
		}
	}
	s := &state{
		lexer:    NewLexer(source),
		maxDepth: p.options.MaxDepth,
	}
	s.advance() // Load first token
	return s, nil
}

func (p *Parser) fail(err error) error {
	fields := mdwlog.Fields{"error": err.Error()}
	if d, ok := AsDiagnostic(err); ok {
		fields["kind"] = d.Kind.String()
		fields["line"] = d.Pos.Line
		fields["column"] = d.Pos.Column
		fields["error_code"] = string(d.Code())
	}
	p.logger.Warn("Polytope parsing failed", fields)
	return err
}

// state is the mutable part of a single parse
type state struct {
	lexer    *Lexer
	current  Token // Current token
	previous Token // Previous token
	depth    int
	maxDepth int
}

// advance moves to the next token
func (s *state) advance() {
	s.previous = s.current
	s.current = s.lexer.NextToken()
}

// check reports whether the current token has type tt
func (s *state) check(tt TokenType) bool {
	return s.current.Type == tt
}

// checkKeyword reports whether the current token is keyword kw
func (s *state) checkKeyword(kw string) bool {
	return s.current.Is(kw)
}

// expect consumes a token of type tt or fails
func (s *state) expect(tt TokenType) (Token, error) {
	if !s.check(tt) {
		return Token{}, s.unexpected(tt.Display())
	}
	tok := s.current
	s.advance()
	return tok, nil
}

// expectKeyword consumes keyword kw or fails
func (s *state) expectKeyword(kw string) (Token, error) {
	if !s.checkKeyword(kw) {
		return Token{}, s.unexpected(quote(kw))
	}
	tok := s.current
	s.advance()
	return tok, nil
}

// expectIdent consumes an identifier. Keywords are rejected.
func (s *state) expectIdent() (*ast.Identifier, error) {
	tok, err := s.expect(TokenIdentifier)
	if err != nil {
		return nil, err
	}
	return &ast.Identifier{Name: tok.Value, Loc: tok.Span()}, nil
}

func (s *state) expectEOF() error {
	if !s.check(TokenEOF) {
		return s.unexpected(TokenEOF.Display())
	}
	return nil
}

// unexpected reports the current token as the point of failure. An
// illegal token always yields a lexical diagnostic.
func (s *state) unexpected(expected ...string) error {
	if s.current.Type == TokenIllegal {
		return lexicalError(s.current)
	}
	d := syntaxError(s.current, expected)
	if s.current.Type == TokenLeftBracket && s.previous.Type == TokenRightBracket {
		d.Hint = "only a plain identifier can be indexed, so a[i][j] is not allowed"
	}
	return d
}

// errorAt reports a syntax error with a custom message at tok
func (s *state) errorAt(tok Token, code mdwerror.Code, format string, args ...interface{}) error {
	return &Diagnostic{
		Kind:    KindSyntax,
		Pos:     tok.Pos,
		Message: fmt.Sprintf(format, args...),
		Found:   tok.Describe(),
		code:    code,
	}
}

// enter increments the nesting depth; every enter is paired with leave
func (s *state) enter() error {
	s.depth++
	if s.depth > s.maxDepth {
		return s.errorAt(s.current, mdwerror.CodeNestingTooDeep,
			"nesting exceeds maximum depth of %d", s.maxDepth)
	}
	return nil
}

func (s *state) leave() {
	s.depth--
}

// spanFrom returns the span from start to the end of the last consumed token
func (s *state) spanFrom(start ast.Position) ast.Span {
	return ast.Span{Start: start, End: s.previous.End}
}
