// File: expr.go
// Title: Polytope Expression Parsing
// Description: Parses expressions with precedence climbing. All binary
//              operators are left-associative; prefix operators bind
//              tighter than any binary operator.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.1.0: Initial expression parser

package parser

import (
	"strconv"

	mdwerror "github.com/msto63/polytope/foundation/core/error"
	"github.com/msto63/polytope/foundation/polytope/ast"
)

// Binding powers
const (
	precLowest   = 1 // && ||
	precCompare  = 2 // == != < <= > >=
	precAdditive = 3 // + -
	precMultiply = 4 // * / %
	precUnary    = 5 // prefix + - ! ~
)

// exprStart lists the tokens an expression can begin with
var exprStart = []string{
	`"("`, `"+"`, `"-"`, `"!"`, `"~"`,
	"identifier", "integer literal", "string literal", `"true"`, `"false"`,
}

// binaryPrecedence returns the binding power of a binary operator, or 0
func binaryPrecedence(tt TokenType) int {
	switch tt {
	case TokenAnd, TokenOr:
		return precLowest
	case TokenEqual, TokenNotEqual, TokenLess, TokenLessEqual, TokenGreater, TokenGreaterEqual:
		return precCompare
	case TokenPlus, TokenMinus:
		return precAdditive
	case TokenStar, TokenSlash, TokenPercent:
		return precMultiply
	default:
		return 0
	}
}

func isPrefixOperator(tt TokenType) bool {
	return tt == TokenPlus || tt == TokenMinus || tt == TokenBang || tt == TokenTilde
}

// parseExpr parses a full expression
func (s *state) parseExpr() (ast.Expr, error) {
	return s.parseBinary(precLowest)
}

// parseBinary parses an expression whose binary operators all bind at
// least as tightly as minPrec
func (s *state) parseBinary(minPrec int) (ast.Expr, error) {
	if err := s.enter(); err != nil {
		return nil, err
	}
	defer s.leave()

	left, err := s.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		prec := binaryPrecedence(s.current.Type)
		if prec == 0 || prec < minPrec {
			return left, nil
		}
		op := s.current
		s.advance()

		// prec+1 makes operators of equal power group to the left
		right, err := s.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{
			Op:    op.Value,
			Left:  left,
			Right: right,
			Loc:   ast.Span{Start: left.Span().Start, End: right.Span().End},
		}
	}
}

// parseUnary parses a chain of prefix operators and its operand
func (s *state) parseUnary() (ast.Expr, error) {
	if !isPrefixOperator(s.current.Type) {
		return s.parsePrimary()
	}

	if err := s.enter(); err != nil {
		return nil, err
	}
	defer s.leave()

	op := s.current
	s.advance()
	x, err := s.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpr{Op: op.Value, X: x, Loc: s.spanFrom(op.Pos)}, nil
}

// parsePrimary parses literals, identifiers, calls, index expressions and
// parenthesized expressions
func (s *state) parsePrimary() (ast.Expr, error) {
	tok := s.current
	switch {
	case tok.Type == TokenLeftParen:
		s.advance()
		x, err := s.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := s.expect(TokenRightParen); err != nil {
			return nil, err
		}
		return &ast.ParenExpr{X: x, Loc: s.spanFrom(tok.Pos)}, nil

	case tok.Type == TokenIdentifier:
		s.advance()
		id := &ast.Identifier{Name: tok.Value, Loc: tok.Span()}
		switch s.current.Type {
		case TokenLeftParen:
			return s.parseCall(id)
		case TokenLeftBracket:
			return s.parseIndex(id)
		}
		return id, nil

	case tok.Type == TokenInt:
		lit, err := s.parseIntLiteral()
		if err != nil {
			return nil, err
		}
		return lit, nil

	case tok.Type == TokenString:
		s.advance()
		return &ast.StringLiteral{Raw: tok.Value, Loc: tok.Span()}, nil

	case tok.Is("true"), tok.Is("false"):
		s.advance()
		return &ast.BoolLiteral{Value: tok.Value == "true", Loc: tok.Span()}, nil
	}

	return nil, s.unexpected(exprStart...)
}

// parseIntLiteral converts the current integer token; values outside
// the int64 range are rejected
func (s *state) parseIntLiteral() (*ast.IntLiteral, error) {
	tok, err := s.expect(TokenInt)
	if err != nil {
		return nil, err
	}
	value, convErr := strconv.ParseInt(tok.Value, 10, 64)
	if convErr != nil {
		return nil, s.errorAt(tok, mdwerror.CodeSyntax, "integer literal %s is out of range", tok.Value)
	}
	return &ast.IntLiteral{Raw: tok.Value, Value: value, Loc: tok.Span()}, nil
}

// parseCall parses the argument list after callee
func (s *state) parseCall(callee *ast.Identifier) (ast.Expr, error) {
	s.advance() // consume '('

	var args []ast.Expr
	if !s.check(TokenRightParen) {
		for {
			arg, err := s.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !s.check(TokenComma) {
				break
			}
			s.advance()
		}
	}
	if !s.check(TokenRightParen) {
		return nil, s.unexpected(`","`, `")"`)
	}
	s.advance()

	return &ast.CallExpr{Callee: callee, Args: args, Loc: s.spanFrom(callee.Loc.Start)}, nil
}

// parseIndex parses [index] after a bare identifier
func (s *state) parseIndex(array *ast.Identifier) (ast.Expr, error) {
	s.advance() // consume '['

	index, err := s.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenRightBracket); err != nil {
		return nil, err
	}
	return &ast.IndexExpr{Array: array, Index: index, Loc: s.spanFrom(array.Loc.Start)}, nil
}
