// File: types.go
// Title: Polytope Type Parsing
// Description: Parses type expressions: an atomic type followed by any
//              number of collection suffixes. A suffix beginning with the
//              array keyword is the fixed-size form and needs an integer
//              literal; every other suffix is the vector form.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.1.0: Initial type parser

package parser

import "github.com/msto63/polytope/foundation/polytope/ast"

var atomicKinds = map[string]ast.AtomicKind{
	"int":    ast.KindInt,
	"string": ast.KindString,
	"bool":   ast.KindBool,
}

// parseType parses T, T[array:N] and T[expr], suffixes nesting outward
func (s *state) parseType() (ast.Type, error) {
	tok := s.current
	kind, ok := atomicKinds[tok.Value]
	if tok.Type != TokenKeyword || !ok {
		return nil, s.unexpected(`"int"`, `"string"`, `"bool"`)
	}
	s.advance()

	var t ast.Type = &ast.AtomicType{Kind: kind, Loc: tok.Span()}
	for s.check(TokenLeftBracket) {
		if err := s.enter(); err != nil {
			return nil, err
		}
		s.advance() // consume '['

		var err error
		if s.checkKeyword("array") {
			t, err = s.parseArraySuffix(t, tok.Pos)
		} else {
			t, err = s.parseVectorSuffix(t, tok.Pos)
		}
		s.leave()
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}

// parseArraySuffix parses array:N] after '['
func (s *state) parseArraySuffix(elem ast.Type, start ast.Position) (ast.Type, error) {
	s.advance() // consume 'array'
	if _, err := s.expect(TokenColon); err != nil {
		return nil, err
	}
	if !s.check(TokenInt) {
		return nil, s.unexpected(TokenInt.Display())
	}
	size, err := s.parseIntLiteral()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenRightBracket); err != nil {
		return nil, err
	}
	return &ast.ArrayType{Elem: elem, Size: size, Loc: s.spanFrom(start)}, nil
}

// parseVectorSuffix parses expr] after '['
func (s *state) parseVectorSuffix(elem ast.Type, start ast.Position) (ast.Type, error) {
	size, err := s.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenRightBracket); err != nil {
		return nil, err
	}
	return &ast.VectorType{Elem: elem, Size: size, Loc: s.spanFrom(start)}, nil
}
