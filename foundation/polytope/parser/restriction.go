// File: restriction.go
// Title: Polytope Restriction Parsing
// Description: Parses the restrictions of a satisfies block: distinct,
//              sorted, in_range, forall and plain predicate expressions.
//              Every restriction ends with a semicolon.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.1.0: Initial restriction parser

package parser

import "github.com/msto63/polytope/foundation/polytope/ast"

var restrictionKeywords = []string{`"distinct"`, `"sorted"`, `"in_range"`, `"forall"`}

var sortOrders = map[string]ast.SortOrder{
	"asc":           ast.SortAsc,
	"desc":          ast.SortDesc,
	"nondecreasing": ast.SortNondecreasing,
	"nonincreasing": ast.SortNonincreasing,
}

func restrictionExpected(end string) []string {
	out := make([]string, 0, len(restrictionKeywords)+len(exprStart)+1)
	out = append(out, restrictionKeywords...)
	out = append(out, exprStart...)
	return append(out, end)
}

// parseRestriction parses one restriction. end names the token that may
// appear instead, for the expected set of a diagnostic.
func (s *state) parseRestriction(end string) (ast.Restriction, error) {
	if err := s.enter(); err != nil {
		return nil, err
	}
	defer s.leave()

	if s.current.Type == TokenKeyword {
		switch s.current.Value {
		case "distinct":
			return s.parseDistinct()
		case "sorted":
			return s.parseSorted()
		case "in_range":
			return s.parseInRange()
		case "forall":
			return s.parseForall()
		}
	}
	if !startsExpr(s.current) {
		return nil, s.unexpected(restrictionExpected(end)...)
	}

	start := s.current.Pos
	x, err := s.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	return &ast.ExprRestriction{X: x, Loc: s.spanFrom(start)}, nil
}

// finish consumes the closing ");" of a call-shaped restriction
func (s *state) finish() error {
	if _, err := s.expect(TokenRightParen); err != nil {
		return err
	}
	_, err := s.expect(TokenSemicolon)
	return err
}

// parseDistinct parses distinct(id);
func (s *state) parseDistinct() (ast.Restriction, error) {
	start := s.current.Pos
	s.advance() // consume 'distinct'

	if _, err := s.expect(TokenLeftParen); err != nil {
		return nil, err
	}
	target, err := s.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := s.finish(); err != nil {
		return nil, err
	}
	return &ast.DistinctRestriction{Target: target, Loc: s.spanFrom(start)}, nil
}

// parseSorted parses sorted(id[, order]);
func (s *state) parseSorted() (ast.Restriction, error) {
	start := s.current.Pos
	s.advance() // consume 'sorted'

	if _, err := s.expect(TokenLeftParen); err != nil {
		return nil, err
	}
	target, err := s.expectIdent()
	if err != nil {
		return nil, err
	}

	r := &ast.SortedRestriction{Target: target}
	switch {
	case s.check(TokenComma):
		s.advance()
		order, ok := sortOrders[s.current.Value]
		if s.current.Type != TokenKeyword || !ok {
			return nil, s.unexpected(`"asc"`, `"desc"`, `"nondecreasing"`, `"nonincreasing"`)
		}
		r.Order = order
		s.advance()
	case !s.check(TokenRightParen):
		return nil, s.unexpected(`","`, `")"`)
	}
	if err := s.finish(); err != nil {
		return nil, err
	}
	r.Loc = s.spanFrom(start)
	return r, nil
}

// parseInRange parses in_range(target, lb, ub); target is an identifier
// or an indexed identifier
func (s *state) parseInRange() (ast.Restriction, error) {
	start := s.current.Pos
	s.advance() // consume 'in_range'

	if _, err := s.expect(TokenLeftParen); err != nil {
		return nil, err
	}
	id, err := s.expectIdent()
	if err != nil {
		return nil, err
	}
	var target ast.Expr = id
	if s.check(TokenLeftBracket) {
		if target, err = s.parseIndex(id); err != nil {
			return nil, err
		}
	}
	if !s.check(TokenComma) {
		expected := []string{`","`}
		if _, indexed := target.(*ast.IndexExpr); !indexed {
			expected = append([]string{`"["`}, expected...)
		}
		return nil, s.unexpected(expected...)
	}
	s.advance()

	lower, err := s.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenComma); err != nil {
		return nil, err
	}
	upper, err := s.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := s.finish(); err != nil {
		return nil, err
	}
	return &ast.InRangeRestriction{Target: target, Lower: lower, Upper: upper, Loc: s.spanFrom(start)}, nil
}

// parseForall parses forall lb <= id <= ub | pred;
func (s *state) parseForall() (ast.Restriction, error) {
	start := s.current.Pos
	s.advance() // consume 'forall'

	lower, v, upper, err := s.parseRange()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenPipe); err != nil {
		return nil, err
	}
	pred, err := s.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	return &ast.ForallRestriction{Lower: lower, Var: v, Upper: upper, Predicate: pred, Loc: s.spanFrom(start)}, nil
}
