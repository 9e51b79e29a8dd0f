// File: stmt.go
// Title: Polytope Statement Parsing
// Description: Parses the statements of solution blocks and function
//              bodies. Keywords select the statement form; anything else
//              is an expression statement or an assignment.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.1.0: Initial statement parser

package parser

import (
	mdwerror "github.com/msto63/polytope/foundation/core/error"
	"github.com/msto63/polytope/foundation/polytope/ast"
)

var stmtKeywords = []string{
	`"if"`, `"for"`, `"while"`, `"print"`, `"var"`, `"def"`, `"continue"`, `"break"`,
}

var assignOps = []string{`"="`, `"+="`, `"-="`, `"*="`, `"/="`, `"%="`}

// stmtExpected returns what may appear where a statement or the token
// end is allowed
func stmtExpected(end string) []string {
	out := make([]string, 0, len(stmtKeywords)+len(exprStart)+1)
	out = append(out, stmtKeywords...)
	out = append(out, exprStart...)
	return append(out, end)
}

func startsExpr(tok Token) bool {
	switch tok.Type {
	case TokenLeftParen, TokenIdentifier, TokenInt, TokenString:
		return true
	case TokenKeyword:
		return tok.Value == "true" || tok.Value == "false"
	}
	return isPrefixOperator(tok.Type)
}

func isAssignOperator(tt TokenType) bool {
	switch tt {
	case TokenAssign, TokenAddAssign, TokenSubAssign, TokenMulAssign, TokenDivAssign, TokenModAssign:
		return true
	}
	return false
}

func isAssignable(x ast.Expr) bool {
	switch x.(type) {
	case *ast.Identifier, *ast.IndexExpr:
		return true
	}
	return false
}

// parseStatement parses one statement. end names the token that may
// appear instead, for the expected set of a diagnostic.
func (s *state) parseStatement(end string) (ast.Stmt, error) {
	if err := s.enter(); err != nil {
		return nil, err
	}
	defer s.leave()

	if s.current.Type == TokenKeyword {
		switch s.current.Value {
		case "if":
			return s.parseIf()
		case "for":
			return s.parseFor()
		case "while":
			return s.parseWhile()
		case "print":
			return s.parsePrint()
		case "var":
			return s.parseVarDecl()
		case "def":
			return s.parseFunctionDecl()
		case "continue", "break":
			return s.parseLoopControl()
		}
	}
	if !startsExpr(s.current) {
		return nil, s.unexpected(stmtExpected(end)...)
	}
	return s.parseSimpleStatement()
}

// parseSimpleStatement parses an assignment or an expression statement
func (s *state) parseSimpleStatement() (ast.Stmt, error) {
	start := s.current.Pos
	x, err := s.parseExpr()
	if err != nil {
		return nil, err
	}

	if isAssignOperator(s.current.Type) {
		if !isAssignable(x) {
			return nil, s.errorAt(s.current, mdwerror.CodeSyntax,
				"cannot assign to %s: the target must be an identifier or an indexed identifier", x)
		}
		op := s.current
		s.advance()
		value, err := s.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := s.expect(TokenSemicolon); err != nil {
			return nil, err
		}
		return &ast.AssignStmt{Target: x, Op: op.Value, Value: value, Loc: s.spanFrom(start)}, nil
	}

	if !s.check(TokenSemicolon) {
		expected := []string{`";"`}
		if isAssignable(x) {
			expected = append(expected, assignOps...)
		}
		return nil, s.unexpected(expected...)
	}
	s.advance()
	return &ast.ExprStmt{X: x, Loc: s.spanFrom(start)}, nil
}

// parseBody parses a braced block or a single statement
func (s *state) parseBody() ([]ast.Stmt, error) {
	if !s.check(TokenLeftBrace) {
		stmt, err := s.parseStatement(`"{"`)
		if err != nil {
			return nil, err
		}
		return []ast.Stmt{stmt}, nil
	}
	return s.parseBlock()
}

// parseBlock parses { statements }
func (s *state) parseBlock() ([]ast.Stmt, error) {
	if _, err := s.expect(TokenLeftBrace); err != nil {
		return nil, err
	}
	var list []ast.Stmt
	for !s.check(TokenRightBrace) {
		stmt, err := s.parseStatement(`"}"`)
		if err != nil {
			return nil, err
		}
		list = append(list, stmt)
	}
	s.advance()
	return list, nil
}

// parseCondition parses ( expr )
func (s *state) parseCondition() (ast.Expr, error) {
	if _, err := s.expect(TokenLeftParen); err != nil {
		return nil, err
	}
	cond, err := s.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenRightParen); err != nil {
		return nil, err
	}
	return cond, nil
}

// parseIf parses if (cond) body [else body]; else if chains nest in the
// else branch
func (s *state) parseIf() (ast.Stmt, error) {
	start := s.current.Pos
	s.advance() // consume 'if'

	cond, err := s.parseCondition()
	if err != nil {
		return nil, err
	}
	then, err := s.parseBody()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStmt{Cond: cond, Then: then}
	if s.checkKeyword("else") {
		s.advance()
		stmt.HasElse = true
		if stmt.Else, err = s.parseBody(); err != nil {
			return nil, err
		}
	}
	stmt.Loc = s.spanFrom(start)
	return stmt, nil
}

// parseRange parses lb <= id <= ub. The lower bound stops before the
// first comparison so the <= after it is not taken as an operator.
func (s *state) parseRange() (ast.Expr, *ast.Identifier, ast.Expr, error) {
	lower, err := s.parseBinary(precAdditive)
	if err != nil {
		return nil, nil, nil, err
	}
	if _, err := s.expect(TokenLessEqual); err != nil {
		return nil, nil, nil, err
	}
	v, err := s.expectIdent()
	if err != nil {
		return nil, nil, nil, err
	}
	if _, err := s.expect(TokenLessEqual); err != nil {
		return nil, nil, nil, err
	}
	upper, err := s.parseExpr()
	if err != nil {
		return nil, nil, nil, err
	}
	return lower, v, upper, nil
}

// parseFor parses for (lb <= id <= ub) body
func (s *state) parseFor() (ast.Stmt, error) {
	start := s.current.Pos
	s.advance() // consume 'for'

	if _, err := s.expect(TokenLeftParen); err != nil {
		return nil, err
	}
	lower, v, upper, err := s.parseRange()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenRightParen); err != nil {
		return nil, err
	}
	body, err := s.parseBody()
	if err != nil {
		return nil, err
	}
	return &ast.ForStmt{Lower: lower, Var: v, Upper: upper, Body: body, Loc: s.spanFrom(start)}, nil
}

// parseWhile parses while (cond) body
func (s *state) parseWhile() (ast.Stmt, error) {
	start := s.current.Pos
	s.advance() // consume 'while'

	cond, err := s.parseCondition()
	if err != nil {
		return nil, err
	}
	body, err := s.parseBody()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Cond: cond, Body: body, Loc: s.spanFrom(start)}, nil
}

// parsePrint parses print(expr);
func (s *state) parsePrint() (ast.Stmt, error) {
	start := s.current.Pos
	s.advance() // consume 'print'

	x, err := s.parseCondition()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{X: x, Loc: s.spanFrom(start)}, nil
}

// parseVarDecl parses var id: type [= expr];
func (s *state) parseVarDecl() (ast.Stmt, error) {
	start := s.current.Pos
	s.advance() // consume 'var'

	name, err := s.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenColon); err != nil {
		return nil, err
	}
	t, err := s.parseType()
	if err != nil {
		return nil, err
	}

	decl := &ast.VarDecl{Name: name, Type: t}
	switch {
	case s.check(TokenAssign):
		s.advance()
		if decl.Value, err = s.parseExpr(); err != nil {
			return nil, err
		}
		if _, err := s.expect(TokenSemicolon); err != nil {
			return nil, err
		}
	case s.check(TokenSemicolon):
		s.advance()
	default:
		return nil, s.unexpected(`"["`, `"="`, `";"`)
	}
	decl.Loc = s.spanFrom(start)
	return decl, nil
}

// parseFunctionDecl parses def id(params) { body }
func (s *state) parseFunctionDecl() (ast.Stmt, error) {
	start := s.current.Pos
	s.advance() // consume 'def'

	name, err := s.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenLeftParen); err != nil {
		return nil, err
	}

	var params []*ast.Param
	if !s.check(TokenRightParen) {
		for {
			param, err := s.parseParam()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !s.check(TokenComma) {
				break
			}
			s.advance()
		}
	}
	if !s.check(TokenRightParen) {
		return nil, s.unexpected(`"["`, `","`, `")"`)
	}
	s.advance()

	body, err := s.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDecl{Name: name, Params: params, Body: body, Loc: s.spanFrom(start)}, nil
}

// parseParam parses id: type
func (s *state) parseParam() (*ast.Param, error) {
	name, err := s.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenColon); err != nil {
		return nil, err
	}
	t, err := s.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.Param{Name: name, Type: t, Loc: s.spanFrom(name.Loc.Start)}, nil
}

// parseLoopControl parses continue; and break;
func (s *state) parseLoopControl() (ast.Stmt, error) {
	tok := s.current
	s.advance()
	if _, err := s.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	if tok.Value == "continue" {
		return &ast.ContinueStmt{Loc: s.spanFrom(tok.Pos)}, nil
	}
	return &ast.BreakStmt{Loc: s.spanFrom(tok.Pos)}, nil
}
