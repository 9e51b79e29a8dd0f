// File: program.go
// Title: Polytope Program Parsing
// Description: Parses the program skeleton: the input section with its
//              optional satisfies block, the output section and the
//              solution section, in this order.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.1.0: Initial program parser

package parser

import "github.com/msto63/polytope/foundation/polytope/ast"

// parseProgram parses input {...} [satisfies {...}] output {...} solution {...}
func (s *state) parseProgram() (*ast.Program, error) {
	start := s.current.Pos

	input, err := s.parseInput()
	if err != nil {
		return nil, err
	}
	output, err := s.parseOutput()
	if err != nil {
		return nil, err
	}
	solution, err := s.parseSolution()
	if err != nil {
		return nil, err
	}
	if err := s.expectEOF(); err != nil {
		return nil, err
	}

	return &ast.Program{
		Input:    input,
		Output:   output,
		Solution: solution,
		Loc:      s.spanFrom(start),
	}, nil
}

func (s *state) parseInput() (*ast.InputSection, error) {
	tok, err := s.expectKeyword("input")
	if err != nil {
		return nil, err
	}
	targets, err := s.parseTargetBlock()
	if err != nil {
		return nil, err
	}
	section := &ast.InputSection{Targets: targets}

	switch {
	case s.checkKeyword("satisfies"):
		s.advance()
		section.HasSatisfies = true
		if section.Restrictions, err = s.parseRestrictionBlock(); err != nil {
			return nil, err
		}
	case !s.checkKeyword("output"):
		return nil, s.unexpected(`"satisfies"`, `"output"`)
	}

	section.Loc = s.spanFrom(tok.Pos)
	return section, nil
}

func (s *state) parseOutput() (*ast.OutputSection, error) {
	tok, err := s.expectKeyword("output")
	if err != nil {
		return nil, err
	}
	targets, err := s.parseTargetBlock()
	if err != nil {
		return nil, err
	}
	return &ast.OutputSection{Targets: targets, Loc: s.spanFrom(tok.Pos)}, nil
}

func (s *state) parseSolution() (*ast.SolutionSection, error) {
	tok, err := s.expectKeyword("solution")
	if err != nil {
		return nil, err
	}
	body, err := s.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.SolutionSection{Body: body, Loc: s.spanFrom(tok.Pos)}, nil
}

// parseTargetBlock parses { lines } where each line is one or more
// comma-separated targets ending in ;
func (s *state) parseTargetBlock() ([]*ast.IOTarget, error) {
	if _, err := s.expect(TokenLeftBrace); err != nil {
		return nil, err
	}

	var targets []*ast.IOTarget
	for !s.check(TokenRightBrace) {
		if !s.check(TokenIdentifier) {
			return nil, s.unexpected("identifier", `"}"`)
		}
		for {
			target, err := s.parseTarget()
			if err != nil {
				return nil, err
			}
			targets = append(targets, target)
			if !s.check(TokenComma) {
				break
			}
			s.advance()
		}
		if !s.check(TokenSemicolon) {
			return nil, s.unexpected(`"["`, `","`, `";"`)
		}
		s.advance()
	}
	s.advance()
	return targets, nil
}

// parseTarget parses id: type
func (s *state) parseTarget() (*ast.IOTarget, error) {
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
	return &ast.IOTarget{Name: name, Type: t, Loc: s.spanFrom(name.Loc.Start)}, nil
}

// parseRestrictionBlock parses { restrictions }
func (s *state) parseRestrictionBlock() ([]ast.Restriction, error) {
	if _, err := s.expect(TokenLeftBrace); err != nil {
		return nil, err
	}
	var list []ast.Restriction
	for !s.check(TokenRightBrace) {
		r, err := s.parseRestriction(`"}"`)
		if err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	s.advance()
	return list, nil
}
