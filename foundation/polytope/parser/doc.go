// Package parser turns Polytope source text into an AST.
//
// Package: parser
// Title: Polytope Lexer and Parser
// Description: Hand-written lexer and recursive descent parser for the
//              Polytope problem description language. Tokens are produced
//              on demand; expressions use precedence climbing with five
//              binding powers. The first lexical or syntax error ends the
//              parse and is returned as a *Diagnostic.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Usage:
//
//	p, err := parser.New(parser.Options{Logger: logger})
//	if err != nil {
//	    return err
//	}
//	prog, err := p.Parse(source)
//	if d, ok := parser.AsDiagnostic(err); ok {
//	    fmt.Print(d.Render(source))
//	}
//
// Operator binding powers, lowest first:
//
//	1  && ||
//	2  == != < <= > >=
//	3  + -
//	4  * / %
//	5  prefix + - ! ~
//
// All binary operators are left-associative.
package parser
