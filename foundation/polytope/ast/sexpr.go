// File: sexpr.go
// Title: S-Expression Printer
// Description: Implements SExprVisitor, which renders a tree as a compact or
//              indented S-expression. Binary and unary nodes print their
//              operator as the head so that grouping is explicit:
//              1+2*3 prints as (+ 1 (* 2 3)).
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.1.0: Initial S-expression printer

package ast

import (
	"strconv"
	"strings"
)

// SExpr returns the single-line S-expression of n
func SExpr(n Node) string {
	if n == nil || isNilNode(n) {
		return "()"
	}
	v := NewSExprVisitor(false)
	n.Accept(v)
	return v.String()
}

// Pretty returns an indented S-expression of n. Sections, declarations,
// statements and restrictions start on their own line; types and
// expressions stay inline.
func Pretty(n Node) string {
	if n == nil || isNilNode(n) {
		return "()"
	}
	v := NewSExprVisitor(true)
	n.Accept(v)
	return v.String()
}

// SExprVisitor builds an S-expression while visiting
type SExprVisitor struct {
	buffer strings.Builder
	indent bool
	depth  int
}

// NewSExprVisitor creates a printer; indent selects the multi-line layout
func NewSExprVisitor(indent bool) *SExprVisitor {
	return &SExprVisitor{indent: indent}
}

// String returns the text written so far
func (p *SExprVisitor) String() string {
	return p.buffer.String()
}

// Reset clears the internal buffer
func (p *SExprVisitor) Reset() {
	p.buffer.Reset()
	p.depth = 0
}

func (p *SExprVisitor) open(head string) {
	p.buffer.WriteByte('(')
	p.buffer.WriteString(head)
	p.depth++
}

func (p *SExprVisitor) close() {
	p.depth--
	p.buffer.WriteByte(')')
}

func (p *SExprVisitor) atom(s string) {
	p.buffer.WriteByte(' ')
	p.buffer.WriteString(s)
}

func (p *SExprVisitor) node(n Node) {
	p.sep(isBlock(n))
	if n == nil || isNilNode(n) {
		p.buffer.WriteString("()")
		return
	}
	n.Accept(p)
}

// sep writes the separator before a child: a newline and indentation for
// block children in indented mode, a space otherwise
func (p *SExprVisitor) sep(block bool) {
	if p.indent && block {
		p.buffer.WriteByte('\n')
		p.buffer.WriteString(strings.Repeat("  ", p.depth))
		return
	}
	p.buffer.WriteByte(' ')
}

func (p *SExprVisitor) stmts(head string, body []Stmt) {
	p.sep(len(body) > 0)
	p.open(head)
	for _, s := range body {
		p.node(s)
	}
	p.close()
}

// isBlock reports whether n is printed on its own line in indented mode
func isBlock(n Node) bool {
	switch n.(type) {
	case *InputSection, *OutputSection, *SolutionSection, *IOTarget, *Param:
		return true
	case Stmt, Restriction:
		return true
	}
	return false
}

func (p *SExprVisitor) VisitProgram(n *Program) interface{} {
	p.open("program")
	p.node(n.Input)
	p.node(n.Output)
	p.node(n.Solution)
	p.close()
	return nil
}

func (p *SExprVisitor) VisitInputSection(n *InputSection) interface{} {
	p.open("input")
	for _, t := range n.Targets {
		p.node(t)
	}
	if n.HasSatisfies || len(n.Restrictions) > 0 {
		p.sep(true)
		p.open("satisfies")
		for _, r := range n.Restrictions {
			p.node(r)
		}
		p.close()
	}
	p.close()
	return nil
}

func (p *SExprVisitor) VisitOutputSection(n *OutputSection) interface{} {
	p.open("output")
	for _, t := range n.Targets {
		p.node(t)
	}
	p.close()
	return nil
}

func (p *SExprVisitor) VisitSolutionSection(n *SolutionSection) interface{} {
	p.open("solution")
	for _, s := range n.Body {
		p.node(s)
	}
	p.close()
	return nil
}

func (p *SExprVisitor) VisitIOTarget(n *IOTarget) interface{} {
	p.open("target")
	p.node(n.Name)
	p.node(n.Type)
	p.close()
	return nil
}

func (p *SExprVisitor) VisitParam(n *Param) interface{} {
	p.open("param")
	p.node(n.Name)
	p.node(n.Type)
	p.close()
	return nil
}

func (p *SExprVisitor) VisitAtomicType(n *AtomicType) interface{} {
	p.open(n.Kind.String())
	p.close()
	return nil
}

func (p *SExprVisitor) VisitArrayType(n *ArrayType) interface{} {
	p.open("array")
	p.node(n.Elem)
	p.node(n.Size)
	p.close()
	return nil
}

func (p *SExprVisitor) VisitVectorType(n *VectorType) interface{} {
	p.open("vector")
	p.node(n.Elem)
	p.node(n.Size)
	p.close()
	return nil
}

func (p *SExprVisitor) VisitAssignStmt(n *AssignStmt) interface{} {
	p.open("assign")
	p.atom(n.Op)
	p.node(n.Target)
	p.node(n.Value)
	p.close()
	return nil
}

func (p *SExprVisitor) VisitIfStmt(n *IfStmt) interface{} {
	p.open("if")
	p.node(n.Cond)
	p.stmts("then", n.Then)
	if n.HasElse {
		p.stmts("else", n.Else)
	}
	p.close()
	return nil
}

func (p *SExprVisitor) VisitForStmt(n *ForStmt) interface{} {
	p.open("for")
	p.node(n.Lower)
	p.node(n.Var)
	p.node(n.Upper)
	p.stmts("body", n.Body)
	p.close()
	return nil
}

func (p *SExprVisitor) VisitWhileStmt(n *WhileStmt) interface{} {
	p.open("while")
	p.node(n.Cond)
	p.stmts("body", n.Body)
	p.close()
	return nil
}

func (p *SExprVisitor) VisitPrintStmt(n *PrintStmt) interface{} {
	p.open("print")
	p.node(n.X)
	p.close()
	return nil
}

func (p *SExprVisitor) VisitVarDecl(n *VarDecl) interface{} {
	p.open("var")
	p.node(n.Name)
	p.node(n.Type)
	if n.Value != nil {
		p.node(n.Value)
	}
	p.close()
	return nil
}

func (p *SExprVisitor) VisitFunctionDecl(n *FunctionDecl) interface{} {
	p.open("def")
	p.node(n.Name)
	p.buffer.WriteByte(' ')
	p.open("params")
	for _, param := range n.Params {
		p.node(param)
	}
	p.close()
	p.stmts("body", n.Body)
	p.close()
	return nil
}

func (p *SExprVisitor) VisitContinueStmt(n *ContinueStmt) interface{} {
	p.open("continue")
	p.close()
	return nil
}

func (p *SExprVisitor) VisitBreakStmt(n *BreakStmt) interface{} {
	p.open("break")
	p.close()
	return nil
}

func (p *SExprVisitor) VisitExprStmt(n *ExprStmt) interface{} {
	p.open("expr")
	p.node(n.X)
	p.close()
	return nil
}

func (p *SExprVisitor) VisitExprRestriction(n *ExprRestriction) interface{} {
	p.open("check")
	p.node(n.X)
	p.close()
	return nil
}

func (p *SExprVisitor) VisitDistinctRestriction(n *DistinctRestriction) interface{} {
	p.open("distinct")
	p.node(n.Target)
	p.close()
	return nil
}

func (p *SExprVisitor) VisitSortedRestriction(n *SortedRestriction) interface{} {
	p.open("sorted")
	p.node(n.Target)
	if n.Order != SortUnspecified {
		p.atom(n.Order.String())
	}
	p.close()
	return nil
}

func (p *SExprVisitor) VisitInRangeRestriction(n *InRangeRestriction) interface{} {
	p.open("in_range")
	p.node(n.Target)
	p.node(n.Lower)
	p.node(n.Upper)
	p.close()
	return nil
}

func (p *SExprVisitor) VisitForallRestriction(n *ForallRestriction) interface{} {
	p.open("forall")
	p.node(n.Lower)
	p.node(n.Var)
	p.node(n.Upper)
	p.node(n.Predicate)
	p.close()
	return nil
}

func (p *SExprVisitor) VisitIdentifier(n *Identifier) interface{} {
	p.buffer.WriteString(n.Name)
	return nil
}

func (p *SExprVisitor) VisitIntLiteral(n *IntLiteral) interface{} {
	if n.Raw != "" {
		p.buffer.WriteString(n.Raw)
	} else {
		p.buffer.WriteString(strconv.FormatInt(n.Value, 10))
	}
	return nil
}

func (p *SExprVisitor) VisitStringLiteral(n *StringLiteral) interface{} {
	p.buffer.WriteByte('"')
	p.buffer.WriteString(n.Raw)
	p.buffer.WriteByte('"')
	return nil
}

func (p *SExprVisitor) VisitBoolLiteral(n *BoolLiteral) interface{} {
	p.buffer.WriteString(strconv.FormatBool(n.Value))
	return nil
}

func (p *SExprVisitor) VisitParenExpr(n *ParenExpr) interface{} {
	p.open("paren")
	p.node(n.X)
	p.close()
	return nil
}

func (p *SExprVisitor) VisitCallExpr(n *CallExpr) interface{} {
	p.open("call")
	p.node(n.Callee)
	for _, a := range n.Args {
		p.node(a)
	}
	p.close()
	return nil
}

func (p *SExprVisitor) VisitIndexExpr(n *IndexExpr) interface{} {
	p.open("index")
	p.node(n.Array)
	p.node(n.Index)
	p.close()
	return nil
}

func (p *SExprVisitor) VisitUnaryExpr(n *UnaryExpr) interface{} {
	p.open(n.Op)
	p.node(n.X)
	p.close()
	return nil
}

func (p *SExprVisitor) VisitBinaryExpr(n *BinaryExpr) interface{} {
	p.open(n.Op)
	p.node(n.Left)
	p.node(n.Right)
	p.close()
	return nil
}
