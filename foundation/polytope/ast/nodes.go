// File: nodes.go
// Title: Polytope AST Node Definitions
// Description: Defines the program skeleton, sections, declarations and type
//              nodes of the Polytope AST together with the node interfaces
//              and source positions shared by every node.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.1.0: Initial AST node definitions

package ast

import "fmt"

// Node represents the base interface for all AST nodes
type Node interface {
	// Span returns the source range the node was parsed from
	Span() Span

	// String returns the S-expression form of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}
}

// Expr is an expression node
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement of a solution block or function body
type Stmt interface {
	Node
	stmtNode()
}

// Restriction is a statement of a satisfies block
type Restriction interface {
	Node
	restrictionNode()
}

// Type is a type expression of a declaration
type Type interface {
	Node
	typeNode()
}

// Position represents a position in the source text
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number in bytes (1-based)
	Offset int // Byte offset (0-based)
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position was set
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Span is a half-open source range [Start, End)
type Span struct {
	Start Position
	End   Position
}

// Len returns the byte length of the span
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// Contains reports whether offset lies inside the span
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

// Program is the root node: exactly one input, output and solution
// section, in this order
type Program struct {
	Input    *InputSection
	Output   *OutputSection
	Solution *SolutionSection
	Loc      Span
}

// InputSection holds the input declarations and, when a satisfies block
// follows, its restrictions
type InputSection struct {
	Targets      []*IOTarget
	Restrictions []Restriction
	HasSatisfies bool // a satisfies block was present, possibly empty
	Loc          Span
}

// OutputSection holds the output declarations
type OutputSection struct {
	Targets []*IOTarget
	Loc     Span
}

// SolutionSection holds the statements of the solution block
type SolutionSection struct {
	Body []Stmt
	Loc  Span
}

// IOTarget declares one input or output variable
type IOTarget struct {
	Name *Identifier
	Type Type
	Loc  Span
}

// Param is one parameter of a function declaration
type Param struct {
	Name *Identifier
	Type Type
	Loc  Span
}

// AtomicKind enumerates the atomic types
type AtomicKind int

const (
	KindInt AtomicKind = iota
	KindString
	KindBool
)

// String returns the keyword of the kind
func (k AtomicKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// AtomicType is int, string or bool
type AtomicType struct {
	Kind AtomicKind
	Loc  Span
}

// ArrayType is a collection whose size is an integer literal: T[array:N]
type ArrayType struct {
	Elem Type
	Size *IntLiteral
	Loc  Span
}

// VectorType is a collection whose size is an arbitrary expression: T[expr]
type VectorType struct {
	Elem Type
	Size Expr
	Loc  Span
}

func (n *Program) Span() Span         { return n.Loc }
func (n *InputSection) Span() Span    { return n.Loc }
func (n *OutputSection) Span() Span   { return n.Loc }
func (n *SolutionSection) Span() Span { return n.Loc }
func (n *IOTarget) Span() Span        { return n.Loc }
func (n *Param) Span() Span           { return n.Loc }
func (n *AtomicType) Span() Span      { return n.Loc }
func (n *ArrayType) Span() Span       { return n.Loc }
func (n *VectorType) Span() Span      { return n.Loc }

func (n *Program) String() string         { return SExpr(n) }
func (n *InputSection) String() string    { return SExpr(n) }
func (n *OutputSection) String() string   { return SExpr(n) }
func (n *SolutionSection) String() string { return SExpr(n) }
func (n *IOTarget) String() string        { return SExpr(n) }
func (n *Param) String() string           { return SExpr(n) }
func (n *AtomicType) String() string      { return SExpr(n) }
func (n *ArrayType) String() string       { return SExpr(n) }
func (n *VectorType) String() string      { return SExpr(n) }

func (n *Program) Accept(v Visitor) interface{}         { return v.VisitProgram(n) }
func (n *InputSection) Accept(v Visitor) interface{}    { return v.VisitInputSection(n) }
func (n *OutputSection) Accept(v Visitor) interface{}   { return v.VisitOutputSection(n) }
func (n *SolutionSection) Accept(v Visitor) interface{} { return v.VisitSolutionSection(n) }
func (n *IOTarget) Accept(v Visitor) interface{}        { return v.VisitIOTarget(n) }
func (n *Param) Accept(v Visitor) interface{}           { return v.VisitParam(n) }
func (n *AtomicType) Accept(v Visitor) interface{}      { return v.VisitAtomicType(n) }
func (n *ArrayType) Accept(v Visitor) interface{}       { return v.VisitArrayType(n) }
func (n *VectorType) Accept(v Visitor) interface{}      { return v.VisitVectorType(n) }

func (*AtomicType) typeNode() {}
func (*ArrayType) typeNode()  {}
func (*VectorType) typeNode() {}
