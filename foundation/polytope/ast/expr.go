// File: expr.go
// Title: Polytope Expression Nodes
// Description: Defines literal, identifier, call, index, unary and binary
//              expression nodes.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.1.0: Initial expression nodes

package ast

// Identifier is a name that is not a keyword
type Identifier struct {
	Name string
	Loc  Span
}

// IntLiteral is a decimal integer literal. Raw keeps the source digits.
type IntLiteral struct {
	Raw   string
	Value int64
	Loc   Span
}

// StringLiteral holds the text between the quotes with escapes unresolved
type StringLiteral struct {
	Raw string
	Loc Span
}

// BoolLiteral is true or false
type BoolLiteral struct {
	Value bool
	Loc   Span
}

// ParenExpr is a parenthesized expression; it is kept in the tree
type ParenExpr struct {
	X   Expr
	Loc Span
}

// CallExpr is callee(args...)
type CallExpr struct {
	Callee *Identifier
	Args   []Expr
	Loc    Span
}

// IndexExpr is array[index]; the indexed operand is always a bare identifier
type IndexExpr struct {
	Array *Identifier
	Index Expr
	Loc   Span
}

// UnaryExpr is a prefix operator applied to X: + - ! ~
type UnaryExpr struct {
	Op  string
	X   Expr
	Loc Span
}

// BinaryExpr is Left Op Right
type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
	Loc   Span
}

func (n *Identifier) Span() Span    { return n.Loc }
func (n *IntLiteral) Span() Span    { return n.Loc }
func (n *StringLiteral) Span() Span { return n.Loc }
func (n *BoolLiteral) Span() Span   { return n.Loc }
func (n *ParenExpr) Span() Span     { return n.Loc }
func (n *CallExpr) Span() Span      { return n.Loc }
func (n *IndexExpr) Span() Span     { return n.Loc }
func (n *UnaryExpr) Span() Span     { return n.Loc }
func (n *BinaryExpr) Span() Span    { return n.Loc }

func (n *Identifier) String() string    { return SExpr(n) }
func (n *IntLiteral) String() string    { return SExpr(n) }
func (n *StringLiteral) String() string { return SExpr(n) }
func (n *BoolLiteral) String() string   { return SExpr(n) }
func (n *ParenExpr) String() string     { return SExpr(n) }
func (n *CallExpr) String() string      { return SExpr(n) }
func (n *IndexExpr) String() string     { return SExpr(n) }
func (n *UnaryExpr) String() string     { return SExpr(n) }
func (n *BinaryExpr) String() string    { return SExpr(n) }

func (n *Identifier) Accept(v Visitor) interface{}    { return v.VisitIdentifier(n) }
func (n *IntLiteral) Accept(v Visitor) interface{}    { return v.VisitIntLiteral(n) }
func (n *StringLiteral) Accept(v Visitor) interface{} { return v.VisitStringLiteral(n) }
func (n *BoolLiteral) Accept(v Visitor) interface{}   { return v.VisitBoolLiteral(n) }
func (n *ParenExpr) Accept(v Visitor) interface{}     { return v.VisitParenExpr(n) }
func (n *CallExpr) Accept(v Visitor) interface{}      { return v.VisitCallExpr(n) }
func (n *IndexExpr) Accept(v Visitor) interface{}     { return v.VisitIndexExpr(n) }
func (n *UnaryExpr) Accept(v Visitor) interface{}     { return v.VisitUnaryExpr(n) }
func (n *BinaryExpr) Accept(v Visitor) interface{}    { return v.VisitBinaryExpr(n) }

func (*Identifier) exprNode()    {}
func (*IntLiteral) exprNode()    {}
func (*StringLiteral) exprNode() {}
func (*BoolLiteral) exprNode()   {}
func (*ParenExpr) exprNode()     {}
func (*CallExpr) exprNode()      {}
func (*IndexExpr) exprNode()     {}
func (*UnaryExpr) exprNode()     {}
func (*BinaryExpr) exprNode()    {}
