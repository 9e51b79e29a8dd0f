// File: stmt.go
// Title: Polytope Statement and Restriction Nodes
// Description: Defines the statements of solution blocks and function bodies
//              and the restrictions of satisfies blocks.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.1.0: Initial statement and restriction nodes

package ast

// AssignStmt is Target Op Value; Target is an *Identifier or *IndexExpr
// and Op one of = += -= *= /= %=
type AssignStmt struct {
	Target Expr
	Op     string
	Value  Expr
	Loc    Span
}

// IfStmt is if (Cond) Then [else Else]. A body given as a single
// statement becomes a one element slice.
type IfStmt struct {
	Cond    Expr
	Then    []Stmt
	Else    []Stmt
	HasElse bool
	Loc     Span
}

// ForStmt is for (Lower <= Var <= Upper) Body
type ForStmt struct {
	Lower Expr
	Var   *Identifier
	Upper Expr
	Body  []Stmt
	Loc   Span
}

// WhileStmt is while (Cond) Body
type WhileStmt struct {
	Cond Expr
	Body []Stmt
	Loc  Span
}

// PrintStmt is print(X);
type PrintStmt struct {
	X   Expr
	Loc Span
}

// VarDecl is var Name: Type [= Value];  Value is nil when absent.
type VarDecl struct {
	Name  *Identifier
	Type  Type
	Value Expr
	Loc   Span
}

// FunctionDecl is def Name(params) { Body }. There is no return type.
type FunctionDecl struct {
	Name   *Identifier
	Params []*Param
	Body   []Stmt
	Loc    Span
}

// ContinueStmt is continue;
type ContinueStmt struct {
	Loc Span
}

// BreakStmt is break;
type BreakStmt struct {
	Loc Span
}

// ExprStmt is an expression followed by ;
type ExprStmt struct {
	X   Expr
	Loc Span
}

func (n *AssignStmt) Span() Span   { return n.Loc }
func (n *IfStmt) Span() Span       { return n.Loc }
func (n *ForStmt) Span() Span      { return n.Loc }
func (n *WhileStmt) Span() Span    { return n.Loc }
func (n *PrintStmt) Span() Span    { return n.Loc }
func (n *VarDecl) Span() Span      { return n.Loc }
func (n *FunctionDecl) Span() Span { return n.Loc }
func (n *ContinueStmt) Span() Span { return n.Loc }
func (n *BreakStmt) Span() Span    { return n.Loc }
func (n *ExprStmt) Span() Span     { return n.Loc }

func (n *AssignStmt) String() string   { return SExpr(n) }
func (n *IfStmt) String() string       { return SExpr(n) }
func (n *ForStmt) String() string      { return SExpr(n) }
func (n *WhileStmt) String() string    { return SExpr(n) }
func (n *PrintStmt) String() string    { return SExpr(n) }
func (n *VarDecl) String() string      { return SExpr(n) }
func (n *FunctionDecl) String() string { return SExpr(n) }
func (n *ContinueStmt) String() string { return SExpr(n) }
func (n *BreakStmt) String() string    { return SExpr(n) }
func (n *ExprStmt) String() string     { return SExpr(n) }

func (n *AssignStmt) Accept(v Visitor) interface{}   { return v.VisitAssignStmt(n) }
func (n *IfStmt) Accept(v Visitor) interface{}       { return v.VisitIfStmt(n) }
func (n *ForStmt) Accept(v Visitor) interface{}      { return v.VisitForStmt(n) }
func (n *WhileStmt) Accept(v Visitor) interface{}    { return v.VisitWhileStmt(n) }
func (n *PrintStmt) Accept(v Visitor) interface{}    { return v.VisitPrintStmt(n) }
func (n *VarDecl) Accept(v Visitor) interface{}      { return v.VisitVarDecl(n) }
func (n *FunctionDecl) Accept(v Visitor) interface{} { return v.VisitFunctionDecl(n) }
func (n *ContinueStmt) Accept(v Visitor) interface{} { return v.VisitContinueStmt(n) }
func (n *BreakStmt) Accept(v Visitor) interface{}    { return v.VisitBreakStmt(n) }
func (n *ExprStmt) Accept(v Visitor) interface{}     { return v.VisitExprStmt(n) }

func (*AssignStmt) stmtNode()   {}
func (*IfStmt) stmtNode()       {}
func (*ForStmt) stmtNode()      {}
func (*WhileStmt) stmtNode()    {}
func (*PrintStmt) stmtNode()    {}
func (*VarDecl) stmtNode()      {}
func (*FunctionDecl) stmtNode() {}
func (*ContinueStmt) stmtNode() {}
func (*BreakStmt) stmtNode()    {}
func (*ExprStmt) stmtNode()     {}

// SortOrder is the optional order argument of sorted(...)
type SortOrder int

const (
	SortUnspecified SortOrder = iota
	SortAsc
	SortDesc
	SortNondecreasing
	SortNonincreasing
)

// String returns the keyword of the order, or "" when unspecified
func (o SortOrder) String() string {
	switch o {
	case SortAsc:
		return "asc"
	case SortDesc:
		return "desc"
	case SortNondecreasing:
		return "nondecreasing"
	case SortNonincreasing:
		return "nonincreasing"
	default:
		return ""
	}
}

// ExprRestriction is a predicate expression followed by ;
type ExprRestriction struct {
	X   Expr
	Loc Span
}

// DistinctRestriction is distinct(Target);
type DistinctRestriction struct {
	Target *Identifier
	Loc    Span
}

// SortedRestriction is sorted(Target[, Order]);
type SortedRestriction struct {
	Target *Identifier
	Order  SortOrder
	Loc    Span
}

// InRangeRestriction is in_range(Target, Lower, Upper); Target is an
// *Identifier or *IndexExpr
type InRangeRestriction struct {
	Target Expr
	Lower  Expr
	Upper  Expr
	Loc    Span
}

// ForallRestriction is forall Lower <= Var <= Upper | Predicate;
type ForallRestriction struct {
	Lower     Expr
	Var       *Identifier
	Upper     Expr
	Predicate Expr
	Loc       Span
}

func (n *ExprRestriction) Span() Span     { return n.Loc }
func (n *DistinctRestriction) Span() Span { return n.Loc }
func (n *SortedRestriction) Span() Span   { return n.Loc }
func (n *InRangeRestriction) Span() Span  { return n.Loc }
func (n *ForallRestriction) Span() Span   { return n.Loc }

func (n *ExprRestriction) String() string     { return SExpr(n) }
func (n *DistinctRestriction) String() string { return SExpr(n) }
func (n *SortedRestriction) String() string   { return SExpr(n) }
func (n *InRangeRestriction) String() string  { return SExpr(n) }
func (n *ForallRestriction) String() string   { return SExpr(n) }

func (n *ExprRestriction) Accept(v Visitor) interface{}     { return v.VisitExprRestriction(n) }
func (n *DistinctRestriction) Accept(v Visitor) interface{} { return v.VisitDistinctRestriction(n) }
func (n *SortedRestriction) Accept(v Visitor) interface{}   { return v.VisitSortedRestriction(n) }
func (n *InRangeRestriction) Accept(v Visitor) interface{}  { return v.VisitInRangeRestriction(n) }
func (n *ForallRestriction) Accept(v Visitor) interface{}   { return v.VisitForallRestriction(n) }

func (*ExprRestriction) restrictionNode()     {}
func (*DistinctRestriction) restrictionNode() {}
func (*SortedRestriction) restrictionNode()   {}
func (*InRangeRestriction) restrictionNode()  {}
func (*ForallRestriction) restrictionNode()   {}
