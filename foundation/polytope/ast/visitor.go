// File: visitor.go
// Title: Polytope AST Visitor Pattern Implementation
// Description: Defines the Visitor interface dispatched by Node.Accept and the
//              generic traversal helpers Children and Inspect.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.1.0: Initial visitor and traversal helpers

package ast

// Visitor has one method per concrete node type
type Visitor interface {
	// Program structure
	VisitProgram(n *Program) interface{}
	VisitInputSection(n *InputSection) interface{}
	VisitOutputSection(n *OutputSection) interface{}
	VisitSolutionSection(n *SolutionSection) interface{}
	VisitIOTarget(n *IOTarget) interface{}
	VisitParam(n *Param) interface{}

	// Types
	VisitAtomicType(n *AtomicType) interface{}
	VisitArrayType(n *ArrayType) interface{}
	VisitVectorType(n *VectorType) interface{}

	// Statements
	VisitAssignStmt(n *AssignStmt) interface{}
	VisitIfStmt(n *IfStmt) interface{}
	VisitForStmt(n *ForStmt) interface{}
	VisitWhileStmt(n *WhileStmt) interface{}
	VisitPrintStmt(n *PrintStmt) interface{}
	VisitVarDecl(n *VarDecl) interface{}
	VisitFunctionDecl(n *FunctionDecl) interface{}
	VisitContinueStmt(n *ContinueStmt) interface{}
	VisitBreakStmt(n *BreakStmt) interface{}
	VisitExprStmt(n *ExprStmt) interface{}

	// Restrictions
	VisitExprRestriction(n *ExprRestriction) interface{}
	VisitDistinctRestriction(n *DistinctRestriction) interface{}
	VisitSortedRestriction(n *SortedRestriction) interface{}
	VisitInRangeRestriction(n *InRangeRestriction) interface{}
	VisitForallRestriction(n *ForallRestriction) interface{}

	// Expressions
	VisitIdentifier(n *Identifier) interface{}
	VisitIntLiteral(n *IntLiteral) interface{}
	VisitStringLiteral(n *StringLiteral) interface{}
	VisitBoolLiteral(n *BoolLiteral) interface{}
	VisitParenExpr(n *ParenExpr) interface{}
	VisitCallExpr(n *CallExpr) interface{}
	VisitIndexExpr(n *IndexExpr) interface{}
	VisitUnaryExpr(n *UnaryExpr) interface{}
	VisitBinaryExpr(n *BinaryExpr) interface{}
}

// Children returns the direct children of n in source order. Nil
// optional children (a missing initializer, for example) are skipped.
func Children(n Node) []Node {
	var out []Node
	add := func(nodes ...Node) {
		for _, c := range nodes {
			if c != nil && !isNilNode(c) {
				out = append(out, c)
			}
		}
	}

	switch n := n.(type) {
	case *Program:
		add(n.Input, n.Output, n.Solution)
	case *InputSection:
		for _, t := range n.Targets {
			add(t)
		}
		for _, r := range n.Restrictions {
			add(r)
		}
	case *OutputSection:
		for _, t := range n.Targets {
			add(t)
		}
	case *SolutionSection:
		addStmts(add, n.Body)
	case *IOTarget:
		add(n.Name, n.Type)
	case *Param:
		add(n.Name, n.Type)

	case *ArrayType:
		add(n.Elem, n.Size)
	case *VectorType:
		add(n.Elem, n.Size)

	case *AssignStmt:
		add(n.Target, n.Value)
	case *IfStmt:
		add(n.Cond)
		addStmts(add, n.Then)
		addStmts(add, n.Else)
	case *ForStmt:
		add(n.Lower, n.Var, n.Upper)
		addStmts(add, n.Body)
	case *WhileStmt:
		add(n.Cond)
		addStmts(add, n.Body)
	case *PrintStmt:
		add(n.X)
	case *VarDecl:
		add(n.Name, n.Type, n.Value)
	case *FunctionDecl:
		add(n.Name)
		for _, p := range n.Params {
			add(p)
		}
		addStmts(add, n.Body)
	case *ExprStmt:
		add(n.X)

	case *ExprRestriction:
		add(n.X)
	case *DistinctRestriction:
		add(n.Target)
	case *SortedRestriction:
		add(n.Target)
	case *InRangeRestriction:
		add(n.Target, n.Lower, n.Upper)
	case *ForallRestriction:
		add(n.Lower, n.Var, n.Upper, n.Predicate)

	case *ParenExpr:
		add(n.X)
	case *CallExpr:
		add(n.Callee)
		for _, a := range n.Args {
			add(a)
		}
	case *IndexExpr:
		add(n.Array, n.Index)
	case *UnaryExpr:
		add(n.X)
	case *BinaryExpr:
		add(n.Left, n.Right)
	}
	return out
}

func addStmts(add func(...Node), stmts []Stmt) {
	for _, s := range stmts {
		add(s)
	}
}

// isNilNode catches typed nil pointers stored in an interface
func isNilNode(n Node) bool {
	switch v := n.(type) {
	case *InputSection:
		return v == nil
	case *OutputSection:
		return v == nil
	case *SolutionSection:
		return v == nil
	case *Identifier:
		return v == nil
	case *IntLiteral:
		return v == nil
	}
	return false
}

// Inspect traverses the tree rooted at n depth-first, calling f for each
// node. If f returns false the children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || isNilNode(n) || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}

// Count returns the number of nodes in the tree rooted at n
func Count(n Node) int {
	total := 0
	Inspect(n, func(Node) bool {
		total++
		return true
	})
	return total
}
