// File: export.go
// Title: AST Map Export
// Description: Implements ToMap, which converts a tree into nested maps and
//              slices suitable for JSON or YAML encoding. Every node map has
//              a "type" key holding the snake_case node name and a "span"
//              key; field keys are snake_case as well.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.1.0: Initial map export

package ast

import (
	"fmt"
	"strings"

	mdwstringx "github.com/msto63/polytope/foundation/utils/stringx"
)

// ExportOptions controls ToMapWithOptions
type ExportOptions struct {
	// OmitSpans drops the "span" key from every node
	OmitSpans bool
}

// ToMap converts n and its subtree into generic maps
func ToMap(n Node) map[string]interface{} {
	return ToMapWithOptions(n, ExportOptions{})
}

// ToMapWithOptions converts n with the given options
func ToMapWithOptions(n Node, opts ExportOptions) map[string]interface{} {
	if n == nil || isNilNode(n) {
		return nil
	}
	v := &mapVisitor{opts: opts}
	m, _ := n.Accept(v).(map[string]interface{})
	return m
}

// TypeName returns the snake_case name of a node type: *ForStmt -> for_stmt
func TypeName(n Node) string {
	name := fmt.Sprintf("%T", n)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return mdwstringx.ToSnakeCase(name)
}

type mapVisitor struct {
	opts ExportOptions
}

func (v *mapVisitor) node(n Node, fields map[string]interface{}) map[string]interface{} {
	fields["type"] = TypeName(n)
	if !v.opts.OmitSpans {
		s := n.Span()
		fields["span"] = map[string]interface{}{
			"start": positionMap(s.Start),
			"end":   positionMap(s.End),
		}
	}
	return fields
}

func positionMap(p Position) map[string]interface{} {
	return map[string]interface{}{
		"line":   p.Line,
		"column": p.Column,
		"offset": p.Offset,
	}
}

func (v *mapVisitor) one(n Node) interface{} {
	if n == nil || isNilNode(n) {
		return nil
	}
	return n.Accept(v)
}

func (v *mapVisitor) stmts(list []Stmt) []interface{} {
	out := make([]interface{}, 0, len(list))
	for _, s := range list {
		out = append(out, v.one(s))
	}
	return out
}

func (v *mapVisitor) exprs(list []Expr) []interface{} {
	out := make([]interface{}, 0, len(list))
	for _, e := range list {
		out = append(out, v.one(e))
	}
	return out
}

func (v *mapVisitor) targets(list []*IOTarget) []interface{} {
	out := make([]interface{}, 0, len(list))
	for _, t := range list {
		out = append(out, v.one(t))
	}
	return out
}

func (v *mapVisitor) VisitProgram(n *Program) interface{} {
	return v.node(n, map[string]interface{}{
		"input":    v.one(n.Input),
		"output":   v.one(n.Output),
		"solution": v.one(n.Solution),
	})
}

func (v *mapVisitor) VisitInputSection(n *InputSection) interface{} {
	restrictions := make([]interface{}, 0, len(n.Restrictions))
	for _, r := range n.Restrictions {
		restrictions = append(restrictions, v.one(r))
	}
	return v.node(n, map[string]interface{}{
		"targets":       v.targets(n.Targets),
		"restrictions":  restrictions,
		"has_satisfies": n.HasSatisfies,
	})
}

func (v *mapVisitor) VisitOutputSection(n *OutputSection) interface{} {
	return v.node(n, map[string]interface{}{
		"targets": v.targets(n.Targets),
	})
}

func (v *mapVisitor) VisitSolutionSection(n *SolutionSection) interface{} {
	return v.node(n, map[string]interface{}{
		"body": v.stmts(n.Body),
	})
}

func (v *mapVisitor) VisitIOTarget(n *IOTarget) interface{} {
	return v.node(n, map[string]interface{}{
		"name":      v.one(n.Name),
		"data_type": v.one(n.Type),
	})
}

func (v *mapVisitor) VisitParam(n *Param) interface{} {
	return v.node(n, map[string]interface{}{
		"name":      v.one(n.Name),
		"data_type": v.one(n.Type),
	})
}

func (v *mapVisitor) VisitAtomicType(n *AtomicType) interface{} {
	return v.node(n, map[string]interface{}{
		"kind": n.Kind.String(),
	})
}

func (v *mapVisitor) VisitArrayType(n *ArrayType) interface{} {
	return v.node(n, map[string]interface{}{
		"elem": v.one(n.Elem),
		"size": v.one(n.Size),
	})
}

func (v *mapVisitor) VisitVectorType(n *VectorType) interface{} {
	return v.node(n, map[string]interface{}{
		"elem": v.one(n.Elem),
		"size": v.one(n.Size),
	})
}

func (v *mapVisitor) VisitAssignStmt(n *AssignStmt) interface{} {
	return v.node(n, map[string]interface{}{
		"target": v.one(n.Target),
		"op":     n.Op,
		"value":  v.one(n.Value),
	})
}

func (v *mapVisitor) VisitIfStmt(n *IfStmt) interface{} {
	fields := map[string]interface{}{
		"cond": v.one(n.Cond),
		"then": v.stmts(n.Then),
	}
	if n.HasElse {
		fields["else"] = v.stmts(n.Else)
	}
	return v.node(n, fields)
}

func (v *mapVisitor) VisitForStmt(n *ForStmt) interface{} {
	return v.node(n, map[string]interface{}{
		"lower": v.one(n.Lower),
		"var":   v.one(n.Var),
		"upper": v.one(n.Upper),
		"body":  v.stmts(n.Body),
	})
}

func (v *mapVisitor) VisitWhileStmt(n *WhileStmt) interface{} {
	return v.node(n, map[string]interface{}{
		"cond": v.one(n.Cond),
		"body": v.stmts(n.Body),
	})
}

func (v *mapVisitor) VisitPrintStmt(n *PrintStmt) interface{} {
	return v.node(n, map[string]interface{}{
		"expr": v.one(n.X),
	})
}

func (v *mapVisitor) VisitVarDecl(n *VarDecl) interface{} {
	fields := map[string]interface{}{
		"name":      v.one(n.Name),
		"data_type": v.one(n.Type),
	}
	if n.Value != nil {
		fields["value"] = v.one(n.Value)
	}
	return v.node(n, fields)
}

func (v *mapVisitor) VisitFunctionDecl(n *FunctionDecl) interface{} {
	params := make([]interface{}, 0, len(n.Params))
	for _, p := range n.Params {
		params = append(params, v.one(p))
	}
	return v.node(n, map[string]interface{}{
		"name":   v.one(n.Name),
		"params": params,
		"body":   v.stmts(n.Body),
	})
}

func (v *mapVisitor) VisitContinueStmt(n *ContinueStmt) interface{} {
	return v.node(n, map[string]interface{}{})
}

func (v *mapVisitor) VisitBreakStmt(n *BreakStmt) interface{} {
	return v.node(n, map[string]interface{}{})
}

func (v *mapVisitor) VisitExprStmt(n *ExprStmt) interface{} {
	return v.node(n, map[string]interface{}{
		"expr": v.one(n.X),
	})
}

func (v *mapVisitor) VisitExprRestriction(n *ExprRestriction) interface{} {
	return v.node(n, map[string]interface{}{
		"expr": v.one(n.X),
	})
}

func (v *mapVisitor) VisitDistinctRestriction(n *DistinctRestriction) interface{} {
	return v.node(n, map[string]interface{}{
		"target": v.one(n.Target),
	})
}

func (v *mapVisitor) VisitSortedRestriction(n *SortedRestriction) interface{} {
	fields := map[string]interface{}{
		"target": v.one(n.Target),
	}
	if n.Order != SortUnspecified {
		fields["order"] = n.Order.String()
	}
	return v.node(n, fields)
}

func (v *mapVisitor) VisitInRangeRestriction(n *InRangeRestriction) interface{} {
	return v.node(n, map[string]interface{}{
		"target": v.one(n.Target),
		"lower":  v.one(n.Lower),
		"upper":  v.one(n.Upper),
	})
}

func (v *mapVisitor) VisitForallRestriction(n *ForallRestriction) interface{} {
	return v.node(n, map[string]interface{}{
		"lower":     v.one(n.Lower),
		"var":       v.one(n.Var),
		"upper":     v.one(n.Upper),
		"predicate": v.one(n.Predicate),
	})
}

func (v *mapVisitor) VisitIdentifier(n *Identifier) interface{} {
	return v.node(n, map[string]interface{}{
		"name": n.Name,
	})
}

func (v *mapVisitor) VisitIntLiteral(n *IntLiteral) interface{} {
	return v.node(n, map[string]interface{}{
		"raw":   n.Raw,
		"value": n.Value,
	})
}

func (v *mapVisitor) VisitStringLiteral(n *StringLiteral) interface{} {
	return v.node(n, map[string]interface{}{
		"raw": n.Raw,
	})
}

func (v *mapVisitor) VisitBoolLiteral(n *BoolLiteral) interface{} {
	return v.node(n, map[string]interface{}{
		"value": n.Value,
	})
}

func (v *mapVisitor) VisitParenExpr(n *ParenExpr) interface{} {
	return v.node(n, map[string]interface{}{
		"expr": v.one(n.X),
	})
}

func (v *mapVisitor) VisitCallExpr(n *CallExpr) interface{} {
	return v.node(n, map[string]interface{}{
		"callee": v.one(n.Callee),
		"args":   v.exprs(n.Args),
	})
}

func (v *mapVisitor) VisitIndexExpr(n *IndexExpr) interface{} {
	return v.node(n, map[string]interface{}{
		"array": v.one(n.Array),
		"index": v.one(n.Index),
	})
}

func (v *mapVisitor) VisitUnaryExpr(n *UnaryExpr) interface{} {
	return v.node(n, map[string]interface{}{
		"op":      n.Op,
		"operand": v.one(n.X),
	})
}

func (v *mapVisitor) VisitBinaryExpr(n *BinaryExpr) interface{} {
	return v.node(n, map[string]interface{}{
		"op":    n.Op,
		"left":  v.one(n.Left),
		"right": v.one(n.Right),
	})
}
