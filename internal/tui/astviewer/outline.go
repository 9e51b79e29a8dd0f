// ============================================================================
// Polytope - Problem description language toolkit
// ============================================================================
//
// Package:     astviewer
// Description: Flattens a syntax tree into foldable outline rows
// Author:      msto63
// Created:     2025-10-18
// License:     MIT
// ============================================================================

package astviewer

import (
	"fmt"
	"strconv"

	"github.com/msto63/polytope/foundation/polytope/ast"
)

// Row is one line of the outline view
type Row struct {
	Depth       int
	Kind        string
	Label       string
	Span        ast.Span
	HasChildren bool
}

// Outline returns the rows of n in pre-order. A row's descendants are the
// rows that follow it with a greater depth.
func Outline(n ast.Node) []Row {
	var rows []Row
	var walk func(n ast.Node, depth int)
	walk = func(n ast.Node, depth int) {
		children := ast.Children(n)
		rows = append(rows, Row{
			Depth:       depth,
			Kind:        ast.TypeName(n),
			Label:       label(n),
			Span:        n.Span(),
			HasChildren: len(children) > 0,
		})
		for _, c := range children {
			walk(c, depth+1)
		}
	}
	if n != nil {
		walk(n, 0)
	}
	return rows
}

// label returns the short detail printed after the node kind
func label(n ast.Node) string {
	switch n := n.(type) {
	case *ast.InputSection:
		return fmt.Sprintf("%d targets, %d restrictions", len(n.Targets), len(n.Restrictions))
	case *ast.OutputSection:
		return fmt.Sprintf("%d targets", len(n.Targets))
	case *ast.SolutionSection:
		return fmt.Sprintf("%d statements", len(n.Body))
	case *ast.IOTarget:
		return n.Name.Name
	case *ast.Param:
		return n.Name.Name
	case *ast.AtomicType:
		return n.Kind.String()
	case *ast.ArrayType, *ast.VectorType:
		return n.String()
	case *ast.VarDecl:
		return n.Name.Name
	case *ast.FunctionDecl:
		return fmt.Sprintf("%s/%d", n.Name.Name, len(n.Params))
	case *ast.ForStmt:
		return n.Var.Name
	case *ast.ForallRestriction:
		return n.Var.Name
	case *ast.AssignStmt:
		return n.Op
	case *ast.SortedRestriction:
		if n.Order != ast.SortUnspecified {
			return n.Order.String()
		}
	case *ast.BinaryExpr:
		return n.Op
	case *ast.UnaryExpr:
		return n.Op
	case *ast.CallExpr:
		return n.Callee.Name
	case *ast.Identifier:
		return n.Name
	case *ast.IntLiteral:
		if n.Raw != "" {
			return n.Raw
		}
		return strconv.FormatInt(n.Value, 10)
	case *ast.StringLiteral:
		return `"` + n.Raw + `"`
	case *ast.BoolLiteral:
		return strconv.FormatBool(n.Value)
	}
	return ""
}

// visibleRows returns the indexes of rows not hidden inside a collapsed
// ancestor
func visibleRows(rows []Row, collapsed map[int]bool) []int {
	visible := make([]int, 0, len(rows))
	hideBelow := -1
	for i, r := range rows {
		if hideBelow >= 0 {
			if r.Depth > hideBelow {
				continue
			}
			hideBelow = -1
		}
		visible = append(visible, i)
		if collapsed[i] && r.HasChildren {
			hideBelow = r.Depth
		}
	}
	return visible
}
