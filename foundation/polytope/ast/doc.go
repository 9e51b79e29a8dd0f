// Package ast defines the syntax tree of the Polytope judge language.
//
// Package: ast
// Title: Polytope Abstract Syntax Tree
// Description: Node types for programs, sections, declarations, types,
//              statements, restrictions and expressions. Every node records
//              the source span it was parsed from and is never modified after
//              construction. Traversal is available through Accept/Visitor,
//              Children and Inspect; SExpr, Pretty and ToMap render trees.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.1.0: Initial implementation
//
// Node families are closed: Expr, Stmt, Restriction and Type each carry an
// unexported marker method so only this package can add variants.
//
// Usage:
//   prog, err := polytope.Parse(src)
//   ...
//   fmt.Println(ast.SExpr(prog.Solution))
//
//   ast.Inspect(prog, func(n ast.Node) bool {
//     if call, ok := n.(*ast.CallExpr); ok {
//       fmt.Println(call.Callee.Name)
//     }
//     return true
//   })
package ast
