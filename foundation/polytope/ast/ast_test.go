// File: ast_test.go
// Title: Polytope AST Tests
// Description: Tests for S-expression rendering, traversal and map export
//              on hand-built trees.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.1.0: Initial test implementation

package ast

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func id(name string) *Identifier { return &Identifier{Name: name} }

func lit(raw string, v int64) *IntLiteral { return &IntLiteral{Raw: raw, Value: v} }

func intType() *AtomicType { return &AtomicType{Kind: KindInt} }

// sampleProgram mirrors
//
//	input { n: int; a: int[array:5]; } satisfies { in_range(n, 1, 100); sorted(a, asc); }
//	output { r: int; }
//	solution { var sum: int = 0; for (0 <= i <= n) { sum = sum + a[i]; } print(sum); }
func sampleProgram() *Program {
	return &Program{
		Input: &InputSection{
			Targets: []*IOTarget{
				{Name: id("n"), Type: intType()},
				{Name: id("a"), Type: &ArrayType{Elem: intType(), Size: lit("5", 5)}},
			},
			Restrictions: []Restriction{
				&InRangeRestriction{Target: id("n"), Lower: lit("1", 1), Upper: lit("100", 100)},
				&SortedRestriction{Target: id("a"), Order: SortAsc},
			},
			HasSatisfies: true,
		},
		Output: &OutputSection{
			Targets: []*IOTarget{{Name: id("r"), Type: intType()}},
		},
		Solution: &SolutionSection{
			Body: []Stmt{
				&VarDecl{Name: id("sum"), Type: intType(), Value: lit("0", 0)},
				&ForStmt{
					Lower: lit("0", 0),
					Var:   id("i"),
					Upper: id("n"),
					Body: []Stmt{
						&AssignStmt{
							Target: id("sum"),
							Op:     "=",
							Value: &BinaryExpr{
								Op:    "+",
								Left:  id("sum"),
								Right: &IndexExpr{Array: id("a"), Index: id("i")},
							},
						},
					},
				},
				&PrintStmt{X: id("sum")},
			},
		},
	}
}

func TestSExpr(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "precedence grouping",
			node: &BinaryExpr{Op: "+", Left: lit("1", 1), Right: &BinaryExpr{Op: "*", Left: lit("2", 2), Right: lit("3", 3)}},
			want: "(+ 1 (* 2 3))",
		},
		{
			name: "nested unary",
			node: &UnaryExpr{Op: "-", X: &UnaryExpr{Op: "-", X: id("x")}},
			want: "(- (- x))",
		},
		{
			name: "vector type",
			node: &VectorType{Elem: intType(), Size: &BinaryExpr{Op: "+", Left: id("n"), Right: lit("1", 1)}},
			want: "(vector (int) (+ n 1))",
		},
		{
			name: "call with literals",
			node: &CallExpr{Callee: id("f"), Args: []Expr{&StringLiteral{Raw: `a\"b`}, &BoolLiteral{Value: true}, &ParenExpr{X: id("y")}}},
			want: `(call f "a\"b" true (paren y))`,
		},
		{
			name: "if with else",
			node: &IfStmt{Cond: id("c"), Then: []Stmt{&BreakStmt{}}, Else: []Stmt{&ContinueStmt{}}, HasElse: true},
			want: "(if c (then (break)) (else (continue)))",
		},
		{
			name: "function declaration",
			node: &FunctionDecl{
				Name:   id("f"),
				Params: []*Param{{Name: id("x"), Type: &AtomicType{Kind: KindString}}},
				Body:   []Stmt{&ExprStmt{X: &CallExpr{Callee: id("g")}}},
			},
			want: "(def f (params (param x (string))) (body (expr (call g))))",
		},
		{
			name: "restrictions",
			node: &ForallRestriction{Lower: lit("0", 0), Var: id("i"), Upper: id("n"), Predicate: &BinaryExpr{Op: ">", Left: &IndexExpr{Array: id("a"), Index: id("i")}, Right: lit("0", 0)}},
			want: "(forall 0 i n (> (index a i) 0))",
		},
		{
			name: "sorted without order",
			node: &SortedRestriction{Target: id("a")},
			want: "(sorted a)",
		},
		{
			name: "program",
			node: sampleProgram(),
			want: "(program (input (target n (int)) (target a (array (int) 5)) (satisfies (in_range n 1 100) (sorted a asc))) " +
				"(output (target r (int))) " +
				"(solution (var sum (int) 0) (for 0 i n (body (assign = sum (+ sum (index a i))))) (print sum)))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SExpr(tt.node); got != tt.want {
				t.Errorf("SExpr() =\n%s\nwant\n%s", got, tt.want)
			}
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPretty(t *testing.T) {
	got := Pretty(sampleProgram().Solution)
	want := strings.Join([]string{
		"(solution",
		"  (var sum (int) 0)",
		"  (for 0 i n",
		"    (body",
		"      (assign = sum (+ sum (index a i)))))",
		"  (print sum))",
	}, "\n")
	if got != want {
		t.Errorf("Pretty() =\n%s\nwant\n%s", got, want)
	}

	if strings.ReplaceAll(Pretty(sampleProgram()), "\n", "") == "" {
		t.Error("Pretty() of program should not be empty")
	}
}

func TestChildrenAndInspect(t *testing.T) {
	prog := sampleProgram()

	if got := len(Children(prog)); got != 3 {
		t.Fatalf("Children(program) = %d nodes, want 3", got)
	}
	forStmt := prog.Solution.Body[1].(*ForStmt)
	if got := len(Children(forStmt)); got != 4 {
		t.Errorf("Children(for) = %d nodes, want 4", got)
	}
	if got := len(Children(&VarDecl{Name: id("x"), Type: intType()})); got != 2 {
		t.Errorf("Children(var without value) = %d nodes, want 2", got)
	}

	var names []string
	Inspect(prog, func(n Node) bool {
		if ident, ok := n.(*Identifier); ok {
			names = append(names, ident.Name)
		}
		return true
	})
	want := []string{"n", "a", "n", "a", "r", "sum", "i", "n", "sum", "sum", "a", "i", "sum"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Inspect identifiers mismatch (-want +got):\n%s", diff)
	}

	visited := 0
	Inspect(prog, func(n Node) bool {
		visited++
		_, isInput := n.(*InputSection)
		return !isInput
	})
	if visited >= Count(prog) {
		t.Errorf("Pruned walk visited %d nodes, full walk %d", visited, Count(prog))
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{&ForStmt{}, "for_stmt"},
		{&IOTarget{}, "io_target"},
		{&InRangeRestriction{}, "in_range_restriction"},
		{&IntLiteral{}, "int_literal"},
		{&Program{}, "program"},
	}
	for _, tt := range tests {
		if got := TypeName(tt.node); got != tt.want {
			t.Errorf("TypeName(%T) = %q, want %q", tt.node, got, tt.want)
		}
	}
}

func TestToMap(t *testing.T) {
	prog := sampleProgram()
	prog.Solution.Body[2].(*PrintStmt).Loc = Span{
		Start: Position{Line: 3, Column: 5, Offset: 40},
		End:   Position{Line: 3, Column: 15, Offset: 50},
	}

	m := ToMap(prog)
	if m["type"] != "program" {
		t.Fatalf("type = %v", m["type"])
	}

	body := m["solution"].(map[string]interface{})["body"].([]interface{})
	if len(body) != 3 {
		t.Fatalf("solution body has %d entries", len(body))
	}
	printMap := body[2].(map[string]interface{})
	span := printMap["span"].(map[string]interface{})
	if diff := cmp.Diff(map[string]interface{}{"line": 3, "column": 5, "offset": 40}, span["start"]); diff != "" {
		t.Errorf("span.start mismatch (-want +got):\n%s", diff)
	}

	varMap := body[0].(map[string]interface{})
	if varMap["type"] != "var_decl" {
		t.Errorf("type = %v", varMap["type"])
	}
	if varMap["data_type"].(map[string]interface{})["kind"] != "int" {
		t.Errorf("data_type = %v", varMap["data_type"])
	}

	if _, err := json.Marshal(m); err != nil {
		t.Errorf("ToMap result must be JSON encodable: %v", err)
	}

	bare := ToMapWithOptions(&Identifier{Name: "x"}, ExportOptions{OmitSpans: true})
	if diff := cmp.Diff(map[string]interface{}{"type": "identifier", "name": "x"}, bare); diff != "" {
		t.Errorf("OmitSpans mismatch (-want +got):\n%s", diff)
	}

	if ToMap(nil) != nil {
		t.Error("ToMap(nil) should be nil")
	}
}

func TestSpan(t *testing.T) {
	s := Span{Start: Position{Line: 1, Column: 3, Offset: 2}, End: Position{Line: 1, Column: 6, Offset: 5}}
	if s.Len() != 3 {
		t.Errorf("Len() = %d", s.Len())
	}
	if !s.Contains(2) || s.Contains(5) {
		t.Error("Contains should be half-open")
	}
	if s.Start.String() != "1:3" {
		t.Errorf("Position.String() = %q", s.Start.String())
	}
	if (Position{}).IsValid() {
		t.Error("zero Position should be invalid")
	}
}
