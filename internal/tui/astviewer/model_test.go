package astviewer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	mdwlog "github.com/msto63/polytope/foundation/core/log"
	"github.com/msto63/polytope/foundation/polytope"
)

const smallSource = "input { n: int; } output { r: int; } solution { print(n + 1); }"

func newTestModel(t *testing.T, source string) Model {
	t.Helper()

	path := filepath.Join(t.TempDir(), "problem.poly")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}
	engine, err := polytope.NewEngine(polytope.Options{Logger: mdwlog.Discard()})
	if err != nil {
		t.Fatal(err)
	}

	m := New(Config{Path: path, Engine: engine})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return update(t, m, m.loadProgram())
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestOutline(t *testing.T) {
	prog, err := polytope.Parse(smallSource)
	if err != nil {
		t.Fatal(err)
	}

	type row struct {
		Depth int
		Kind  string
		Label string
	}
	var got []row
	for _, r := range Outline(prog) {
		got = append(got, row{r.Depth, r.Kind, r.Label})
	}

	want := []row{
		{0, "program", ""},
		{1, "input_section", "1 targets, 0 restrictions"},
		{2, "io_target", "n"},
		{3, "identifier", "n"},
		{3, "atomic_type", "int"},
		{1, "output_section", "1 targets"},
		{2, "io_target", "r"},
		{3, "identifier", "r"},
		{3, "atomic_type", "int"},
		{1, "solution_section", "1 statements"},
		{2, "print_stmt", ""},
		{3, "binary_expr", "+"},
		{4, "identifier", "n"},
		{4, "int_literal", "1"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Outline mismatch (-want +got):\n%s", diff)
	}

	if Outline(nil) != nil {
		t.Error("Outline(nil) should be empty")
	}
}

func TestVisibleRows(t *testing.T) {
	rows := []Row{
		{Depth: 0, HasChildren: true},
		{Depth: 1, HasChildren: true},
		{Depth: 2},
		{Depth: 2},
		{Depth: 1, HasChildren: true},
		{Depth: 2},
	}

	tests := []struct {
		name      string
		collapsed map[int]bool
		want      []int
	}{
		{"all expanded", nil, []int{0, 1, 2, 3, 4, 5}},
		{"first child collapsed", map[int]bool{1: true}, []int{0, 1, 4, 5}},
		{"root collapsed", map[int]bool{0: true, 1: true}, []int{0}},
		{"leaf flag ignored", map[int]bool{2: true}, []int{0, 1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, visibleRows(rows, tt.collapsed)); diff != "" {
				t.Errorf("visibleRows mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestModelNavigation(t *testing.T) {
	m := newTestModel(t, smallSource)

	if m.loading {
		t.Error("model should not be loading after programLoadedMsg")
	}
	if len(m.visible) != 14 {
		t.Fatalf("visible rows = %d, want 14", len(m.visible))
	}

	m = update(t, m, key("j"))
	if row, _, _ := m.selected(); row.Kind != "input_section" {
		t.Fatalf("selected %q after j", row.Kind)
	}

	m = update(t, m, key("enter"))
	if len(m.visible) != 11 {
		t.Errorf("visible rows after folding input = %d, want 11", len(m.visible))
	}
	if !strings.Contains(m.View(), IconCollapsed) {
		t.Error("View should show a collapsed marker")
	}

	m = update(t, m, key("c"))
	if len(m.visible) != 4 {
		t.Errorf("visible rows after collapse all = %d, want 4", len(m.visible))
	}
	if row, _, _ := m.selected(); row.Kind != "input_section" {
		t.Errorf("cursor moved to %q on collapse all", row.Kind)
	}

	m = update(t, m, key("e"))
	if len(m.visible) != 14 {
		t.Errorf("visible rows after expand all = %d, want 14", len(m.visible))
	}

	m = update(t, m, key("G"))
	if row, _, _ := m.selected(); row.Kind != "int_literal" {
		t.Errorf("G selected %q", row.Kind)
	}
	m = update(t, m, key("g"))
	if m.cursor != 0 {
		t.Errorf("g left cursor at %d", m.cursor)
	}
	m = update(t, m, key("k"))
	if m.cursor != 0 {
		t.Error("cursor should not move above the first row")
	}
}

func TestModelModes(t *testing.T) {
	m := newTestModel(t, smallSource)

	if !strings.Contains(m.View(), "solution_section") {
		t.Error("outline view should list node kinds")
	}

	m = update(t, m, key("tab"))
	if m.mode != ModeSExpr {
		t.Fatalf("mode = %v, want sexpr", m.mode)
	}
	if !strings.Contains(m.View(), "(print (+ n 1))") {
		t.Errorf("sexpr view missing print statement:\n%s", m.View())
	}

	m = update(t, m, key("tab"))
	if m.mode != ModeSource {
		t.Fatalf("mode = %v, want source", m.mode)
	}
	if !strings.Contains(m.View(), "solution { print(n + 1); }") {
		t.Errorf("source view missing source text:\n%s", m.View())
	}

	m = update(t, m, key("tab"))
	if m.mode != ModeOutline {
		t.Errorf("mode = %v, want outline after cycling", m.mode)
	}
}

func TestModelParseFailure(t *testing.T) {
	m := newTestModel(t, "input {} output {}")

	if m.result.Err == nil {
		t.Fatal("expected a parse error")
	}
	if len(m.rows) != 0 {
		t.Errorf("rows = %d, want none for a failed parse", len(m.rows))
	}
	if view := m.View(); !strings.Contains(view, `expected "solution"`) {
		t.Errorf("View should show the diagnostic:\n%s", view)
	}

	m = update(t, m, key("enter"))
	if len(m.visible) != 0 {
		t.Error("folding without rows should be a no-op")
	}
}

func TestModelReloadAndWatch(t *testing.T) {
	m := newTestModel(t, smallSource)

	m = update(t, m, key("j"))
	m = update(t, m, key("enter"))
	folded := len(m.visible)

	next, cmd := m.Update(fileChangedMsg{path: m.path})
	m = next.(Model)
	if !m.loading || cmd == nil {
		t.Fatal("fileChangedMsg should start a reload")
	}

	m = update(t, m, m.loadProgram())
	if len(m.visible) != folded {
		t.Errorf("folding lost on reload of an unchanged file: %d rows, want %d", len(m.visible), folded)
	}
	if m.reloads != 2 {
		t.Errorf("reloads = %d, want 2", m.reloads)
	}

	m = update(t, m, watchErrorMsg{err: errors.New("watcher closed")})
	if !strings.Contains(m.View(), "watch: watcher closed") {
		t.Error("status bar should show the watch error")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, smallSource)

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
