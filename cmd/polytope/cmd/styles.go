package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/polytope/foundation/polytope/parser"
)

var (
	colorError   = lipgloss.Color("#EF4444")
	colorSuccess = lipgloss.Color("#10B981")
	colorMuted   = lipgloss.Color("#64748B")
	colorAccent  = lipgloss.Color("#06B6D4")

	errorStyle  = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	pathStyle   = lipgloss.NewStyle().Bold(true)
	gutterStyle = lipgloss.NewStyle().Foreground(colorMuted)
	caretStyle  = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(colorAccent)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
)

// renderDiagnostic formats d for the terminal: location header, the
// offending source line, a caret under the column and an optional hint
func renderDiagnostic(path, source string, d *parser.Diagnostic) string {
	var b strings.Builder

	loc := d.Pos.String()
	if path != "" {
		loc = path + ":" + loc
	}
	fmt.Fprintf(&b, "%s %s %s\n",
		pathStyle.Render(loc+":"),
		errorStyle.Render(d.Kind.String()+" error:"),
		d.Message)

	if line, caret, ok := d.Snippet(source); ok {
		fmt.Fprintf(&b, "%s%s\n", gutterStyle.Render(fmt.Sprintf("%4d | ", d.Pos.Line)), line)
		fmt.Fprintf(&b, "%s%s%s\n", gutterStyle.Render("     | "), strings.Repeat(" ", caret), caretStyle.Render("^"))
	}
	if d.Hint != "" {
		fmt.Fprintf(&b, "%s %s\n", hintStyle.Render("hint:"), d.Hint)
	}
	return b.String()
}

// renderOK formats a successful check line
func renderOK(path string, nodes int, elapsed time.Duration) string {
	return fmt.Sprintf("%s %s %s\n",
		okStyle.Render("ok"),
		path,
		mutedStyle.Render(fmt.Sprintf("(%d nodes, %s)", nodes, elapsed.Round(time.Microsecond))))
}
