// ============================================================================
// Polytope - Problem description language toolkit
// ============================================================================
//
// Package:     astviewer
// Description: Main Bubbletea model for the Polytope AST viewer
// Author:      msto63
// Created:     2025-10-18
// License:     MIT
// ============================================================================

package astviewer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mdwlog "github.com/msto63/polytope/foundation/core/log"
	"github.com/msto63/polytope/foundation/polytope"
	"github.com/msto63/polytope/foundation/polytope/ast"
	"github.com/msto63/polytope/foundation/polytope/parser"
	mdwstringx "github.com/msto63/polytope/foundation/utils/stringx"
	"github.com/msto63/polytope/pkg/core/version"
)

// Mode selects what the main panel shows
type Mode int

const (
	ModeOutline Mode = iota
	ModeSExpr
	ModeSource
)

var modeNames = []string{"outline", "sexpr", "source"}

// String returns the tab name of the mode
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// Config holds AST viewer configuration
type Config struct {
	Path   string
	Engine *polytope.Engine
	Watch  bool
	Logger *mdwlog.Logger
}

// Model is the main Bubbletea model for the AST viewer
type Model struct {
	// State
	width    int
	height   int
	ready    bool
	loading  bool
	mode     Mode
	watching bool
	watchErr error

	// Components
	viewport viewport.Model
	spinner  spinner.Model

	// Parse state
	result    polytope.Result
	rows      []Row
	collapsed map[int]bool
	visible   []int
	cursor    int // index into visible
	reloads   int

	// Configuration
	path   string
	engine *polytope.Engine
	logger *mdwlog.Logger
}

// New creates a new AST viewer model
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	logger := cfg.Logger
	if logger == nil {
		logger = mdwlog.Discard()
	}

	return Model{
		spinner:   sp,
		loading:   true,
		watching:  cfg.Watch,
		collapsed: make(map[int]bool),
		path:      cfg.Path,
		engine:    cfg.Engine,
		logger:    logger.WithField("component", "astviewer"),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadProgram,
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 5 // Title panel + mode bar
		footerHeight := 4 // Status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case programLoadedMsg:
		m.loading = false
		m.applyResult(msg.result)
		m.updateViewportContent()

	case fileChangedMsg:
		m.logger.Debug("Reloading changed file", mdwlog.Fields{"path": msg.path})
		m.loading = true
		cmds = append(cmds, m.spinner.Tick, m.loadProgram)

	case watchErrorMsg:
		m.watchErr = msg.err
		m.logger.WarnWithErr("Watch error", msg.err)
	}

	return m, tea.Batch(cmds...)
}

// applyResult replaces the tree. Folding survives a reload when the
// outline keeps its shape.
func (m *Model) applyResult(r polytope.Result) {
	m.result = r
	m.reloads++

	var rows []Row
	if r.Program != nil {
		rows = Outline(r.Program)
	}
	if !sameShape(m.rows, rows) {
		m.collapsed = make(map[int]bool)
		m.cursor = 0
	}
	m.rows = rows
	m.refreshVisible()
}

func sameShape(a, b []Row) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Depth != b[i].Depth || a[i].Kind != b[i].Kind {
			return false
		}
	}
	return true
}

func (m *Model) refreshVisible() {
	m.visible = visibleRows(m.rows, m.collapsed)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the row under the cursor
func (m Model) selected() (Row, int, bool) {
	if len(m.visible) == 0 {
		return Row{}, -1, false
	}
	i := m.visible[m.cursor]
	return m.rows[i], i, true
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab":
		m.mode = (m.mode + 1) % Mode(len(modeNames))
		m.viewport.GotoTop()

	case "r":
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadProgram)

	case "up", "k":
		if m.mode != ModeOutline {
			m.viewport.LineUp(1)
			return m, nil
		}
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.mode != ModeOutline {
			m.viewport.LineDown(1)
			return m, nil
		}
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case "g":
		m.cursor = 0
		m.viewport.GotoTop()

	case "G":
		m.cursor = len(m.visible) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.viewport.GotoBottom()

	case "enter", " ":
		if _, i, ok := m.selected(); ok && m.rows[i].HasChildren {
			m.collapsed[i] = !m.collapsed[i]
			m.refreshVisible()
		}

	case "c":
		_, current, _ := m.selected()
		for i, r := range m.rows {
			if r.HasChildren && r.Depth > 0 {
				m.collapsed[i] = true
			}
		}
		m.refreshVisible()
		m.moveCursorTo(current)

	case "e":
		_, current, _ := m.selected()
		m.collapsed = make(map[int]bool)
		m.refreshVisible()
		m.moveCursorTo(current)

	default:
		return m, nil
	}

	m.updateViewportContent()
	return m, nil
}

// moveCursorTo puts the cursor on row, or on its closest visible ancestor
func (m *Model) moveCursorTo(row int) {
	if row < 0 {
		return
	}
	best := 0
	for vi, ri := range m.visible {
		if ri > row {
			break
		}
		best = vi
	}
	m.cursor = best
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading " + m.path + "..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderModeBar())
	b.WriteString("\n")

	b.WriteString(m.renderTreeArea())
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the header with logo and file
func (m Model) renderHeader() string {
	status := StatusOKStyle.Render("ok")
	if m.result.Err != nil {
		status = StatusErrorStyle.Render("error")
	}

	watch := ""
	if m.watching {
		watch = "  " + StatusWatchStyle.Render("watching")
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		PathStyle.Render(m.path),
		strings.Repeat(" ", 2),
		status,
		watch,
	)

	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderModeBar renders the view mode tabs
func (m Model) renderModeBar() string {
	tabs := make([]string, len(modeNames))
	for i, name := range modeNames {
		tabs[i] = RenderMode(name, Mode(i) == m.mode)
	}

	count := ""
	if len(m.rows) > 0 {
		count = "  " + HelpDescStyle.Render(fmt.Sprintf("[%d/%d nodes]", len(m.visible), len(m.rows)))
	}

	return ModeBarStyle.Width(m.width - 2).Render(strings.Join(tabs, "  ") + count)
}

// renderTreeArea renders the main viewport
func (m Model) renderTreeArea() string {
	style := TreePanelStyle.Width(m.width - 2).Height(m.viewport.Height + 2)
	return style.Render(m.viewport.View())
}

// renderStatusBar renders the status bar
func (m Model) renderStatusBar() string {
	var leftPart string
	switch {
	case m.loading:
		leftPart = m.spinner.View() + " Parsing..."
	case m.watchErr != nil:
		leftPart = StatusErrorStyle.Render("watch: " + m.watchErr.Error())
	case m.result.Err != nil:
		leftPart = StatusErrorStyle.Render(mdwstringx.Truncate(m.result.Err.Error(), max(m.width/2, 20), "..."))
	default:
		if row, _, ok := m.selected(); ok {
			leftPart = HelpDescStyle.Render(fmt.Sprintf("%s %s-%s", row.Kind, row.Span.Start, row.Span.End))
		}
	}

	centerPart := HelpDescStyle.Render("v" + version.Viewer)

	rightPart := HelpDescStyle.Render(fmt.Sprintf("parsed in %s", m.result.Duration.Round(time.Microsecond)))

	leftLen := lipgloss.Width(leftPart)
	centerLen := lipgloss.Width(centerPart)
	rightLen := lipgloss.Width(rightPart)
	availableSpace := m.width - leftLen - centerLen - rightLen - 4
	if availableSpace < 2 {
		availableSpace = 2
	}
	leftPadding := availableSpace / 2
	rightPadding := availableSpace - leftPadding

	content := leftPart + strings.Repeat(" ", leftPadding) + centerPart + strings.Repeat(" ", rightPadding) + rightPart

	return StatusBarStyle.Width(m.width - 2).Render(content)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("j/k", "Move"),
		RenderKeyHint("enter", "Fold"),
		RenderKeyHint("e/c", "Expand/Collapse all"),
		RenderKeyHint("tab", "View"),
		RenderKeyHint("r", "Reload"),
		RenderKeyHint("g/G", "Top/Bottom"),
		RenderKeyHint("q", "Quit"),
	}

	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent renders the current mode into the viewport
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}

	if m.result.Err != nil && m.mode != ModeSource {
		m.viewport.SetContent(m.renderFailure())
		return
	}

	switch m.mode {
	case ModeOutline:
		m.viewport.SetContent(m.renderOutline())
		m.keepCursorVisible()
	case ModeSExpr:
		m.viewport.SetContent(ast.Pretty(m.result.Program))
	case ModeSource:
		m.viewport.SetContent(m.renderSource())
	}
}

func (m Model) renderFailure() string {
	if d, ok := parser.AsDiagnostic(m.result.Err); ok {
		return StatusErrorStyle.Render(d.Render(m.result.Source))
	}
	return StatusErrorStyle.Render(m.result.Err.Error())
}

func (m Model) renderOutline() string {
	var content strings.Builder
	for vi, ri := range m.visible {
		row := m.rows[ri]

		icon := IconLeaf
		if row.HasChildren {
			icon = IconExpanded
			if m.collapsed[ri] {
				icon = IconCollapsed
			}
		}

		line := strings.Repeat("  ", row.Depth) + icon + kindStyle(row.Kind).Render(row.Kind)
		if row.Label != "" {
			line += " " + LabelStyle.Render(row.Label)
		}
		line += " " + SpanStyle.Render(row.Span.Start.String())

		if vi == m.cursor {
			line = SelectedRowStyle.Render(line)
		}
		content.WriteString(line)
		content.WriteString("\n")
	}
	return content.String()
}

// renderSource shows the file with line numbers, marking the lines of the
// node under the cursor
func (m Model) renderSource() string {
	row, _, hasRow := m.selected()

	var content strings.Builder
	for i, line := range mdwstringx.SplitLines(m.result.Source) {
		n := i + 1
		gutter := GutterStyle.Render(fmt.Sprintf("%4d ", n))
		if hasRow && n >= row.Span.Start.Line && n <= row.Span.End.Line {
			gutter = MarkedGutterStyle.Render(fmt.Sprintf("%4d%s", n, IconMarker))
		}
		content.WriteString(gutter)
		content.WriteString(mdwstringx.ExpandTabs(line, 4))
		content.WriteString("\n")
	}
	return content.String()
}

func (m *Model) keepCursorVisible() {
	switch {
	case m.cursor < m.viewport.YOffset:
		m.viewport.SetYOffset(m.cursor)
	case m.cursor >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

// loadProgram reads and parses the file
func (m Model) loadProgram() tea.Msg {
	r := m.engine.ParseFile(m.path)
	if r.Err != nil {
		m.logger.Debug("File failed to parse", mdwlog.Fields{"path": m.path, "error": r.Err.Error()})
	}
	return programLoadedMsg{result: r}
}

// Run starts the AST viewer TUI
func Run(ctx context.Context, cfg Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(New(cfg), tea.WithAltScreen(), tea.WithContext(ctx))

	if cfg.Watch {
		go func() {
			err := watchFile(ctx, cfg.Path, p.Send)
			if err != nil && ctx.Err() == nil {
				p.Send(watchErrorMsg{err: err})
			}
		}()
	}

	_, err := p.Run()
	return err
}
