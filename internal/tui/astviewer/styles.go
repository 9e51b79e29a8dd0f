// ============================================================================
// Polytope - Problem description language toolkit
// ============================================================================
//
// Package:     astviewer
// Description: Styles for the AST viewer TUI
// Author:      msto63
// Created:     2025-10-18
// License:     MIT
// ============================================================================

package astviewer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	// Background colors
	ColorBgPanel    = lipgloss.Color("#1E293B") // Slate 800
	ColorBgSelected = lipgloss.Color("#3B0764") // Purple 950

	// Text colors
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Logo/Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)
)

// Outline styles
var (
	KindSectionStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	KindStmtStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	KindExprStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	KindTypeStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	SpanStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	SelectedRowStyle = lipgloss.NewStyle().
				Background(ColorBgSelected).
				Bold(true)

	GutterStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	MarkedGutterStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)
)

// Panel/Box styles
var (
	TreePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	ModeBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2).
			MarginBottom(1)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StatusWatchStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	ModeActiveStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	ModeInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)
)

// Fold markers
const (
	IconExpanded  = "▾ "
	IconCollapsed = "▸ "
	IconLeaf      = "  "
	IconMarker    = "▌"
)

// Logo
const Logo = "Polytope AST"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderMode renders a mode tab
func RenderMode(name string, active bool) string {
	if active {
		return ModeActiveStyle.Render(name)
	}
	return ModeInactiveStyle.Render(name)
}

// kindStyle picks the outline color for a node kind
func kindStyle(kind string) lipgloss.Style {
	switch kind {
	case "program", "input_section", "output_section", "solution_section":
		return KindSectionStyle
	case "atomic_type", "array_type", "vector_type":
		return KindTypeStyle
	}
	if strings.HasSuffix(kind, "_stmt") || strings.HasSuffix(kind, "_restriction") || strings.HasSuffix(kind, "_decl") {
		return KindStmtStyle
	}
	return KindExprStyle
}
