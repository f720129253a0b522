package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/explorer/internal/ui/style"
)

var (
	// Pane Styles.
	listStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(style.Slate).
			MarginRight(1).
			PaddingRight(1)

	detailStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	// Row Status Styles.
	absentStyle = lipgloss.NewStyle().
			Foreground(style.Absent.Color)

	resolvedStyle = lipgloss.NewStyle().
			Foreground(style.Resolved.Color)

	failedStyle = lipgloss.NewStyle().
			Foreground(style.Failed.Color)

	summaryStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	// Selection Style.
	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Purple).
			Bold(true)

	// Header Styles.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Purple).
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red)
)
