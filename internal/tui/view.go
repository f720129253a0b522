package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/explorer/internal/ui/style"
)

// View renders the current state of the model as a string.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.source.Title()) + "\n\n")

	if m.viewport.Height == 0 {
		// No size yet: render the list only.
		b.WriteString(m.rowList())
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, listStyle.Render(m.rowList()), m.detailPane()))
	}

	b.WriteString("\n" + m.footer())
	return b.String()
}

func (m *Model) rowList() string {
	var s strings.Builder
	for i, row := range m.rows {
		var (
			icon string
			st   lipgloss.Style
		)
		switch row.Status {
		case StatusResolved:
			icon, st = style.Resolved.Icon, resolvedStyle
		case StatusFailed:
			icon, st = style.Failed.Icon, failedStyle
		case StatusAbsent:
			icon, st = style.Absent.Icon, absentStyle
			if m.loading {
				icon = m.spinner.View()
			}
		default:
			icon, st = style.Absent.Icon, absentStyle
		}

		name := strings.TrimPrefix(row.Label, domain.DebugLabelPrefix)
		pointer := "  "
		if i == m.cursor {
			pointer = "> "
			name = selectedStyle.Render(name)
		}

		line := fmt.Sprintf("%s%s %s", pointer, st.Render(icon), name)
		if row.Summary != "" {
			line += " " + summaryStyle.Render(row.Summary)
		}
		line += summaryStyle.Render(fmt.Sprintf(" [%d/%d]", row.Changes, row.Recomputes))
		s.WriteString(line + "\n")
	}
	return s.String()
}

func (m *Model) detailPane() string {
	header := "DETAIL"
	if row, ok := m.Selected(); ok {
		header = strings.TrimPrefix(row.Label, domain.DebugLabelPrefix)
	}
	return detailStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(header),
		m.viewport.View(),
	))
}

func (m *Model) footer() string {
	help := helpStyle.Render("↑/↓ select • r refresh • n next page • q quit")
	if m.lastErr != nil {
		return help + "\n" + errorStyle.Render(style.Cross+" "+m.lastErr.Error())
	}
	return help
}
