// Package style holds the explorer's palette and glyphs.
//
// The text report of `explorer view`, the inspector rows and the log handler
// all draw a derived node or a log level with the same marks, so a resolved
// node looks the same in every output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Purple = lipgloss.Color("#5546FF")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
	Arrow   = "→"
)

// Mark is the icon and color a node is drawn with.
type Mark struct {
	Icon  string
	Color lipgloss.Color
}

// Node marks.
var (
	Resolved = Mark{Icon: Check, Color: Green}
	Failed   = Mark{Icon: Cross, Color: Red}
	Absent   = Mark{Icon: Circle, Color: Slate}
)
