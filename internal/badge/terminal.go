package badge

import (
	"charm.land/lipgloss/v2"
)

// Terminal chip widths in cells
const (
	TerminalWidth      = 4
	TerminalSmallWidth = 2
)

// RenderTerminal renders the badge as a colored chip for terminal output.
// Terminals have no sub-cell offsets, so the small variant's margins are dropped.
func RenderTerminal(b Badge) string {
	width := TerminalWidth
	if b.Small {
		width = TerminalSmallWidth
	}

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(b.Style.Color)).
		Background(lipgloss.Color(b.Style.Background)).
		Width(width).
		Align(lipgloss.Center)

	if !b.Small {
		style = style.Bold(true)
	}

	text := b.Text()
	if text == "" {
		// keeps the chip visible when there is no label
		text = " "
	}
	return style.Render(text)
}
