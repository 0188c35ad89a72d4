package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/sizerating/internal/config/tokens"
)

// Fixed colors for CLI text around the badges
const (
	titleColor   = "#D0D0D0"
	subtleColor  = "#808080"
	warningColor = "#FFD700"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For token names like "control_height:"
	ValueStyle    lipgloss.Style // For metric values and token values

	// Status styles
	WarningStyle lipgloss.Style
)

func init() {
	Init(*tokens.Default())
}

// Init initializes all CLI styles with the given theme tokens
func Init(theme tokens.ThemeTokens) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(titleColor))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(subtleColor))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Blue))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(titleColor))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(warningColor))
}

// Swatch renders a two-cell block filled with hexColor
func Swatch(hexColor string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hexColor)).
		Render("  ")
}
