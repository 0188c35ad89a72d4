package badge

import (
	"strconv"
	"strings"

	"github.com/thenoetrevino/sizerating/internal/config/tokens"
)

// Fixed colors that do not come from the theme
const (
	MutedBackground = "#bdbdbd"
	TextColor       = "#ffffff"
	TextShadow      = "0 0 1px rgba(0, 0, 0, 0.35)"
)

// StyleSpec is the computed presentation of a badge. Sizes are in pixels.
type StyleSpec struct {
	Display       string
	VerticalAlign string
	TextAlign     string

	// Width, height, line-height and border-radius all equal Diameter
	Diameter     int
	FontSize     int
	MarginTop    int
	MarginBottom int

	Background string
	Color      string
	TextShadow string
}

// Declaration is a single CSS property/value pair
type Declaration struct {
	Property string
	Value    string
}

// ComputeStyle derives the badge style from the flags and theme tokens.
// It never reads ambient state.
func ComputeStyle(opts Options, theme tokens.ThemeTokens) StyleSpec {
	spec := StyleSpec{
		Display:       "inline-block",
		VerticalAlign: "top",
		TextAlign:     "center",
		Diameter:      theme.ControlHeight,
		FontSize:      theme.SmallFontSize,
		Background:    theme.Blue,
		Color:         TextColor,
		TextShadow:    TextShadow,
	}

	if opts.Small {
		spec.Diameter = theme.SmallControlHeight
		spec.FontSize = theme.SmallestFontSize
		// compensates for the inline-block baseline shift
		spec.MarginTop = -1
		spec.MarginBottom = -1
	}

	if opts.Muted {
		spec.Background = MutedBackground
	}

	return spec
}

// Declarations returns the style as ordered CSS declarations
func (s StyleSpec) Declarations() []Declaration {
	return []Declaration{
		{"display", s.Display},
		{"vertical-align", s.VerticalAlign},
		{"width", px(s.Diameter)},
		{"height", px(s.Diameter)},
		{"line-height", px(s.Diameter)},
		{"margin-top", px(s.MarginTop)},
		{"margin-bottom", px(s.MarginBottom)},
		{"border-radius", px(s.Diameter)},
		{"background-color", s.Background},
		{"color", s.Color},
		{"font-size", px(s.FontSize)},
		{"text-align", s.TextAlign},
		{"text-shadow", s.TextShadow},
	}
}

// CSS renders the declarations as an inline style attribute value
func (s StyleSpec) CSS() string {
	decls := s.Declarations()
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.Property+": "+d.Value+";")
	}
	return strings.Join(parts, " ")
}

// Rule renders the declarations as a stylesheet rule for selector
func (s StyleSpec) Rule(selector string) string {
	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, d := range s.Declarations() {
		b.WriteString("  ")
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}

func px(n int) string {
	if n == 0 {
		return "0"
	}
	return strconv.Itoa(n) + "px"
}
