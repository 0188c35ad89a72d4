// Package badge turns a size metric into a small circular size-class badge
// and renders it as HTML, SVG or a terminal chip.
package badge

import (
	"strings"

	"github.com/thenoetrevino/sizerating/internal/config/tokens"
	"github.com/thenoetrevino/sizerating/internal/sizerating"
)

// BaseClass is always present on rendered badges
const BaseClass = "size-rating"

// Options are presentation flags. They never affect classification.
type Options struct {
	Muted bool
	Small bool

	// ClassName is appended to the generated classes so a parent can
	// position the badge
	ClassName string
}

// Badge is a classified metric together with its computed style
type Badge struct {
	Value     float64
	Label     sizerating.SizeClass
	Style     StyleSpec
	Small     bool
	Muted     bool
	ClassName string
}

// New classifies value and computes its style from the given theme.
// Values outside every band produce a badge with an empty label.
func New(value float64, opts Options, theme tokens.ThemeTokens) Badge {
	return Badge{
		Value:     value,
		Label:     sizerating.Classify(value),
		Style:     ComputeStyle(opts, theme),
		Small:     opts.Small,
		Muted:     opts.Muted,
		ClassName: opts.ClassName,
	}
}

// Text is the badge's sole content
func (b Badge) Text() string {
	return b.Label.String()
}

// Classes returns the class list for the rendered container
func (b Badge) Classes() string {
	classes := []string{BaseClass}
	if b.Small {
		classes = append(classes, BaseClass+"-small")
	}
	if b.Muted {
		classes = append(classes, BaseClass+"-muted")
	}
	if extra := strings.TrimSpace(b.ClassName); extra != "" {
		classes = append(classes, extra)
	}
	return strings.Join(classes, " ")
}
