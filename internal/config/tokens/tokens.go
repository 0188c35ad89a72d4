// Package tokens holds the theme tokens a size badge is drawn with.
package tokens

import (
	"errors"
	"fmt"
	"regexp"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// Token validation errors
var (
	ErrInvalidSize  = errors.New("size token must be a positive number of pixels")
	ErrInvalidColor = errors.New("invalid color format (must be hex color like #FFFFFF)")
)

// ThemeTokens are the read-only styling constants shared by every badge.
// Sizes are in pixels.
type ThemeTokens struct {
	// Preset name (e.g., "default", "compact")
	Preset string `yaml:"preset" json:"preset"`

	// Badge diameters
	ControlHeight      int `yaml:"control_height" json:"controlHeight"`
	SmallControlHeight int `yaml:"small_control_height" json:"smallControlHeight"`

	// Accent color used as the badge background unless muted
	Blue string `yaml:"blue" json:"blue"`

	// Label font sizes
	SmallFontSize    int `yaml:"small_font_size" json:"smallFontSize"`
	SmallestFontSize int `yaml:"smallest_font_size" json:"smallestFontSize"`
}

// ApplyDefaults fills in missing values using the preset as base
func (t *ThemeTokens) ApplyDefaults() {
	preset := GetPreset(t.Preset)

	if t.Preset == "" {
		t.Preset = preset.Preset
	}
	if t.ControlHeight == 0 {
		t.ControlHeight = preset.ControlHeight
	}
	if t.SmallControlHeight == 0 {
		t.SmallControlHeight = preset.SmallControlHeight
	}
	if t.Blue == "" {
		t.Blue = preset.Blue
	}
	if t.SmallFontSize == 0 {
		t.SmallFontSize = preset.SmallFontSize
	}
	if t.SmallestFontSize == 0 {
		t.SmallestFontSize = preset.SmallestFontSize
	}
}

// MergeFrom overrides t with every non-zero value of other
func (t *ThemeTokens) MergeFrom(other ThemeTokens) {
	if other.Preset != "" {
		t.Preset = other.Preset
	}
	if other.ControlHeight != 0 {
		t.ControlHeight = other.ControlHeight
	}
	if other.SmallControlHeight != 0 {
		t.SmallControlHeight = other.SmallControlHeight
	}
	if other.Blue != "" {
		t.Blue = other.Blue
	}
	if other.SmallFontSize != 0 {
		t.SmallFontSize = other.SmallFontSize
	}
	if other.SmallestFontSize != 0 {
		t.SmallestFontSize = other.SmallestFontSize
	}
}

// Validate checks that every token is usable
func (t ThemeTokens) Validate() error {
	sizes := []struct {
		name  string
		value int
	}{
		{"control_height", t.ControlHeight},
		{"small_control_height", t.SmallControlHeight},
		{"small_font_size", t.SmallFontSize},
		{"smallest_font_size", t.SmallestFontSize},
	}
	for _, s := range sizes {
		if s.value <= 0 {
			return fmt.Errorf("%s: %w (got %d)", s.name, ErrInvalidSize, s.value)
		}
	}
	if !hexColorRegex.MatchString(t.Blue) {
		return fmt.Errorf("blue: %w (got %q)", ErrInvalidColor, t.Blue)
	}
	return nil
}
