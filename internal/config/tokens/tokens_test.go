package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPreset(t *testing.T) {
	tests := []struct {
		name       string
		wantPreset string
	}{
		{"default", "default"},
		{"", "default"},
		{"compact", "compact"},
		{"monochrome", "monochrome"},
		{"nonexistent", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := GetPreset(tt.name)
			assert.Equal(t, tt.wantPreset, p.Preset)
			assert.NoError(t, p.Validate())
		})
	}
}

func TestApplyDefaults_EmptyUsesDefaultPreset(t *testing.T) {
	var tok ThemeTokens
	tok.ApplyDefaults()
	assert.Equal(t, *Default(), tok)
}

func TestApplyDefaults_KeepsCustomValues(t *testing.T) {
	tok := ThemeTokens{Preset: "compact", Blue: "#FF0000"}
	tok.ApplyDefaults()

	assert.Equal(t, "#FF0000", tok.Blue)
	assert.Equal(t, Compact().ControlHeight, tok.ControlHeight)
	assert.Equal(t, Compact().SmallestFontSize, tok.SmallestFontSize)
}

func TestMergeFrom(t *testing.T) {
	tok := *Default()
	tok.MergeFrom(ThemeTokens{ControlHeight: 30, Blue: "#00FF00"})

	assert.Equal(t, 30, tok.ControlHeight)
	assert.Equal(t, "#00FF00", tok.Blue)
	assert.Equal(t, Default().SmallControlHeight, tok.SmallControlHeight)
	assert.Equal(t, "default", tok.Preset)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ThemeTokens)
		wantErr error
	}{
		{"defaults are valid", func(*ThemeTokens) {}, nil},
		{"short hex is valid", func(t *ThemeTokens) { t.Blue = "#fff" }, nil},
		{"zero control height", func(t *ThemeTokens) { t.ControlHeight = 0 }, ErrInvalidSize},
		{"negative small font", func(t *ThemeTokens) { t.SmallestFontSize = -1 }, ErrInvalidSize},
		{"color name", func(t *ThemeTokens) { t.Blue = "blue" }, ErrInvalidColor},
		{"missing hash", func(t *ThemeTokens) { t.Blue = "4b9fd5" }, ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := *Default()
			tt.mutate(&tok)
			err := tok.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
