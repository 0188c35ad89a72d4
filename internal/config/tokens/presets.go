package tokens

// Default returns the default tokens (SonarQube web theme)
func Default() *ThemeTokens {
	return &ThemeTokens{
		Preset: "default",

		ControlHeight:      24,
		SmallControlHeight: 20,

		Blue: "#4b9fd5",

		SmallFontSize:    12,
		SmallestFontSize: 10,
	}
}

// Compact returns tighter tokens for dense tables
func Compact() *ThemeTokens {
	return &ThemeTokens{
		Preset: "compact",

		ControlHeight:      20,
		SmallControlHeight: 16,

		Blue: "#4b9fd5",

		SmallFontSize:    11,
		SmallestFontSize: 9,
	}
}

// Monochrome returns tokens with a dark gray accent
func Monochrome() *ThemeTokens {
	return &ThemeTokens{
		Preset: "monochrome",

		ControlHeight:      24,
		SmallControlHeight: 20,

		Blue: "#585858",

		SmallFontSize:    12,
		SmallestFontSize: 10,
	}
}

// PresetNames lists the built-in presets
func PresetNames() []string {
	return []string{"default", "compact", "monochrome"}
}

// GetPreset returns a preset by name, falling back to Default
func GetPreset(name string) *ThemeTokens {
	switch name {
	case "compact":
		return Compact()
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}
