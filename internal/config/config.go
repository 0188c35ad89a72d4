package config

import (
	"os"
	"path/filepath"

	"github.com/thenoetrevino/sizerating/internal/config/tokens"
	"gopkg.in/yaml.v3"
)

// ThemeFileEnv names a YAML file whose theme section is merged over the config
const ThemeFileEnv = "SIZERATING_THEME_FILE"

// Config represents the application configuration
type Config struct {
	Theme  tokens.ThemeTokens `yaml:"theme"`
	Output Output             `yaml:"output"`
}

// Output holds the CLI defaults for rendering badges
type Output struct {
	Format string `yaml:"format"` // term, html, svg or css
	Muted  bool   `yaml:"muted"`
	Small  bool   `yaml:"small"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Theme:  *tokens.Default(),
		Output: Output{Format: "term"},
	}
}

// loadThemeFile loads and merges theme from SIZERATING_THEME_FILE
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(ThemeFileEnv)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme tokens.ThemeTokens `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.Theme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path, falling back to defaults if it doesn't exist
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		config.applyDefaults()
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return c.SaveFile(configPath)
}

// SaveFile writes the config as YAML to path
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "sizerating", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "sizerating", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.Theme.ApplyDefaults()
	if c.Output.Format == "" {
		c.Output.Format = "term"
	}
}
