// Package config provides configuration types and defaults for extedit.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/zjrosen/extedit/internal/log"
	"github.com/zjrosen/extedit/internal/textedit"
	"github.com/zjrosen/extedit/internal/ui/styles"
)

// DefaultConfigPath is where a default config is written when none is found.
const DefaultConfigPath = ".extedit/config.yaml"

// Config holds all configuration options for extedit.
type Config struct {
	Debug   bool         `mapstructure:"debug" yaml:"debug"`
	LogFile string       `mapstructure:"log_file" yaml:"log_file"`
	Editor  EditorConfig `mapstructure:"editor" yaml:"editor"`
	Theme   ThemeConfig  `mapstructure:"theme" yaml:"theme"`
}

// EditorConfig holds options for the extended input.
type EditorConfig struct {
	Multiline    bool   `mapstructure:"multiline" yaml:"multiline"`           // false uses the single-line textinput field
	Width        int    `mapstructure:"width" yaml:"width"`                   // display width in cells
	Placeholder  string `mapstructure:"placeholder" yaml:"placeholder"`       // shown while the field is empty
	Prompt       string `mapstructure:"prompt" yaml:"prompt"`                 // single-line prompt
	KillRingSize int    `mapstructure:"kill_ring_size" yaml:"kill_ring_size"` // kills remembered for ctrl+y
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "high-contrast"
	Preset string `mapstructure:"preset" yaml:"preset,omitempty"`

	// Colors overrides individual color tokens. Both nested YAML and quoted
	// dot notation work:
	//   colors:
	//     input:
	//       prompt: "#FF0000"
	//     "diff.added": "#00FF00"
	Colors map[string]any `mapstructure:"colors" yaml:"colors,omitempty"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

// Styles converts the theme to the form styles.ApplyTheme takes.
func (t ThemeConfig) Styles() styles.ThemeConfig {
	return styles.ThemeConfig{
		Preset: t.Preset,
		Colors: t.FlattenedColors(),
	}
}

func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Debug:   false,
		LogFile: "debug.log",
		Editor: EditorConfig{
			Multiline:    true,
			Width:        60,
			Placeholder:  "Type here...",
			Prompt:       "> ",
			KillRingSize: textedit.DefaultKillRingSize,
		},
	}
}

// SetDefaults registers the default values with v so keys missing from the
// config file fall back to them.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("editor::multiline", d.Editor.Multiline)
	v.SetDefault("editor::width", d.Editor.Width)
	v.SetDefault("editor::placeholder", d.Editor.Placeholder)
	v.SetDefault("editor::prompt", d.Editor.Prompt)
	v.SetDefault("editor::kill_ring_size", d.Editor.KillRingSize)
}

// NewViper returns a viper instance with defaults set. It uses "::" as the
// key delimiter so dotted color tokens like "diff.added" stay flat keys.
func NewViper() *viper.Viper {
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	SetDefaults(v)
	return v
}

// Load reads the config file at path on top of the defaults.
func Load(path string) (Config, error) {
	v := NewViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Unmarshal(v)
}

// Unmarshal decodes v into a Config and validates it.
func Unmarshal(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks a configuration for errors, returning the first found.
func Validate(cfg Config) error {
	if err := ValidateEditor(cfg.Editor); err != nil {
		return err
	}
	if err := styles.ValidateTheme(cfg.Theme.Styles()); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	return nil
}

// ValidateEditor checks editor options. Zero values are rejected because
// defaults are applied before unmarshalling.
func ValidateEditor(e EditorConfig) error {
	if e.Width < 1 {
		return fmt.Errorf("editor.width must be positive, got %d", e.Width)
	}
	if e.KillRingSize < 1 {
		return fmt.Errorf("editor.kill_ring_size must be positive, got %d", e.KillRingSize)
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# extedit configuration

# Write debug logs (also enabled by --debug or EXTEDIT_DEBUG=1)
debug: false
log_file: debug.log

# Extended input settings
editor:
  multiline: true           # false uses a single-line field (newlines become spaces)
  width: 60                 # display width in cells
  placeholder: "Type here..."
  prompt: "> "              # single-line prompt
  kill_ring_size: 10        # kills remembered for ctrl+y / alt+y

# Theme configuration
theme:
  # Use a preset:
  #   default        - Default extedit theme
  #   high-contrast  - High contrast for accessibility
  # preset: high-contrast
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   text.primary: "#FFFFFF"
  #   text.placeholder: "#777777"
  #   input.prompt: "#54A0FF"
  #   input.cursor: "#FFFFFF"
  #   help: "#696969"
  #   diff.added: "#73F59F"
  #   diff.removed: "#FF8787"
  #   status.error: "#FF8787"
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
