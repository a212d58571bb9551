package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/extedit/internal/ui/styles"
)

func TestThemeConfig_DottedKeys(t *testing.T) {
	path := writeConfig(t, `
theme:
  preset: high-contrast
  colors:
    "diff.added": "#00AA00"
    "input.prompt": "#123456"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "high-contrast", cfg.Theme.Preset)
	require.Equal(t, map[string]string{
		"diff.added":   "#00AA00",
		"input.prompt": "#123456",
	}, cfg.Theme.FlattenedColors())
}

func TestThemeConfig_NestedColors(t *testing.T) {
	path := writeConfig(t, `
theme:
  colors:
    text:
      primary: "#FF0000"
      placeholder: "#00FF00"
    help: "#0000FF"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"text.primary":     "#FF0000",
		"text.placeholder": "#00FF00",
		"help":             "#0000FF",
	}, cfg.Theme.FlattenedColors())
}

func TestThemeConfig_UnknownToken(t *testing.T) {
	path := writeConfig(t, `
theme:
  colors:
    sidebar.background: "#FF0000"
`)

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown color token")
}

func TestThemeConfig_Apply(t *testing.T) {
	t.Cleanup(func() { _ = styles.ApplyTheme(styles.ThemeConfig{}) })

	theme := ThemeConfig{Colors: map[string]any{"input.prompt": "#ABCDEF"}}
	require.NoError(t, styles.ApplyTheme(theme.Styles()))
	require.Equal(t, "#ABCDEF", styles.PromptColor.Dark)
}

func TestFlattenColors_AnyKeyMaps(t *testing.T) {
	theme := ThemeConfig{Colors: map[string]any{
		"diff": map[any]any{"added": "#111111", 7: "#222222"},
	}}

	require.Equal(t, map[string]string{"diff.added": "#111111"}, theme.FlattenedColors())
}
