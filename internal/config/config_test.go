package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.False(t, cfg.Debug)
	require.Equal(t, "debug.log", cfg.LogFile)
	require.True(t, cfg.Editor.Multiline)
	require.Equal(t, 60, cfg.Editor.Width)
	require.Equal(t, "> ", cfg.Editor.Prompt)
	require.Equal(t, 10, cfg.Editor.KillRingSize)
	require.NoError(t, Validate(cfg), "defaults must validate")
}

func TestDefaultConfigTemplate_ParsesToDefaults(t *testing.T) {
	path := writeConfig(t, DefaultConfigTemplate())

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
editor:
  width: 80
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 80, cfg.Editor.Width)
	require.True(t, cfg.Editor.Multiline)
	require.Equal(t, 10, cfg.Editor.KillRingSize)
	require.Equal(t, "debug.log", cfg.LogFile)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, `
editor:
  kill_ring_size: 0
`)

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "kill_ring_size")
}

func TestValidateEditor(t *testing.T) {
	tests := []struct {
		name    string
		editor  EditorConfig
		wantErr string
	}{
		{"valid", EditorConfig{Width: 1, KillRingSize: 1}, ""},
		{"zero width", EditorConfig{Width: 0, KillRingSize: 1}, "editor.width"},
		{"negative width", EditorConfig{Width: -5, KillRingSize: 1}, "editor.width"},
		{"zero kill ring", EditorConfig{Width: 10, KillRingSize: 0}, "editor.kill_ring_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEditor(tt.editor)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_Theme(t *testing.T) {
	cfg := Defaults()
	cfg.Theme.Preset = "solarized"
	err := Validate(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown theme preset")

	cfg = Defaults()
	cfg.Theme.Colors = map[string]any{"diff.added": "green"}
	err = Validate(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid hex color")
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))
}
