package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/extedit/internal/fileutil"
)

// Marshal renders cfg as YAML with flattened color tokens.
func Marshal(cfg Config) ([]byte, error) {
	if len(cfg.Theme.Colors) > 0 {
		flat := make(map[string]any, len(cfg.Theme.Colors))
		for k, v := range cfg.Theme.FlattenedColors() {
			flat[k] = v
		}
		cfg.Theme.Colors = flat
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()
	return buf.Bytes(), nil
}

// Save writes cfg to configPath, replacing the file atomically.
func Save(configPath string, cfg Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return fileutil.WriteAtomic(configPath, data, 0o600)
}
