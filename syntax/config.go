package syntax

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/quill/internal/log"
)

// LoadConfig reads a color configuration from path. JSON, YAML and TOML are
// accepted, chosen by file extension.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading color config %s: %w", path, err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding color config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadColorTable builds a table from path. A missing or malformed
// configuration yields an empty table so the editor keeps working without
// coloring.
func LoadColorTable(path string) *ColorTable {
	cfg, err := LoadConfig(path)
	if err != nil {
		log.Warn(log.CatConfig, "color config unusable, coloring disabled", "path", path, "error", err)
		return EmptyColorTable()
	}
	t := BuildColorTable(cfg)
	log.Info(log.CatConfig, "color config loaded", "path", path, "keys", t.Len(), "entries", len(cfg.Configurations))
	return t
}

// WriteConfig writes cfg to path as YAML, creating parent directories.
func WriteConfig(path string, cfg Config) error {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("writing color config %s: only .yaml/.yml is supported", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating color config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding color config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing color config %s: %w", path, err)
	}
	return nil
}
