// Package config provides configuration types and defaults for quill.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/quill/internal/log"
)

// Config holds all configuration options for quill.
type Config struct {
	// SyntaxFile is the color configuration (JSON or YAML). Empty uses the
	// built-in palette.
	SyntaxFile   string        `mapstructure:"syntax_file" yaml:"syntax_file"`
	ScanInterval time.Duration `mapstructure:"scan_interval" yaml:"scan_interval"`
	WatchSyntax  bool          `mapstructure:"watch_syntax" yaml:"watch_syntax"`
	Editor       EditorConfig  `mapstructure:"editor" yaml:"editor"`
	Log          LogConfig     `mapstructure:"log" yaml:"log"`
}

// EditorConfig holds editing and rendering options.
type EditorConfig struct {
	LineNumbers  bool `mapstructure:"line_numbers" yaml:"line_numbers"`
	DynamicTypes bool `mapstructure:"dynamic_types" yaml:"dynamic_types"`
	TabWidth     int  `mapstructure:"tab_width" yaml:"tab_width"`
}

// LogConfig holds debug logging options.
type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file"`
	Debug bool   `mapstructure:"debug" yaml:"debug"`
	Level string `mapstructure:"level" yaml:"level"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		ScanInterval: time.Second,
		WatchSyntax:  true,
		Editor: EditorConfig{
			LineNumbers:  true,
			DynamicTypes: true,
			TabWidth:     4,
		},
		Log: LogConfig{
			File:  "quill.log",
			Level: "debug",
		},
	}
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("syntax_file", d.SyntaxFile)
	v.SetDefault("scan_interval", d.ScanInterval)
	v.SetDefault("watch_syntax", d.WatchSyntax)
	v.SetDefault("editor.line_numbers", d.Editor.LineNumbers)
	v.SetDefault("editor.dynamic_types", d.Editor.DynamicTypes)
	v.SetDefault("editor.tab_width", d.Editor.TabWidth)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.debug", d.Log.Debug)
	v.SetDefault("log.level", d.Log.Level)
}

// Load decodes the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.ScanInterval <= 0 {
		errs = append(errs, fmt.Errorf("scan_interval must be positive, got %s", c.ScanInterval))
	}
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		errs = append(errs, fmt.Errorf("editor.tab_width must be between 1 and 16, got %d", c.Editor.TabWidth))
	}
	if c.Log.Debug && c.Log.File == "" {
		errs = append(errs, errors.New("log.file is required when log.debug is set"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// DefaultPath returns ~/.config/quill/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".quill", "config.yaml")
	}
	return filepath.Join(home, ".config", "quill", "config.yaml")
}

const header = "# quill configuration\n#\n# syntax_file: path to a JSON or YAML color configuration\n# scan_interval: how often user types are rescanned\n\n"

// WriteDefault creates a config file at path with default settings.
func WriteDefault(path string) error {
	return Write(path, Defaults())
}

// Write stores cfg at path as YAML.
// Creates the parent directory if it doesn't exist.
func Write(path string, cfg Config) error {
	log.Debug(log.CatConfig, "writing config", "path", path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	body, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(header), body...), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "failed to write config file", err, "path", path)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "wrote config", "path", path)
	return nil
}
