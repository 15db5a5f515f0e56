// Package config loads the flexchrome settings file.
//
// The file is looked up in the working directory first and then under the
// XDG config home, e.g. ~/.config/flexchrome/flexchrome.toml. TOML and YAML
// are both accepted; the format follows the file extension.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/agiangrant/flexchrome"
	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the default settings file name.
	FileName = "flexchrome.toml"
	// YAMLFileName is the alternative YAML settings file name.
	YAMLFileName = "flexchrome.yaml"

	appDir = "flexchrome"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config represents the flexchrome settings file.
type Config struct {
	Chrome   ChromeConfig   `toml:"chrome" yaml:"chrome"`
	Maximize MaximizeConfig `toml:"maximize" yaml:"maximize"`
	Log      LogConfig      `toml:"log" yaml:"log"`
}

type ChromeConfig struct {
	// Style is auto, windows, macos or linux.
	Style string `toml:"style" yaml:"style"`
	// Keep the macOS glyphs visible without hover
	AlwaysShowGlyphs bool `toml:"always_show_glyphs" yaml:"always_show_glyphs"`
	// Title replaces the host window title; empty keeps the host's own
	Title string `toml:"title" yaml:"title"`
}

type MaximizeConfig struct {
	// Strategy is standard or external.
	Strategy string `toml:"strategy" yaml:"strategy"`
	// Command line run for the tile action when Strategy is external
	TileCommand string `toml:"tile_command" yaml:"tile_command"`
	// Timeout for TileCommand, e.g. "5s"
	Timeout string `toml:"timeout" yaml:"timeout"`
}

type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() Config {
	return Config{
		Chrome: ChromeConfig{
			Style: flexchrome.StyleAuto.String(),
		},
		Maximize: MaximizeConfig{
			Strategy: flexchrome.MaximizeStandard.String(),
			Timeout:  "10s",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Find returns the settings file to load, or "" when there is none.
func Find() (string, error) {
	for _, name := range []string{FileName, YAMLFileName} {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to stat %s: %w", name, err)
		}
	}
	for _, name := range []string{FileName, YAMLFileName} {
		if path, err := xdg.SearchConfigFile(filepath.Join(appDir, name)); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// DefaultPath returns where Save writes when no path is given, creating
// the parent directory.
func DefaultPath() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join(appDir, FileName))
	if err != nil {
		return "", fmt.Errorf("failed to resolve config path: %w", err)
	}
	return path, nil
}

// Load loads the settings file found by Find.
// If there is none, returns default config
func Load() (Config, string, error) {
	path, err := Find()
	if err != nil {
		return DefaultConfig(), "", err
	}
	if path == "" {
		return DefaultConfig(), "", nil
	}
	cfg, err := LoadFile(path)
	return cfg, path, err
}

// LoadFile reads path on top of the defaults and validates the result.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, &cfg)
	} else {
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Apply defaults for empty values
	if cfg.Chrome.Style == "" {
		cfg.Chrome.Style = flexchrome.StyleAuto.String()
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path. An empty path means DefaultPath.
func Save(cfg Config, path string) (string, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return "", err
		}
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = toml.Marshal(cfg)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// Validate checks every field that has a closed set of values.
func (c Config) Validate() error {
	if _, err := flexchrome.ParsePlatformStyle(c.Chrome.Style); err != nil {
		return fmt.Errorf("%w: chrome.style: %v", ErrInvalid, err)
	}

	strategy, err := flexchrome.ParseMaximizeStrategy(c.Maximize.Strategy)
	if err != nil {
		return fmt.Errorf("%w: maximize.strategy: %v", ErrInvalid, err)
	}
	if strategy == flexchrome.MaximizeUnset {
		return fmt.Errorf("%w: maximize.strategy is required", ErrInvalid)
	}
	if strategy == flexchrome.MaximizeExternal && strings.TrimSpace(c.Maximize.TileCommand) == "" {
		return fmt.Errorf("%w: maximize.tile_command is required for the external strategy", ErrInvalid)
	}
	if _, err := c.timeout(); err != nil {
		return fmt.Errorf("%w: maximize.timeout: %v", ErrInvalid, err)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return nil
}

// Options converts the settings into chrome options.
func (c Config) Options() ([]flexchrome.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	style, _ := flexchrome.ParsePlatformStyle(c.Chrome.Style)
	strategy, _ := flexchrome.ParseMaximizeStrategy(c.Maximize.Strategy)

	opts := []flexchrome.Option{
		flexchrome.WithPlatformStyle(style),
		flexchrome.WithAlwaysShowGlyphs(c.Chrome.AlwaysShowGlyphs),
	}
	if c.Chrome.Title != "" {
		opts = append(opts, flexchrome.WithTitle(c.Chrome.Title))
	}

	switch strategy {
	case flexchrome.MaximizeExternal:
		timeout, _ := c.timeout()
		opts = append(opts, flexchrome.WithExternalMaximize(flexchrome.CommandAction{
			Commands: map[string]string{flexchrome.ActionTile: c.Maximize.TileCommand},
			Timeout:  timeout,
		}))
	default:
		opts = append(opts, flexchrome.WithStandardMaximize())
	}
	return opts, nil
}

// LogLevel returns the configured log level.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.WarnLevel
	}
	return level
}

func (c Config) timeout() (time.Duration, error) {
	if strings.TrimSpace(c.Maximize.Timeout) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Maximize.Timeout)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %s", d)
	}
	return d, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
