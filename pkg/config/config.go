// Package config loads the YAML configuration shared by the client and the
// server.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/qnkhuat/stackerterm/pkg/logger"
	"github.com/qnkhuat/stackerterm/pkg/stacker"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme = "classic"
	appName      = "stackerterm"
)

type Config struct {
	Player string         `yaml:"player"`
	Theme  string         `yaml:"theme"`
	Themes []ThemeHex     `yaml:"themes,omitempty"`
	Game   stacker.Config `yaml:"game"`
	Keys   Keys           `yaml:"keys"`
	Log    logger.Options `yaml:"log"`
}

// Keys maps the client inputs to key names. A name is either a single
// character or a tcell key name such as "Enter" or "Ctrl-C".
type Keys struct {
	Drop    []string `yaml:"drop"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
}

func Default() Config {
	return Config{
		Theme: DefaultTheme,
		Game:  stacker.DefaultConfig(),
		Keys: Keys{
			Drop:    []string{"Enter", "Space"},
			Restart: []string{"r", "R"},
			Quit:    []string{"Esc", "q", "Ctrl-C"},
		},
		Log: logger.DefaultOptions(),
	}
}

// DefaultPath returns the configuration file location under the user
// configuration directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, appName, "config.yaml")
}

// Load reads the file at path over the defaults. A missing file is only an
// error when it was asked for explicitly; pass explicit=false for the
// default location.
func Load(path string, explicit bool) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}

	return c, nil
}

func (c Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return err
	}

	if len(c.Keys.Drop) == 0 {
		return errors.New("no key bound to drop")
	} else if len(c.Keys.Restart) == 0 {
		return errors.New("no key bound to restart")
	}

	return nil
}

// Write saves c to path, creating its directory when needed.
func (c Config) Write(path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return os.WriteFile(path, b, 0644)
}
