// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package config loads user settings for the jview tool.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Names of the output views.
const (
	ViewTree      = "tree"
	ViewFormatted = "formatted"
)

// Config holds the settings for the jview tool.
type Config struct {
	// The view shown first: "tree" or "formatted".
	View string `yaml:"view"`

	// Accept comments and trailing commas in the input.
	Lenient bool `yaml:"lenient"`

	// Expand every array and object when a document is loaded.
	ExpandAll bool `yaml:"expand_all"`

	Colors Colors `yaml:"colors"`
}

// Colors are the display colors for each kind of value. Each is a color
// understood by lipgloss, such as "#34d399" or "212".
type Colors struct {
	String  string `yaml:"string"`
	Number  string `yaml:"number"`
	Boolean string `yaml:"boolean"`
	Null    string `yaml:"null"`
	Array   string `yaml:"array"`
	Object  string `yaml:"object"`
	Key     string `yaml:"key"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		View: ViewTree,
		Colors: Colors{
			String:  "#34d399", // emerald
			Number:  "#60a5fa", // blue
			Boolean: "#c084fc", // purple
			Null:    "#6b7280", // gray
			Array:   "#fb923c", // orange
			Object:  "#fb7185", // rose
			Key:     "#93c5fd",
		},
	}
}

// DefaultPath returns the default location of the configuration file,
// $XDG_CONFIG_HOME/jview/config.yaml or its platform equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".jview", "config.yaml")
	}
	return filepath.Join(dir, "jview", "config.yaml")
}

// Load reads the configuration from the YAML file at path. Settings not
// present in the file keep their default values, and if the file does not
// exist Load returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes c as YAML to the file at path, creating its directory if
// needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate reports an error if c has invalid settings.
func (c *Config) Validate() error {
	switch c.View {
	case ViewTree, ViewFormatted:
		return nil
	default:
		return fmt.Errorf("unknown view %q (want %q or %q)", c.View, ViewTree, ViewFormatted)
	}
}
