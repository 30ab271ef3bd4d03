// Package config — .packlang.yaml configuration file support.
//
// When a .packlang.yaml exists in the project root it declares the
// workspace layout; otherwise the conventional defaults apply (language
// files under lang/, base language en_us, TODO marker "[TODO]").
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the project root.
const FileName = ".packlang.yaml"

// Config is the top-level .packlang.yaml structure.
type Config struct {
	// BaseLang is the authoritative source language code (default "en_us").
	BaseLang string `yaml:"base_lang,omitempty"`
	// LangDir is the language tree directory relative to the project root
	// (default "lang").
	LangDir string `yaml:"lang_dir,omitempty"`
	// TodoMarker is the reserved prefix marking a value as intentionally
	// left untranslated (default "[TODO]").
	TodoMarker string `yaml:"todo_marker,omitempty"`
	// Languages optionally restricts which translated languages commands
	// operate on. Empty means all discovered languages.
	Languages []string `yaml:"languages,omitempty"`
}

// Default returns the conventional configuration.
func Default() *Config {
	return &Config{
		BaseLang:   "en_us",
		LangDir:    "lang",
		TodoMarker: "[TODO]",
	}
}

// Load reads .packlang.yaml from rootDir. A missing file yields Default().
func Load(rootDir string) (*Config, error) {
	path := filepath.Join(rootDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.BaseLang == "" {
		cfg.BaseLang = "en_us"
	}
	if cfg.LangDir == "" {
		cfg.LangDir = "lang"
	}
	return cfg, nil
}

// LangRoot returns the absolute language tree directory for a project root.
func (c *Config) LangRoot(rootDir string) string {
	return filepath.Join(rootDir, c.LangDir)
}

// Wants reports whether lang is within the configured language allow-list.
func (c *Config) Wants(lang string) bool {
	if len(c.Languages) == 0 {
		return true
	}
	for _, l := range c.Languages {
		if l == lang {
			return true
		}
	}
	return false
}
