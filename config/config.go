package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"lectio/lexicon"
)

// Config holds the settings of the tool. Everything has a working
// default; the file only overrides.
type Config struct {
	// ModelsDir is where fetched lexicon artifacts live.
	ModelsDir string `yaml:"models_dir"`

	// Mirror is the base URL lexicons are fetched from.
	Mirror string `yaml:"mirror"`

	// Treebanks overrides the default treebank per language code,
	// e.g. grc: perseus.
	Treebanks map[string]string `yaml:"treebanks"`
}

// DefaultPath returns ~/.lectio/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}

	return filepath.Join(home, ".lectio", "config.yaml")
}

func defaultModelsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "models"
	}

	return filepath.Join(home, ".lectio", "models")
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ModelsDir: defaultModelsDir(),
		Mirror:    lexicon.DefaultMirror,
		Treebanks: map[string]string{},
	}
}

// Load reads the YAML config at path. A missing file is not an error:
// the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if cfg.ModelsDir == "" {
		cfg.ModelsDir = defaultModelsDir()
	}
	if cfg.Mirror == "" {
		cfg.Mirror = lexicon.DefaultMirror
	}
	if cfg.Treebanks == nil {
		cfg.Treebanks = map[string]string{}
	}

	return cfg, nil
}

// Treebank returns the configured treebank for a language code, empty
// when the language default applies.
func (c Config) Treebank(code string) string {
	return c.Treebanks[code]
}
