// Package config provides configuration structures and loading for
// translation backends.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the per-project configuration file name.
const ConfigFileName = "po-translate.yaml"

// Config holds the complete po-translate configuration.
type Config struct {
	DefaultSourceLang string             `yaml:"default_source_lang"`
	DefaultTargetLang string             `yaml:"default_target_lang"`
	Backends          map[string]Backend `yaml:"backends"`
	Cache             CacheConfig        `yaml:"cache"`
}

// Backend holds configuration for a single translation backend command.
type Backend struct {
	// Cmd is the command and arguments. Arguments are Go text templates
	// with {{.source}}, {{.target}} and {{.text}} placeholders.
	Cmd []string `yaml:"cmd"`

	// Output is "text" (trimmed stdout is the translation, the default)
	// or "json" (translation extracted from a JSON object on stdout).
	Output string `yaml:"output"`

	// Timeout in seconds for one backend invocation. Zero means the
	// default of 20 seconds.
	Timeout int `yaml:"timeout"`
}

// CacheConfig holds translation-memory cache settings.
type CacheConfig struct {
	Enabled *bool  `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// CacheEnabled returns whether the translation memory is enabled.
// Unset means enabled.
func (v *Config) CacheEnabled() bool {
	return v.Cache.Enabled == nil || *v.Cache.Enabled
}

// CachePath returns the cache database path, defaulting to
// ~/.po-translate/memory.db.
func (v *Config) CachePath() string {
	if v.Cache.Path != "" {
		return v.Cache.Path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".po-translate", "memory.db")
	}
	return filepath.Join(home, ".po-translate", "memory.db")
}

// DefaultConfig returns the built-in configuration: translate-shell as the
// only backend, en -> id languages.
func DefaultConfig() *Config {
	return &Config{
		DefaultSourceLang: "en",
		DefaultTargetLang: "id",
		Backends: map[string]Backend{
			"trans": {
				Cmd: []string{
					"trans", "-brief", "-no-ansi",
					"{{.source}}:{{.target}}", "{{.text}}",
				},
				Output: "text",
			},
		},
	}
}

// LoadConfig loads the merged configuration. Sources in increasing
// priority: built-in defaults, ~/.po-translate.yaml, ./po-translate.yaml
// (or projectDir/po-translate.yaml when projectDir is not empty), and the
// explicit file given with --config. A missing file at any level is not an
// error; a present but unparsable file is.
func LoadConfig(explicitFile, projectDir string) (*Config, error) {
	cfg := DefaultConfig()

	if home, err := os.UserHomeDir(); err == nil {
		if err := mergeConfigFile(cfg, filepath.Join(home, "."+ConfigFileName), false); err != nil {
			return nil, err
		}
	}

	if projectDir == "" {
		projectDir = "."
	}
	if err := mergeConfigFile(cfg, filepath.Join(projectDir, ConfigFileName), false); err != nil {
		return nil, err
	}

	if explicitFile != "" {
		if err := mergeConfigFile(cfg, explicitFile, true); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// mergeConfigFile overlays one YAML file onto cfg. When required is false,
// a missing file is skipped silently.
func mergeConfigFile(cfg *Config, path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if overlay.DefaultSourceLang != "" {
		cfg.DefaultSourceLang = overlay.DefaultSourceLang
	}
	if overlay.DefaultTargetLang != "" {
		cfg.DefaultTargetLang = overlay.DefaultTargetLang
	}
	if len(overlay.Backends) > 0 {
		cfg.Backends = overlay.Backends
	}
	if overlay.Cache.Enabled != nil {
		cfg.Cache.Enabled = overlay.Cache.Enabled
	}
	if overlay.Cache.Path != "" {
		cfg.Cache.Path = overlay.Cache.Path
	}

	return nil
}
