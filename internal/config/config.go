// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/smileynet/contacts/internal/prefs"
	"github.com/smileynet/contacts/internal/source"
)

// Config holds all contacts configuration.
type Config struct {
	Source Source `yaml:"source"`
	Prefs  Prefs  `yaml:"prefs"`
	Log    Log    `yaml:"log"`
}

// Source holds remote contact source settings.
type Source struct {
	Endpoint  string `yaml:"endpoint"`
	UserAgent string `yaml:"user_agent"`
}

// Prefs holds preference store settings.
type Prefs struct {
	Path string `yaml:"path"`
}

// Log holds logging settings. An empty File disables logging.
type Log struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Source: Source{
			Endpoint:  source.DefaultEndpoint,
			UserAgent: "contacts",
		},
		Prefs: Prefs{
			Path: prefs.DefaultPath(),
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Source.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("config: source.endpoint must be an absolute http(s) URL, got %q", c.Source.Endpoint)
	}
	if c.Prefs.Path == "" {
		return errors.New("config: prefs.path cannot be empty")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("config: log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: CONTACTS_ENDPOINT, CONTACTS_PREFS_PATH,
// CONTACTS_LOG_FILE, CONTACTS_LOG_LEVEL.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("CONTACTS_ENDPOINT"); v != "" {
		c.Source.Endpoint = v
	}
	if v := os.Getenv("CONTACTS_PREFS_PATH"); v != "" {
		c.Prefs.Path = v
	}
	if v := os.Getenv("CONTACTS_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("CONTACTS_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Source *rawSource `yaml:"source"`
	Prefs  *rawPrefs  `yaml:"prefs"`
	Log    *rawLog    `yaml:"log"`
}

type rawSource struct {
	Endpoint  *string `yaml:"endpoint"`
	UserAgent *string `yaml:"user_agent"`
}

type rawPrefs struct {
	Path *string `yaml:"path"`
}

type rawLog struct {
	File  *string `yaml:"file"`
	Level *string `yaml:"level"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Source != nil {
		if layer.Source.Endpoint != nil {
			c.Source.Endpoint = *layer.Source.Endpoint
		}
		if layer.Source.UserAgent != nil {
			c.Source.UserAgent = *layer.Source.UserAgent
		}
	}
	if layer.Prefs != nil {
		if layer.Prefs.Path != nil {
			c.Prefs.Path = *layer.Prefs.Path
		}
	}
	if layer.Log != nil {
		if layer.Log.File != nil {
			c.Log.File = *layer.Log.File
		}
		if layer.Log.Level != nil {
			c.Log.Level = *layer.Log.Level
		}
	}
}
