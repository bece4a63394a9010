// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package config loads the settings of the JSON viewer.
//
// Settings are merged from several sources. Later sources override earlier
// ones:
//
//  1. Built-in defaults (see Default).
//  2. A HuJSON configuration file (JSON with comments and trailing commas).
//  3. Environment variables.
//  4. Command-line flags, applied by the caller.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/creachadair/jview"
	"github.com/tailscale/hujson"
)

// Config holds the settings of the viewer.
type Config struct {
	Provider    string `json:"provider"`     // "gemini" or "openai"
	Model       string `json:"model"`        // "" means the provider default
	BaseURL     string `json:"base_url"`     // OpenAI-compatible endpoint
	Theme       string `json:"theme"`        // "dark" or "light"
	Language    string `json:"language"`     // "en", "zh", or "" to detect
	Lenient     bool   `json:"lenient"`      // accept comments and trailing commas
	SampleTopic string `json:"sample_topic"` // topic of generated samples
	LogFile     string `json:"log_file"`     // "" discards logs
	LogLevel    string `json:"log_level"`

	// APIKey is the credential for the AI provider. It is read only from the
	// environment, never from the file.
	APIKey string `json:"-"`
}

// DefaultSampleTopic is the topic of generated sample documents.
const DefaultSampleTopic = "space exploration mission data"

// Default returns the built-in default settings.
func Default() Config {
	return Config{
		Provider:    "gemini",
		Theme:       "dark",
		SampleTopic: DefaultSampleTopic,
		LogLevel:    "info",
	}
}

// Environment variables consulted by ApplyEnv.
const (
	EnvAPIKey   = "API_KEY"
	EnvProvider = "JVIEW_PROVIDER"
	EnvModel    = "JVIEW_MODEL"
	EnvLogLevel = "JVIEW_LOG_LEVEL"
	EnvLogFile  = "JVIEW_LOG_FILE"
)

// providerKeys maps each provider to its specific credential variable.
var providerKeys = map[string]string{
	"gemini": "GEMINI_API_KEY",
	"openai": "OPENAI_API_KEY",
}

// DefaultPath returns the default location of the configuration file,
// $XDG_CONFIG_HOME/jview/config.hujson. It returns "" if no configuration
// directory can be found.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "jview", "config.hujson")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "jview", "config.hujson")
	}
	return ""
}

// Load returns the default settings updated from the file at path and then
// from the environment. If path == "", DefaultPath is used, and a missing
// file is not an error. A missing file is an error if path was given.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) && !explicit {
			// OK, use defaults
		} else if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		} else if err := cfg.Merge(data); err != nil {
			return Config{}, fmt.Errorf("config %q: %w", path, err)
		}
	}
	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Merge updates c with the settings in data, a HuJSON object. Fields not
// mentioned in data are not modified. Unknown fields are an error.
func (c *Config) Merge(data []byte) error {
	std, err := hujson.Standardize(data)
	if err != nil {
		return fmt.Errorf("invalid syntax: %w", err)
	}
	std = expandEnvVars(std)
	dec := json.NewDecoder(bytes.NewReader(std))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// ApplyEnv updates c from environment variables, using lookup to read them.
// The credential is taken from API_KEY if set, otherwise from the variable
// specific to the selected provider.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	set := func(dst *string, name string) {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}
	set(&c.Provider, EnvProvider)
	set(&c.Model, EnvModel)
	set(&c.LogLevel, EnvLogLevel)
	set(&c.LogFile, EnvLogFile)
	if name, ok := providerKeys[c.Provider]; ok {
		set(&c.APIKey, name)
	}
	set(&c.APIKey, EnvAPIKey)
}

// Validate reports an error if c contains unsupported settings.
func (c Config) Validate() error {
	if _, ok := providerKeys[c.Provider]; !ok {
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	switch c.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	switch c.Language {
	case "", "en", "zh":
	default:
		return fmt.Errorf("unknown language %q", c.Language)
	}
	return nil
}

var envVarRegex = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnvVars replaces ${VAR} references in string values of the
// standardized JSON data with the values of environment variables. The
// substituted text is quoted so that it cannot change the structure.
func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(m []byte) []byte {
		v := os.Getenv(string(m[2 : len(m)-1]))
		q := jview.Quote(v)
		return []byte(q[1 : len(q)-1])
	})
}
