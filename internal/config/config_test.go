// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/creachadair/jview/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks the variables consulted by the config package, so that the
// caller's environment does not leak into the tests.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		config.EnvAPIKey, config.EnvProvider, config.EnvModel,
		config.EnvLogLevel, config.EnvLogFile,
		"GEMINI_API_KEY", "OPENAI_API_KEY",
	} {
		t.Setenv(name, "")
	}
}

func envMap(m map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := m[name]
		return v, ok
	}
}

func TestMerge(t *testing.T) {
	cfg := config.Default()
	err := cfg.Merge([]byte(`{
  // Use a local server.
  "provider": "openai",
  "base_url": "http://localhost:11434/v1/",
  "lenient": true,
  "theme": "light", // trailing comma below
}`))
	require.NoError(t, err)

	want := config.Default()
	want.Provider = "openai"
	want.BaseURL = "http://localhost:11434/v1/"
	want.Lenient = true
	want.Theme = "light"
	assert.Equal(t, want, cfg)
}

func TestMergeErrors(t *testing.T) {
	tests := []struct {
		name, input string
	}{
		{"Syntax", `{"provider": }`},
		{"UnknownField", `{"api_key": "secret"}`},
		{"WrongType", `{"lenient": "yes"}`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := config.Default()
			assert.Error(t, cfg.Merge([]byte(test.input)))
		})
	}
}

func TestMergeExpandsEnv(t *testing.T) {
	t.Setenv("JVIEW_TEST_DIR", `/tmp/a "b"`)
	cfg := config.Default()
	require.NoError(t, cfg.Merge([]byte(`{"log_file": "${JVIEW_TEST_DIR}/jview.log"}`)))
	assert.Equal(t, `/tmp/a "b"/jview.log`, cfg.LogFile)
}

func TestApplyEnv(t *testing.T) {
	t.Run("ProviderKey", func(t *testing.T) {
		cfg := config.Default()
		cfg.ApplyEnv(envMap(map[string]string{
			"JVIEW_PROVIDER": "openai",
			"OPENAI_API_KEY": "sk-openai",
			"GEMINI_API_KEY": "gm-key",
		}))
		assert.Equal(t, "openai", cfg.Provider)
		assert.Equal(t, "sk-openai", cfg.APIKey)
	})

	t.Run("GenericKeyWins", func(t *testing.T) {
		cfg := config.Default()
		cfg.ApplyEnv(envMap(map[string]string{
			"API_KEY":        "generic",
			"GEMINI_API_KEY": "gm-key",
		}))
		assert.Equal(t, "generic", cfg.APIKey)
	})

	t.Run("EmptyIgnored", func(t *testing.T) {
		cfg := config.Default()
		cfg.Model = "from-file"
		cfg.ApplyEnv(envMap(map[string]string{"JVIEW_MODEL": ""}))
		assert.Equal(t, "from-file", cfg.Model)
		assert.Empty(t, cfg.APIKey)
	})

	t.Run("Logging", func(t *testing.T) {
		cfg := config.Default()
		cfg.ApplyEnv(envMap(map[string]string{
			"JVIEW_LOG_LEVEL": "debug",
			"JVIEW_LOG_FILE":  "/tmp/jview.log",
		}))
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "/tmp/jview.log", cfg.LogFile)
	})
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	t.Run("NoFile", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("MissingExplicit", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nonesuch.hujson"))
		assert.Error(t, err)
	})

	t.Run("Precedence", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)
		path := config.DefaultPath()
		assert.Equal(t, filepath.Join(dir, "jview", "config.hujson"), path)

		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
		require.NoError(t, os.WriteFile(path, []byte(`{
  "model": "file-model",
  "sample_topic": "birds",
  "log_level": "warn",
}`), 0600))
		t.Setenv("JVIEW_MODEL", "env-model")
		t.Setenv("API_KEY", "secret")

		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, "env-model", cfg.Model)
		assert.Equal(t, "birds", cfg.SampleTopic)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "secret", cfg.APIKey)
		assert.Equal(t, "gemini", cfg.Provider)
	})

	t.Run("Invalid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.hujson")
		require.NoError(t, os.WriteFile(path, []byte(`{"theme": "neon"}`), 0600))
		_, err := config.Load(path)
		assert.ErrorContains(t, err, `unknown theme "neon"`)
	})
}

func TestValidate(t *testing.T) {
	assert.NoError(t, config.Default().Validate())

	bad := config.Default()
	bad.Provider = "claude"
	assert.ErrorContains(t, bad.Validate(), "unknown provider")

	bad = config.Default()
	bad.Language = "fr"
	assert.ErrorContains(t, bad.Validate(), "unknown language")
}
