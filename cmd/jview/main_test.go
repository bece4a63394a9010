// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creachadair/jview/assist"
	"github.com/creachadair/jview/internal/config"
	"github.com/creachadair/jview/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command line args with the given stdin, and returns its
// output.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, v := range []string{"API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY", "JVIEW_PROVIDER"} {
		t.Setenv(v, "")
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCheck(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		out, err := run(t, `{"a": [1, 2]}`, "check")
		require.NoError(t, err)
		assert.Equal(t, "<stdin>: ok\n", out)
	})
	t.Run("Invalid", func(t *testing.T) {
		out, err := run(t, "{\n  \"a\": tru}\n", "check", "-")
		assert.ErrorIs(t, err, errInvalid)
		assert.Equal(t, "<stdin>:2:8: unknown constant \"tru\" at position 9\n"+
			"    \"a\": tru}\n"+
			strings.Repeat(" ", 9)+"^\n", out)
	})
	t.Run("Truncated", func(t *testing.T) {
		out, err := run(t, `[1, 2`, "check")
		assert.ErrorIs(t, err, errInvalid)
		assert.True(t, strings.HasPrefix(out, "<stdin>:1:6: unexpected end of input"), "got %q", out)
		assert.True(t, strings.HasSuffix(out, "\n  [1, 2 \n"+strings.Repeat(" ", 7)+"^\n"), "got %q", out)
	})
	t.Run("Empty", func(t *testing.T) {
		out, err := run(t, "  \n", "check")
		assert.ErrorIs(t, err, errInvalid)
		assert.Equal(t, "<stdin>: empty input\n", out)
	})
	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "x.json")
		require.NoError(t, os.WriteFile(path, []byte(`[1,]`), 0600))

		out, err := run(t, "", "check", path)
		assert.ErrorIs(t, err, errInvalid)
		assert.Contains(t, out, path+":1:4: ")

		out, err = run(t, "", "check", "--lenient", path)
		require.NoError(t, err)
		assert.Equal(t, path+": ok\n", out)
	})
	t.Run("MissingFile", func(t *testing.T) {
		_, err := run(t, "", "check", filepath.Join(t.TempDir(), "nonesuch.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestFmt(t *testing.T) {
	const input = `{"a":1, "b": [true, null], "c": {}}`

	out, err := run(t, input, "fmt")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": [\n    true,\n    null\n  ],\n  \"c\": {}\n}\n", out)

	out, err = run(t, input, "fmt", "--minify")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":[true,null],"c":{}}`+"\n", out)

	_, err = run(t, `{"a"`, "fmt")
	assert.ErrorContains(t, err, "invalid JSON")

	_, err = run(t, "", "fmt")
	assert.ErrorContains(t, err, "empty input")
}

func TestNewAssistant(t *testing.T) {
	ctx := context.Background()

	t.Run("NoKey", func(t *testing.T) {
		ai, err := newAssistant(ctx, config.Config{Provider: "gemini"})
		require.NoError(t, err)
		_, err = ai.Repair(ctx, "{")
		assert.True(t, errors.Is(err, assist.ErrServiceUnavailable), "got %v", err)
	})
	t.Run("OpenAI", func(t *testing.T) {
		ai, err := newAssistant(ctx, config.Config{Provider: "openai", APIKey: "sk-test"})
		require.NoError(t, err)
		assert.IsType(t, &assist.Client{}, ai)
	})
	t.Run("Gemini", func(t *testing.T) {
		ai, err := newAssistant(ctx, config.Config{Provider: "gemini", APIKey: "test-key"})
		require.NoError(t, err)
		assert.IsType(t, &assist.Client{}, ai)
	})
	t.Run("Unknown", func(t *testing.T) {
		_, err := newAssistant(ctx, config.Config{Provider: "nonesuch", APIKey: "x"})
		assert.Error(t, err)
	})
}

func TestLanguage(t *testing.T) {
	assert.Equal(t, i18n.Chinese, language(config.Config{Language: "zh"}))
	assert.Equal(t, i18n.English, language(config.Config{Language: "en"}))

	t.Setenv("LC_ALL", "zh_CN.UTF-8")
	assert.Equal(t, i18n.Chinese, language(config.Config{}))
}

func TestFlags(t *testing.T) {
	_, err := run(t, "[]", "check", "--config", filepath.Join(t.TempDir(), "missing.hujson"))
	assert.ErrorContains(t, err, "read config")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.hujson")
	require.NoError(t, os.WriteFile(path, []byte(`{
  // accept comments
  "lenient": true,
}`), 0600))
	out, err := run(t, "[1, /* two */ 2,]", "check", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "<stdin>: ok\n", out)
}
