// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jview is an interactive terminal viewer for JSON documents. It
// shows the raw text alongside a collapsible tree, reports syntax errors at
// their position, and can ask an AI model to repair broken input.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/creachadair/jview/assist"
	"github.com/creachadair/jview/assist/gemini"
	"github.com/creachadair/jview/assist/openai"
	"github.com/creachadair/jview/diag"
	"github.com/creachadair/jview/editor"
	"github.com/creachadair/jview/internal/config"
	"github.com/creachadair/jview/internal/i18n"
	"github.com/creachadair/jview/internal/logging"
	"github.com/creachadair/jview/tui"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintf(os.Stderr, "jview: %v\n", err)
		}
		os.Exit(1)
	}
}

// flags are the command-line settings shared by all commands.
type flags struct {
	configPath string
	theme      string
	lang       string
	provider   string
	model      string
	lenient    bool
}

func newRootCmd() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:   "jview [file|-]",
		Short: "Inspect, format, and repair JSON documents",
		Long: `Start an interactive viewer for a JSON document.

The text is read from the named file, or from stdin if the file is "-".
Without an argument, a sample document is shown.

Set API_KEY (or GEMINI_API_KEY / OPENAI_API_KEY) to enable the AI actions.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			closer, err := logging.Configure(logging.Config{Level: cfg.LogLevel, File: cfg.LogFile})
			if err != nil {
				return err
			}
			defer closer.Close()

			text := editor.Welcome
			if len(args) != 0 {
				text, err = readInput(cmd, args)
				if err != nil {
					return err
				}
			}
			ai, err := newAssistant(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			log := logging.NewLogger("main")
			log.WithField("provider", cfg.Provider).WithField("bytes", len(text)).Info("starting viewer")

			ed := editor.New(ai, diag.Lenient(cfg.Lenient))
			return tui.Run(ed, tui.Options{
				Text:        text,
				Theme:       cfg.Theme,
				Lang:        language(cfg),
				SampleTopic: cfg.SampleTopic,
				Context:     cmd.Context(),
			})
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "configuration file path (default "+config.DefaultPath()+")")
	pf.BoolVar(&f.lenient, "lenient", false, "accept comments and trailing commas")
	root.Flags().StringVar(&f.theme, "theme", "", "color theme (dark or light)")
	root.Flags().StringVar(&f.lang, "lang", "", "display language (en or zh)")
	root.Flags().StringVar(&f.provider, "provider", "", "AI provider (gemini or openai)")
	root.Flags().StringVar(&f.model, "model", "", "AI model name")

	root.AddCommand(newCheckCmd(&f), newFmtCmd(&f))
	return root
}

// load reads the configuration and applies flags that were set on cmd.
func (f *flags) load(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	set := func(name string, dst *string, val string) {
		if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
			*dst = val
		}
	}
	set("theme", &cfg.Theme, f.theme)
	set("lang", &cfg.Language, f.lang)
	set("provider", &cfg.Provider, f.provider)
	set("model", &cfg.Model, f.model)
	if cmd.Flags().Changed("lenient") {
		cfg.Lenient = f.lenient
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newAssistant returns the AI assistant selected by cfg. Without a
// credential the assistant is unavailable, but that is not an error.
func newAssistant(ctx context.Context, cfg config.Config) (assist.Assistant, error) {
	if cfg.APIKey == "" {
		return assist.Unavailable{Reason: "no API key is set for " + cfg.Provider}, nil
	}
	switch cfg.Provider {
	case "openai":
		return assist.New(openai.New(cfg.APIKey, cfg.BaseURL, cfg.Model)), nil
	case "gemini":
		m, err := gemini.New(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return assist.New(m), nil
	}
	return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
}

// language returns the display language selected by cfg, or the one from
// the locale if cfg does not choose.
func language(cfg config.Config) i18n.Lang {
	if cfg.Language != "" {
		return i18n.Match(cfg.Language)
	}
	return i18n.Detect(os.LookupEnv)
}

// readInput returns the contents of the file named by args, or of stdin if
// args is empty or names "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}
