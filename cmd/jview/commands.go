// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creachadair/jview"
	"github.com/creachadair/jview/diag"
	"github.com/creachadair/jview/highlight"
	"github.com/spf13/cobra"
)

// errInvalid reports that the input is not valid JSON. The diagnostic has
// already been printed when it is returned.
var errInvalid = errors.New("invalid input")

func newCheckCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file|-]",
		Short: "Report whether the input is valid JSON",
		Long: `Parse the input and report the first syntax error, if any, with its
line and column and an excerpt of the text around it.

The command exits with a non-zero status if the input is invalid or empty.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			name := "<stdin>"
			if len(args) != 0 && args[0] != "-" {
				name = args[0]
			}
			out := cmd.OutOrStdout()
			res := diag.Parse(text, diag.Lenient(cfg.Lenient))
			switch res.Kind {
			case diag.Success:
				fmt.Fprintf(out, "%s: ok\n", name)
				return nil
			case diag.Empty:
				fmt.Fprintf(out, "%s: empty input\n", name)
				return errInvalid
			}
			if res.Index == diag.NoIndex {
				fmt.Fprintf(out, "%s: %s\n", name, res.Message)
				return errInvalid
			}
			pos := jview.Position(text, res.Index)
			fmt.Fprintf(out, "%s:%d:%d: %s\n", name, pos.Line, pos.Column+1, res.Message)
			fmt.Fprint(out, caret(text, res.Index))
			return errInvalid
		},
	}
}

// caret renders the line of text containing offset, with a caret under the
// character at offset.
func caret(text string, offset int) string {
	o := highlight.Compute(text, offset)
	line, col := o.Line()
	lines := strings.Split(o.Text(), "\n")
	return fmt.Sprintf("  %s\n  %s^\n", lines[line], strings.Repeat(" ", col))
}

func newFmtCmd(f *flags) *cobra.Command {
	var minify bool
	cmd := &cobra.Command{
		Use:   "fmt [file|-]",
		Short: "Print the input as formatted JSON",
		Long: `Parse the input and print it with two spaces of indentation per level,
or with no insignificant whitespace if --minify is set.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			res := diag.Parse(text, diag.Lenient(cfg.Lenient))
			switch res.Kind {
			case diag.Empty:
				return errors.New("empty input")
			case diag.Failure:
				return fmt.Errorf("invalid JSON: %s", res.Message)
			}
			if minify {
				fmt.Fprintln(cmd.OutOrStdout(), diag.Minify(res.Value))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), diag.Format(res.Value))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&minify, "minify", false, "remove insignificant whitespace")
	return cmd
}
