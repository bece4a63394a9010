// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package highlight_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/creachadair/jview/diag"
	"github.com/creachadair/jview/highlight"
	"github.com/google/go-cmp/cmp"
)

// bracket renders the mark in brackets, so tests do not depend on the
// terminal color profile.
var bracket = lipgloss.NewStyle().Transform(func(s string) string { return "[" + s + "]" })

func TestCompute(t *testing.T) {
	tests := []struct {
		text  string
		index int
		want  highlight.Overlay
	}{
		{"abc", -1, highlight.Overlay{Before: "abc", Index: -1}},
		{"", 0, highlight.Overlay{Mark: " ", Index: 0}},
		{"abc", 0, highlight.Overlay{Mark: "a", After: "bc", Index: 0}},
		{"abc", 1, highlight.Overlay{Before: "a", Mark: "b", After: "c", Index: 1}},
		{"abc", 3, highlight.Overlay{Before: "abc", Mark: " ", Index: 3}},
		{"abc", 99, highlight.Overlay{Before: "abc", Mark: " ", Index: 3}},

		// Newlines are marked as spaces, and the line break is kept.
		{"a\nb", 1, highlight.Overlay{Before: "a", Mark: " ", After: "\nb", Index: 1}},
		{"a\r\nb", 1, highlight.Overlay{Before: "a", Mark: " ", After: "\nb", Index: 1}},

		// Offsets inside a multi-byte rune move to its start.
		{"x日本", 1, highlight.Overlay{Before: "x", Mark: "日", After: "本", Index: 1}},
		{"x日本", 2, highlight.Overlay{Before: "x", Mark: "日", After: "本", Index: 1}},
		{"x日本", 4, highlight.Overlay{Before: "x日", Mark: "本", Index: 4}},
	}
	for _, test := range tests {
		got := highlight.Compute(test.text, test.index)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Compute(%q, %d) (-want, +got):\n%s", test.text, test.index, diff)
		}
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		text  string
		index int
		want  string
	}{
		{`{"a": x}`, 6, `{"a": [x]}`},
		{`{"a": 1`, 7, `{"a": 1[ ]`},
		{"[1,\n", 3, "[1,[ ]\n"},
		{`[1, 2]`, -1, `[1, 2]`},
	}
	for _, test := range tests {
		got := highlight.Compute(test.text, test.index).Render(bracket)
		if got != test.want {
			t.Errorf("Render(%q, %d): got %q, want %q", test.text, test.index, got, test.want)
		}
	}
}

// The index reported by the diagnostics engine marks the offending
// character.
func TestRenderDiagnostic(t *testing.T) {
	tests := []struct {
		text, want string
	}{
		{`{"a": tru}`, `{"a": [t]ru}`},
		{`{"a" 1}`, `{"a" [1]}`},
		{`[1, 2,]`, `[1, 2,[]]`},
		{`{"a": 1`, `{"a": 1[ ]`},
	}
	for _, test := range tests {
		res := diag.Parse(test.text)
		if res.Kind != diag.Failure {
			t.Fatalf("Parse %q: got %v, want failure", test.text, res.Kind)
		}
		got := highlight.Compute(test.text, res.Index).Render(bracket)
		if got != test.want {
			t.Errorf("Render %q [%s]: got %q, want %q", test.text, res.Message, got, test.want)
		}
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		text      string
		index     int
		line, col int
	}{
		{"abc", -1, -1, -1},
		{"abc", 2, 0, 2},
		{"a\nbc", 3, 1, 1},
		{"a\n日本x", 8, 1, 2},
		{"a\n", 2, 1, 0},
	}
	for _, test := range tests {
		line, col := highlight.Compute(test.text, test.index).Line()
		if line != test.line || col != test.col {
			t.Errorf("Line(%q, %d): got %d:%d, want %d:%d",
				test.text, test.index, line, col, test.line, test.col)
		}
	}
}
