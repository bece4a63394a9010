// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package editor

import (
	"github.com/creachadair/jview/ast"
	"github.com/creachadair/jview/diag"
)

// State is a snapshot of the editor: the current text and the result of
// parsing it.
//
// Parsed is non-nil exactly when Err is empty, except that for empty (or
// all-whitespace) text both are absent. ErrIndex is diag.NoIndex unless Err
// is set, and otherwise satisfies 0 <= ErrIndex <= len(Text) when known.
type State struct {
	Text     string
	Parsed   ast.Value // nil if the text is empty or invalid
	Err      string    // "" unless the text is invalid
	ErrIndex int       // offset of the error in Text, or diag.NoIndex
}

// FromResult constructs the State for text from the result of parsing it.
func FromResult(text string, r diag.Result) State {
	st := State{Text: text, ErrIndex: diag.NoIndex}
	switch r.Kind {
	case diag.Success:
		st.Parsed = r.Value
	case diag.Failure:
		st.Err = r.Message
		if r.Index >= 0 && r.Index <= len(text) {
			st.ErrIndex = r.Index
		}
	}
	return st
}

// Valid reports whether the text parsed successfully.
func (s State) Valid() bool { return s.Parsed != nil }

// HasError reports whether the text failed to parse.
func (s State) HasError() bool { return s.Err != "" }

// IsEmpty reports whether the text is empty or all whitespace.
func (s State) IsEmpty() bool { return s.Parsed == nil && s.Err == "" }
