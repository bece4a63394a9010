// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package highlight marks the location of a syntax error in source text.
//
// Compute splits the text around the error offset into an Overlay. An
// Overlay renders the text with the offending character styled. A Layout
// wraps the text the way the editor does, so Locate and Paint can draw the
// mark over the editor's own rendering at the right row and cell.
package highlight

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// An Overlay is source text split around a marked character.
type Overlay struct {
	Before string // text preceding the mark
	Mark   string // the marked text; "" if there is no mark
	After  string // text following the mark

	// Index is the byte offset of the mark in the original text, or -1 if
	// there is no mark.
	Index int
}

// Compute returns the overlay for text with a mark at byte offset index.
// If index < 0, there is no mark. Otherwise index is clamped to the length of
// the text. An index at the end of the text marks a single space appended
// after it. An index inside a multi-byte rune is moved back to the start of
// that rune. A newline or carriage return is marked as a space, and a
// newline is kept in After so that line breaks are preserved.
func Compute(text string, index int) Overlay {
	if index < 0 {
		return Overlay{Before: text, Index: -1}
	}
	index = min(index, len(text))
	for index > 0 && index < len(text) && !utf8.RuneStart(text[index]) {
		index--
	}
	if index == len(text) {
		return Overlay{Before: text, Mark: " ", Index: index}
	}
	r, n := utf8.DecodeRuneInString(text[index:])
	switch r {
	case '\n':
		return Overlay{Before: text[:index], Mark: " ", After: text[index:], Index: index}
	case '\r':
		return Overlay{Before: text[:index], Mark: " ", After: text[index+n:], Index: index}
	}
	return Overlay{Before: text[:index], Mark: text[index : index+n], After: text[index+n:], Index: index}
}

// HasMark reports whether o has a marked character.
func (o Overlay) HasMark() bool { return o.Index >= 0 }

// Text returns the unstyled text of the overlay.
func (o Overlay) Text() string { return o.Before + o.Mark + o.After }

// Render returns the text of the overlay with the mark rendered in the given
// style.
func (o Overlay) Render(mark lipgloss.Style) string {
	if !o.HasMark() {
		return o.Before
	}
	return o.Before + mark.Render(o.Mark) + o.After
}

// Line reports the 0-based line and the 0-based rune column of the mark.
// It reports -1, -1 if there is no mark.
func (o Overlay) Line() (line, col int) {
	if !o.HasMark() {
		return -1, -1
	}
	line = strings.Count(o.Before, "\n")
	last := o.Before[strings.LastIndexByte(o.Before, '\n')+1:]
	return line, utf8.RuneCountInString(last)
}
