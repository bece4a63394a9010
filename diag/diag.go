// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package diag implements the parse-and-diagnose step of the JSON viewer.
//
// Parse classifies a text as empty, a successfully-parsed value, or a failure
// with a human-readable message and a best-effort byte offset of the error.
// Parse never panics, and a failure is reported as data in the Result rather
// than as an error value.
package diag

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/creachadair/jview/ast"
)

// NoIndex is the value of Result.Index when no error offset is available.
const NoIndex = -1

// Kind identifies the outcome of a parse.
type Kind int

// Constants defining the valid Kind values.
const (
	Empty   Kind = iota // the text is empty or all whitespace
	Success             // the text is a valid JSON value
	Failure             // the text is not valid JSON
)

var kindStr = [...]string{Empty: "empty", Success: "success", Failure: "failure"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindStr) {
		return "invalid"
	}
	return kindStr[k]
}

// A Result is the outcome of parsing a text.
type Result struct {
	Kind Kind

	// Value is the parsed value, and is non-nil if and only if Kind == Success.
	Value ast.Value

	// Message describes the error, and is non-empty if and only if
	// Kind == Failure.
	Message string

	// Index is the byte offset in the text where the failure was detected, or
	// NoIndex. It is NoIndex unless Kind == Failure.
	Index int
}

// OK reports whether r holds a parsed value.
func (r Result) OK() bool { return r.Kind == Success }

// An Option is a setting for Parse.
type Option func(*ast.Options)

// Lenient returns an option that allows (true) or rejects (false) comments
// and trailing commas in the input. By default, only standard JSON is
// accepted.
func Lenient(ok bool) Option {
	return func(o *ast.Options) {
		o.AllowComments = ok
		o.AllowTrailingCommas = ok
	}
}

// Parse parses text as a single JSON value.
func Parse(text string, opts ...Option) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Kind: Empty, Index: NoIndex}
	}
	var po ast.Options
	for _, opt := range opts {
		opt(&po)
	}
	v, err := po.ParseSingle(strings.NewReader(text))
	if err != nil {
		msg := err.Error()
		return Result{Kind: Failure, Message: msg, Index: ErrorIndex(msg, text)}
	}
	return Result{Kind: Success, Value: v, Index: NoIndex}
}

var positionRE = regexp.MustCompile(`at position (\d+)`)

// ErrorIndex recovers the byte offset of a parse error in text from the
// error message.
//
// If msg contains "at position N", the result is N. Otherwise, if msg
// contains "unexpected end of input" (in any case), the result is len(text),
// the position where more input was expected. Otherwise the result is
// NoIndex.
func ErrorIndex(msg, text string) int {
	if m := positionRE.FindStringSubmatch(msg); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
		return NoIndex
	}
	if strings.Contains(strings.ToLower(msg), "unexpected end of input") {
		return len(text)
	}
	return NoIndex
}
