// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package diag

import (
	"strings"

	"github.com/creachadair/jview/ast"
)

// IndentUnit is the indentation used by Format.
const IndentUnit = "  "

// Format renders v as JSON with two spaces of indentation per level.
func Format(v ast.Value) string { return ast.Indent(v, IndentUnit) }

// Minify renders v as JSON with no insignificant whitespace.
func Minify(v ast.Value) string { return ast.Indent(v, "") }

// Unescape undoes one level of string escaping in text.
//
// If the text, with leading and trailing whitespace removed, is a JSON string
// literal, the result is the contents of that string. Otherwise, the escapes
// \", \n, \r, \t and \\ are replaced, in that order, each by a single pass over
// the whole text. The passes are not repeated, so text escaped more than once
// is only partly unescaped.
func Unescape(text string) string {
	text = strings.TrimSpace(text)
	if v, err := ast.ParseSingle(strings.NewReader(text)); err == nil {
		if s, ok := v.(ast.String); ok {
			return string(s)
		}
	}
	for _, r := range unescapePasses {
		text = strings.ReplaceAll(text, r.old, r.new)
	}
	return text
}

var unescapePasses = []struct{ old, new string }{
	{`\"`, `"`},
	{`\n`, "\n"},
	{`\r`, "\r"},
	{`\t`, "\t"},
	{`\\`, `\`},
}
