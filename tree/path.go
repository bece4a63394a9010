// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/creachadair/jview"
	"github.com/creachadair/jview/jpath"
)

// A Path identifies a node of a tree by the sequence of steps from the root.
// Each step is either a string (an object member name) or an int (an array
// index). The empty Path denotes the root.
type Path []any

// Child returns a copy of p extended by one step, which must be a string or
// an int.
func (p Path) Child(step any) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, step)
}

// Parent returns the path of the parent of p. The parent of the root is the
// root.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return p
	}
	return p[:len(p)-1]
}

// Equal reports whether p and q denote the same node.
func (p Path) Equal(q Path) bool { return p.String() == q.String() }

var simpleName = regexp.MustCompile(`^\w+$`)

// String renders p in JSONPath notation, for example $.a[0]["b c"].
// The result is accepted by ParsePath.
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString("$")
	for _, step := range p {
		switch t := step.(type) {
		case string:
			if simpleName.MatchString(t) {
				sb.WriteString(".")
				sb.WriteString(t)
			} else {
				sb.WriteString("[")
				sb.WriteString(jview.Quote(t))
				sb.WriteString("]")
			}
		case int:
			sb.WriteString("[")
			sb.WriteString(strconv.Itoa(t))
			sb.WriteString("]")
		default:
			fmt.Fprintf(&sb, "[?%v]", t)
		}
	}
	return sb.String()
}

// ParsePath parses a JSONPath expression consisting only of member and
// index steps, for example:
//
//	$
//	$.store.book[0].title
//	$['store']["odd key"][2]
//
// Wildcards, slices, filters, scripts, and recursive descent are not
// supported.
func ParsePath(s string) (Path, error) {
	expr, err := jpath.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	path := make(Path, len(expr))
	for i, step := range expr {
		if step.Kind == jpath.Index {
			path[i] = step.Index
		} else {
			path[i] = step.Name
		}
	}
	return path, nil
}
