// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package tree renders a JSON value as a collapsible, indented tree of text
// lines.
//
// A View holds the expand/collapse state of the nodes of one parsed value.
// Every container node starts out expanded. The state is not carried over
// between values: a new parse gets a new View.
package tree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creachadair/jview"
	"github.com/creachadair/jview/ast"
	"github.com/creachadair/mds/mapset"
)

// Indentation and expand affordances.
const (
	indentUnit = "  "
	markOpen   = "▾ "
	markClosed = "▸ "
	markNone   = "  "
)

// A LineKind describes the role of a rendered line.
type LineKind int

const (
	Leaf      LineKind = iota // a string, number, Boolean, or null
	Empty                     // an object or array with no children
	Open                      // the first line of an expanded container
	Collapsed                 // a collapsed container with its summary
	Close                     // the closing bracket of an expanded container
)

var kindStr = [...]string{"leaf", "empty", "open", "collapsed", "close"}

func (k LineKind) String() string {
	if int(k) < len(kindStr) {
		return kindStr[k]
	}
	return fmt.Sprintf("LineKind(%d)", int(k))
}

// A Line is a single visual line of a rendered tree. The concatenation of
// Indent, Mark, Key, Body, and Comma is the complete text of the line.
type Line struct {
	Path  Path     // the node this line belongs to
	Kind  LineKind // the role of the line
	Depth int      // nesting depth of the node (root = 0)

	Indent string // leading spaces
	Mark   string // expand affordance, or blanks
	Key    string // `"name": ` for object members, else ""
	Body   string // value, bracket, or collapsed summary
	Comma  string // "," unless the node is the last of its siblings
}

// String returns the complete text of the line.
func (ln Line) String() string { return ln.Indent + ln.Mark + ln.Key + ln.Body + ln.Comma }

// Expandable reports whether the line is the head of a non-empty container.
func (ln Line) Expandable() bool { return ln.Kind == Open || ln.Kind == Collapsed }

// A View is a tree rendering of a JSON value with per-node expand state.
// A View is not safe for concurrent use without external synchronization.
type View struct {
	root      ast.Value
	collapsed mapset.Set[string] // paths of collapsed nodes
}

// New constructs a View of root with all nodes expanded.
func New(root ast.Value) *View {
	return &View{root: root, collapsed: make(mapset.Set[string])}
}

// Root returns the value rendered by v.
func (v *View) Root() ast.Value { return v.root }

// Lines renders the visible lines of the tree.
func (v *View) Lines() []Line {
	if v.root == nil {
		return nil
	}
	var out []Line
	v.render(&out, v.root, "", false, true, 0, nil)
	return out
}

// render appends the lines for value to out. If hasName is true, name is the
// member key of value in its parent object.
func (v *View) render(out *[]Line, value ast.Value, name string, hasName, isLast bool, depth int, path Path) {
	ln := Line{
		Path:   path,
		Depth:  depth,
		Indent: strings.Repeat(indentUnit, depth),
		Mark:   markNone,
	}
	if hasName {
		ln.Key = jview.Quote(name) + ": "
	}
	if !isLast {
		ln.Comma = ","
	}

	lb, rb, n := shape(value)
	switch {
	case lb == "":
		ln.Kind = Leaf
		ln.Body = value.JSON()
		*out = append(*out, ln)

	case n == 0:
		ln.Kind = Empty
		ln.Body = lb + rb
		*out = append(*out, ln)

	case v.collapsed.Has(path.String()):
		ln.Kind = Collapsed
		ln.Mark = markClosed
		ln.Body = lb + " " + summary(value, n) + " " + rb
		*out = append(*out, ln)

	default:
		head := ln
		head.Kind = Open
		head.Mark = markOpen
		head.Body = lb
		head.Comma = ""
		*out = append(*out, head)

		switch t := value.(type) {
		case ast.Object:
			for i, m := range t {
				v.render(out, m.Value, m.Key, true, i == len(t)-1, depth+1, path.Child(m.Key))
			}
		case ast.Array:
			for i, elt := range t {
				v.render(out, elt, "", false, i == len(t)-1, depth+1, path.Child(i))
			}
		}

		tail := ln
		tail.Kind = Close
		tail.Indent = strings.Repeat(indentUnit, depth) + markNone
		tail.Mark = ""
		tail.Key = ""
		tail.Body = rb
		*out = append(*out, tail)
	}
}

// shape reports the brackets and the number of children of a container. For
// a non-container, lb == "".
func shape(value ast.Value) (lb, rb string, n int) {
	switch t := value.(type) {
	case ast.Object:
		return "{", "}", len(t)
	case ast.Array:
		return "[", "]", len(t)
	}
	return "", "", 0
}

func summary(value ast.Value, n int) string {
	if _, ok := value.(ast.Array); ok {
		return fmt.Sprintf("Array(%d)", n)
	}
	return fmt.Sprintf("Object(%d)", n)
}

// lookup finds the node at path. Member names select from objects and
// indices select from arrays.
func (v *View) lookup(path Path) (ast.Value, error) {
	cur := v.root
	for i, step := range path {
		switch t := step.(type) {
		case string:
			obj, ok := cur.(ast.Object)
			if !ok {
				return nil, fmt.Errorf("at %v: not an object", path[:i])
			}
			m := obj.Find(t)
			if m == nil {
				return nil, fmt.Errorf("at %v: key %q not found", path[:i], t)
			}
			cur = m.Value
		case int:
			arr, ok := cur.(ast.Array)
			if !ok {
				return nil, fmt.Errorf("at %v: not an array", path[:i])
			} else if t < 0 || t >= len(arr) {
				return nil, fmt.Errorf("at %v: index %d out of bounds (n=%d)", path[:i], t, len(arr))
			}
			cur = arr[t]
		default:
			return nil, fmt.Errorf("invalid path step %T", step)
		}
	}
	return cur, nil
}

// expandable reports whether the node at path is a non-empty container.
func (v *View) expandable(path Path) bool {
	val, err := v.lookup(path)
	if err != nil {
		return false
	}
	_, _, n := shape(val)
	return n > 0
}

// IsExpanded reports whether the node at path is a non-empty container that
// is currently expanded.
func (v *View) IsExpanded(path Path) bool {
	return v.expandable(path) && !v.collapsed.Has(path.String())
}

// Toggle flips the expand state of the node at path, and reports whether it
// did so. Only non-empty containers can be toggled; the state of every other
// node is unaffected.
func (v *View) Toggle(path Path) bool {
	if !v.expandable(path) {
		return false
	}
	key := path.String()
	if v.collapsed.Has(key) {
		v.collapsed.Remove(key)
	} else {
		v.collapsed.Add(key)
	}
	return true
}

// Expand expands the node at path, and reports whether its state changed.
func (v *View) Expand(path Path) bool {
	if v.IsExpanded(path) || !v.expandable(path) {
		return false
	}
	v.collapsed.Remove(path.String())
	return true
}

// Collapse collapses the node at path, and reports whether its state
// changed.
func (v *View) Collapse(path Path) bool {
	if !v.IsExpanded(path) {
		return false
	}
	v.collapsed.Add(path.String())
	return true
}

// ExpandAll expands every node of the tree.
func (v *View) ExpandAll() { clear(v.collapsed) }

// CollapseAll collapses every non-empty container except the root.
func (v *View) CollapseAll() {
	clear(v.collapsed)
	var walk func(ast.Value, Path)
	walk = func(val ast.Value, path Path) {
		switch t := val.(type) {
		case ast.Object:
			for _, m := range t {
				walk(m.Value, path.Child(m.Key))
			}
		case ast.Array:
			for i, elt := range t {
				walk(elt, path.Child(i))
			}
		default:
			return
		}
		if _, _, n := shape(val); n > 0 && len(path) > 0 {
			v.collapsed.Add(path.String())
		}
	}
	if v.root != nil {
		walk(v.root, nil)
	}
}

// Reveal expands every ancestor of the node at path, so that it is visible,
// and returns the index of its first line in Lines.
func (v *View) Reveal(path Path) (int, error) {
	if _, err := v.lookup(path); err != nil {
		return -1, err
	}
	for i := range path {
		v.collapsed.Remove(path[:i].String())
	}
	key := path.String()
	for i, ln := range v.Lines() {
		if ln.Kind != Close && ln.Path.String() == key {
			return i, nil
		}
	}
	return -1, fmt.Errorf("path %v not rendered", path)
}

// Copy returns the JSON text of the subtree at path, indented by two spaces
// per level. The result does not depend on the expand state of any node.
func (v *View) Copy(path Path) (string, error) {
	if v.root == nil {
		return "", errors.New("no value")
	}
	val, err := v.lookup(path)
	if err != nil {
		return "", err
	}
	return ast.Indent(val, indentUnit), nil
}
