// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/creachadair/jview/tree"
)

// renderLine renders one tree line with syntax coloring. The selected line is
// rendered plain in the cursor style.
func (s Styles) renderLine(ln tree.Line, selected bool, width int) string {
	var out string
	if selected {
		out = s.Cursor.Render(ln.String())
	} else {
		var sb strings.Builder
		sb.WriteString(ln.Indent)
		sb.WriteString(s.Mark.Render(ln.Mark))
		if ln.Key != "" {
			sb.WriteString(s.Key.Render(strings.TrimSuffix(ln.Key, ": ")))
			sb.WriteString(s.Bracket.Render(": "))
		}
		sb.WriteString(s.bodyStyle(ln).Render(ln.Body))
		sb.WriteString(s.Bracket.Render(ln.Comma))
		out = sb.String()
	}
	if width > 0 {
		out = lipgloss.NewStyle().MaxWidth(width).Render(out)
	}
	return out
}

func (s Styles) bodyStyle(ln tree.Line) lipgloss.Style {
	switch ln.Kind {
	case tree.Collapsed:
		return s.Summary
	case tree.Leaf:
		switch c := ln.Body[0]; {
		case c == '"':
			return s.String
		case c == '-' || (c >= '0' && c <= '9'):
			return s.Number
		default:
			return s.Literal
		}
	}
	return s.Bracket
}

// refreshTree re-renders the tree pane from the current view and keeps the
// cursor in range and visible.
func (m *Model) refreshTree() {
	if m.view == nil {
		m.lines = nil
		m.cursor = 0
		m.treeVP.SetContent(m.treeHint())
		m.treeVP.GotoTop()
		return
	}
	m.lines = m.view.Lines()
	m.cursor = max(min(m.cursor, len(m.lines)-1), 0)

	rows := make([]string, len(m.lines))
	for i, ln := range m.lines {
		rows[i] = m.styles.renderLine(ln, i == m.cursor && m.focus == focusTree, m.treeVP.Width)
	}
	m.treeVP.SetContent(strings.Join(rows, "\n"))

	if m.cursor < m.treeVP.YOffset {
		m.treeVP.SetYOffset(m.cursor)
	} else if h := m.treeVP.Height; h > 0 && m.cursor >= m.treeVP.YOffset+h {
		m.treeVP.SetYOffset(m.cursor - h + 1)
	}
}

// treeHint returns the message shown in the tree pane when there is no value
// to render.
func (m *Model) treeHint() string {
	if m.state.HasError() {
		return m.styles.Muted.Render(m.labels.TreeNeedsFix)
	}
	return m.styles.Muted.Render(m.labels.TreeEmpty)
}

// selected returns the tree line under the cursor.
func (m *Model) selected() (tree.Line, bool) {
	if m.cursor < 0 || m.cursor >= len(m.lines) {
		return tree.Line{}, false
	}
	return m.lines[m.cursor], true
}

// moveCursor moves the tree cursor by delta lines.
func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.refreshTree()
}

// toggleSelected toggles the node under the cursor. A closing line has
// nothing to toggle.
func (m *Model) toggleSelected() {
	ln, ok := m.selected()
	if !ok || m.view == nil || ln.Kind == tree.Close {
		return
	}
	if m.view.Toggle(ln.Path) {
		m.refreshTree()
	}
}

// headOf returns the index of the first line of the node at path.
func (m *Model) headOf(path tree.Path) int {
	key := path.String()
	for i, ln := range m.view.Lines() {
		if ln.Kind != tree.Close && ln.Path.String() == key {
			return i
		}
	}
	return 0
}

// foldSelected collapses the node under the cursor, or if it is not an
// expanded container, moves to its parent. A closing line is left alone.
func (m *Model) foldSelected() {
	ln, ok := m.selected()
	if !ok || m.view == nil || ln.Kind == tree.Close {
		return
	}
	if m.view.Collapse(ln.Path) {
		m.refreshTree()
	} else if len(ln.Path) > 0 {
		m.cursor = m.headOf(ln.Path.Parent())
		m.refreshTree()
	}
}

// unfoldSelected expands the node under the cursor.
func (m *Model) unfoldSelected() {
	ln, ok := m.selected()
	if ok && m.view != nil && m.view.Expand(ln.Path) {
		m.refreshTree()
	}
}
