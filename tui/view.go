// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/creachadair/jview"
	"github.com/creachadair/jview/diag"
	"github.com/creachadair/jview/editor"
	"github.com/creachadair/jview/highlight"
)

// View implements part of the tea.Model interface.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.toolbarView(),
		m.panesView(),
		m.errorView(),
		m.footerView(),
	)
}

func (m Model) toolbarView() string {
	var badge string
	switch {
	case m.state.Valid():
		badge = m.styles.Valid.Render("● " + m.labels.Valid)
	case m.state.HasError():
		badge = m.styles.Invalid.Render("● " + m.labels.Invalid)
	default:
		badge = m.styles.Muted.Render("○")
	}

	ai := m.labels.Sample
	if m.state.HasError() {
		ai = m.labels.Fix
	}
	if m.pending != 0 {
		ai = m.spin.View() + m.labels.Generating
		if m.pending == editor.Repair {
			ai = m.spin.View() + m.labels.Fixing
		}
	}

	parts := []string{badge}
	for _, b := range []struct {
		k     key.Binding
		label string
	}{
		{m.keys.Format, m.labels.Format},
		{m.keys.Minify, m.labels.Minify},
		{m.keys.Unescape, m.labels.Unescape},
		{m.keys.AI, ai},
		{m.keys.CopyText, m.labels.Copy},
		{m.keys.Clear, m.labels.Clear},
		{m.keys.Theme, m.labels.SwitchTheme},
		{m.keys.Language, m.labels.SwitchLang + " " + m.lang.Badge()},
	} {
		parts = append(parts, m.styles.Button.Render(m.styles.KeyHint.Render(b.k.Help().Key)+" "+b.label))
	}
	bar := strings.Join(parts, " ")
	return lipgloss.NewStyle().MaxWidth(m.width).Render(bar)
}

func (m Model) panesView() string {
	left := m.width / 2
	h := m.paneHeight()

	edStyle, trStyle := m.styles.Pane, m.styles.Pane
	if m.focus == focusEditor {
		edStyle = m.styles.FocusedPane
	} else {
		trStyle = m.styles.FocusedPane
	}

	ed := edStyle.Width(max(left-2, 1)).Height(h).Render(m.editorView(h))
	tr := trStyle.Width(max(m.width-left-2, 1)).Height(h).Render(m.treeVP.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, ed, tr)
}

// editorView renders the h rows of the text area visible in the editor pane,
// with the error mark drawn in place.
func (m Model) editorView(h int) string {
	rows := strings.Split(m.text.View(), "\n")
	top := min(m.sync.Top, len(rows))
	rows = rows[top:min(top+h, len(rows))]

	if m.state.ErrIndex != diag.NoIndex && m.text.Value() == m.state.Text {
		o := highlight.Compute(m.state.Text, m.state.ErrIndex)
		row, cell := highlight.Locate(o, m.text.Width())
		if r := row - top; r >= 0 && r < len(rows) && cell < m.text.Width() {
			rows[r] = highlight.Paint(rows[r], cell, o.Mark, m.styles.ErrorMark)
		}
	}
	return strings.Join(rows, "\n")
}

// errorView renders the error bar: the parse error, its position, and an
// excerpt of the text around it.
func (m Model) errorView() string {
	if !m.state.HasError() {
		return ""
	}
	msg := m.state.Err
	if m.state.ErrIndex != diag.NoIndex {
		pos := jview.Position(m.state.Text, m.state.ErrIndex)
		o := highlight.Compute(m.state.Text, m.state.ErrIndex)
		const excerpt = 24
		line := highlight.Center(o, excerpt, 1).Window(o, m.styles.ErrorMark, excerpt, 1)
		msg = fmt.Sprintf("%s [%d:%d] %s", msg, pos.Line, pos.Column+1, line)
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(m.styles.Invalid.Render("✗ ") + msg)
}

func (m Model) footerView() string {
	switch {
	case m.focus == focusPath:
		return m.path.View()
	case m.status != "" && m.statusErr:
		return m.styles.StatusError.Render(m.status)
	case m.status != "":
		return m.styles.Status.Render(m.status)
	}
	return m.help.View(m.keys)
}
