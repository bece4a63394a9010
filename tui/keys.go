// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the viewer.
type KeyMap struct {
	// Global bindings, active in every pane.
	Format     key.Binding
	Minify     key.Binding
	Unescape   key.Binding
	AI         key.Binding
	CopyText   key.Binding
	Clear      key.Binding
	Theme      key.Binding
	Language   key.Binding
	Quit       key.Binding
	Help       key.Binding
	SwitchPane key.Binding
	GoToPath   key.Binding

	// Tree pane bindings.
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Toggle      key.Binding
	Fold        key.Binding
	Unfold      key.Binding
	ExpandAll   key.Binding
	CollapseAll key.Binding
	CopyNode    key.Binding

	// Path prompt bindings.
	Accept key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Format:     key.NewBinding(key.WithKeys("f2"), key.WithHelp("F2", "format")),
		Minify:     key.NewBinding(key.WithKeys("f3"), key.WithHelp("F3", "minify")),
		Unescape:   key.NewBinding(key.WithKeys("f4"), key.WithHelp("F4", "unescape")),
		AI:         key.NewBinding(key.WithKeys("f5"), key.WithHelp("F5", "AI fix/sample")),
		CopyText:   key.NewBinding(key.WithKeys("f6"), key.WithHelp("F6", "copy text")),
		Clear:      key.NewBinding(key.WithKeys("f7"), key.WithHelp("F7", "clear")),
		Theme:      key.NewBinding(key.WithKeys("f8"), key.WithHelp("F8", "theme")),
		Language:   key.NewBinding(key.WithKeys("f9"), key.WithHelp("F9", "language")),
		Quit:       key.NewBinding(key.WithKeys("f10", "ctrl+c"), key.WithHelp("F10", "quit")),
		Help:       key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "help")),
		SwitchPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		GoToPath:   key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "go to path")),

		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/↑", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/↓", "down")),
		PageUp:      key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Top:         key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Fold:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h", "fold")),
		Unfold:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("l", "unfold")),
		ExpandAll:   key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "expand all")),
		CollapseAll: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "collapse all")),
		CopyNode:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy node")),

		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "go")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements part of the help.KeyMap interface.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchPane, k.GoToPath, k.Help, k.Quit}
}

// FullHelp implements part of the help.KeyMap interface.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Format, k.Minify, k.Unescape, k.AI, k.CopyText, k.Clear},
		{k.Theme, k.Language, k.SwitchPane, k.GoToPath, k.Help, k.Quit},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Toggle, k.Fold, k.Unfold, k.ExpandAll, k.CollapseAll, k.CopyNode},
	}
}
