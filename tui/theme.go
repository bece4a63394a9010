// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tui

import "github.com/charmbracelet/lipgloss"

// Theme names.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// A palette is the set of colors of a theme.
type palette struct {
	Text, Muted, Border, Selected, Subtle string

	Green, Red, Orange, Cyan, Violet string
}

// Kanagawa Dragon.
var darkPalette = palette{
	Text:     "#DCD7BA",
	Muted:    "#727169",
	Border:   "#363646",
	Selected: "#223249",
	Subtle:   "#1F1F28",
	Green:    "#98BB6C",
	Red:      "#FF5D62",
	Orange:   "#FFA066",
	Cyan:     "#7FB4CA",
	Violet:   "#957FB8",
}

// Kanagawa Lotus.
var lightPalette = palette{
	Text:     "#2B2F42",
	Muted:    "#6C7086",
	Border:   "#B5BDC5",
	Selected: "#E2E6F3",
	Subtle:   "#F7F7FB",
	Green:    "#4E7C5A",
	Red:      "#C34043",
	Orange:   "#CC6B4E",
	Cyan:     "#4F7CAC",
	Violet:   "#674D7A",
}

// Styles are the rendering styles of the viewer.
type Styles struct {
	Pane        lipgloss.Style // unfocused pane border
	FocusedPane lipgloss.Style // focused pane border
	Title       lipgloss.Style
	Button      lipgloss.Style
	KeyHint     lipgloss.Style
	Valid       lipgloss.Style
	Invalid     lipgloss.Style
	Muted       lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	ErrorMark   lipgloss.Style // the character at a syntax error
	Cursor      lipgloss.Style // the selected line of the tree

	// Tree line parts.
	Mark, Key, String, Number, Literal, Bracket, Summary lipgloss.Style
}

// NewStyles returns the styles for the named theme. Unknown names get the
// dark theme.
func NewStyles(theme string) Styles {
	p := darkPalette
	if theme == ThemeLight {
		p = lightPalette
	}
	color := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }
	pane := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(p.Border))
	return Styles{
		Pane:        pane,
		FocusedPane: pane.BorderForeground(lipgloss.Color(p.Violet)),
		Title:       color(p.Text).Bold(true),
		Button:      color(p.Text).Background(lipgloss.Color(p.Subtle)).Padding(0, 1),
		KeyHint:     color(p.Violet).Bold(true),
		Valid:       color(p.Green).Bold(true),
		Invalid:     color(p.Red).Bold(true),
		Muted:       color(p.Muted),
		Status:      color(p.Cyan),
		StatusError: color(p.Red),
		ErrorMark:   lipgloss.NewStyle().Background(lipgloss.Color(p.Red)).Foreground(lipgloss.Color(p.Subtle)).Underline(true),
		Cursor:      lipgloss.NewStyle().Background(lipgloss.Color(p.Selected)),

		Mark:    color(p.Muted),
		Key:     color(p.Cyan),
		String:  color(p.Green),
		Number:  color(p.Orange),
		Literal: color(p.Red),
		Bracket: color(p.Muted),
		Summary: color(p.Muted).Italic(true),
	}
}

// otherTheme returns the theme toggled from name.
func otherTheme(name string) string {
	if name == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
