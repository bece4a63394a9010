// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package highlight

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Wrap splits a line of text into the rows a bubbles textarea of the given
// width displays it on. Whitespace becomes a space, and the last row carries
// one extra space where the cursor sits past the end of the line. So the
// rows together hold one more rune than line.
func Wrap(line []rune, width int) [][]rune {
	rows := [][]rune{{}}
	var word []rune
	var row, spaces int

	for _, r := range line {
		if unicode.IsSpace(r) {
			spaces++
		} else {
			word = append(word, r)
		}

		if spaces > 0 {
			if cells(rows[row])+cells(word)+spaces > width {
				row++
				rows = append(rows, nil)
			}
			rows[row] = append(append(rows[row], word...), blanks(spaces)...)
			spaces, word = 0, nil
		} else if last := runewidth.RuneWidth(word[len(word)-1]); cells(word)+last > width {
			// The word fills a whole row.
			if len(rows[row]) > 0 {
				row++
				rows = append(rows, nil)
			}
			rows[row] = append(rows[row], word...)
			word = nil
		}
	}

	if cells(rows[row])+cells(word)+spaces >= width {
		row++
		rows = append(rows, nil)
	}
	rows[row] = append(append(rows[row], word...), blanks(spaces+1)...)
	return rows
}

func cells(rs []rune) int { return uniseg.StringWidth(string(rs)) }

func blanks(n int) []rune { return []rune(strings.Repeat(" ", n)) }

// A Layout is text soft-wrapped to a fixed width, as a bubbles textarea with
// no prompt and no line numbers shows it.
type Layout struct {
	rows  [][]rune
	first []int // rows[first[i]] is the first row of line i
}

// NewLayout wraps each line of text to the given width.
func NewLayout(text string, width int) *Layout {
	var lay Layout
	for _, line := range strings.Split(text, "\n") {
		lay.first = append(lay.first, len(lay.rows))
		lay.rows = append(lay.rows, Wrap([]rune(line), width)...)
	}
	return &lay
}

// Rows reports the number of rows in the layout.
func (l *Layout) Rows() int { return len(l.rows) }

// Position reports the row and the display cell at which the rune at column
// col of the given line is shown. A column at the boundary between two rows
// is shown at the start of the later row, as the textarea places its cursor.
// Out of range arguments are clamped.
func (l *Layout) Position(line, col int) (row, cell int) {
	line = min(max(line, 0), len(l.first)-1)
	end := len(l.rows)
	if line+1 < len(l.first) {
		end = l.first[line+1]
	}
	col = max(col, 0)
	start := 0
	for row = l.first[line]; row < end; row++ {
		seg := l.rows[row]
		if start+len(seg) > col || row == end-1 {
			at := min(col-start, len(seg))
			return row, cells(seg[:at])
		}
		start += len(seg)
	}
	return end - 1, 0 // unreachable
}

// Locate reports the row and display cell of the mark of o when its text is
// laid out to the given width. It reports -1, -1 if o has no mark.
func Locate(o Overlay, width int) (row, cell int) {
	line, col := o.Line()
	if line < 0 {
		return -1, -1
	}
	return NewLayout(o.Text(), width).Position(line, col)
}

// Paint draws mark in the given style over the display cells of a rendered
// row starting at cell, keeping the styling of the rest of the row. A
// whitespace mark is drawn as a space.
func Paint(row string, cell int, mark string, style lipgloss.Style) string {
	if strings.TrimSpace(mark) == "" {
		mark = " "
	}
	w := max(ansi.StringWidth(mark), 1)
	return ansi.Truncate(row, cell, "") + style.Render(mark) + ansi.TruncateLeft(row, cell+w, "")
}
