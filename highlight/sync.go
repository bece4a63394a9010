// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package highlight

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sync is the scroll position of a text view: the first visible row and the
// first visible column, both 0-based.
type Sync struct {
	Top, Left int
}

// Follow scrolls s by the minimum amount needed to make the given line and
// column visible in a view of the given size.
func (s *Sync) Follow(line, col, width, height int) {
	if height > 0 {
		if line < s.Top {
			s.Top = line
		} else if line >= s.Top+height {
			s.Top = line - height + 1
		}
	}
	if width > 0 {
		if col < s.Left {
			s.Left = col
		} else if col >= s.Left+width {
			s.Left = col - width + 1
		}
	}
	s.Top, s.Left = max(s.Top, 0), max(s.Left, 0)
}

// Center returns a Sync that places the mark of o in the middle of a view of
// the given size. If o has no mark, Center returns the zero Sync.
func Center(o Overlay, width, height int) Sync {
	line, col := o.Line()
	if line < 0 {
		return Sync{}
	}
	return Sync{Top: max(line-height/2, 0), Left: max(col-width/2, 0)}
}

// Window renders an excerpt of o: the region of its unwrapped lines visible at
// s in a view of the given size, with the mark in the given style. The result has at most height lines,
// each at most width runes. A width or height <= 0 means no limit.
func (s Sync) Window(o Overlay, mark lipgloss.Style, width, height int) string {
	lines := strings.Split(o.Text(), "\n")
	mline, mcol := o.Line()

	lo := min(s.Top, len(lines))
	hi := len(lines)
	if height > 0 {
		hi = min(lo+height, hi)
	}
	out := make([]string, 0, hi-lo)
	for i := lo; i < hi; i++ {
		runes := []rune(lines[i])
		start := min(s.Left, len(runes))
		end := len(runes)
		if width > 0 {
			end = min(start+width, end)
		}
		vis := runes[start:end]
		if i != mline || mcol < start || mcol >= end {
			out = append(out, string(vis))
			continue
		}
		at := mcol - start
		n := len([]rune(o.Mark))
		out = append(out, string(vis[:at])+mark.Render(string(vis[at:min(at+n, len(vis))]))+string(vis[min(at+n, len(vis)):]))
	}
	return strings.Join(out, "\n")
}
