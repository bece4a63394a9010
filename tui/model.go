// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package tui implements the interactive terminal front end of the viewer:
// an editor pane holding the raw text, a tree pane showing the parsed value,
// and a toolbar of transforms and AI actions.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/creachadair/jview/assist"
	"github.com/creachadair/jview/editor"
	"github.com/creachadair/jview/highlight"
	"github.com/creachadair/jview/internal/clipboard"
	"github.com/creachadair/jview/internal/i18n"
	"github.com/creachadair/jview/internal/logging"
	"github.com/creachadair/jview/tree"
	"github.com/sirupsen/logrus"
)

// statusTimeout is how long a status message remains visible.
var statusTimeout = 3 * time.Second

// writeClipboard copies text to the system clipboard.
var writeClipboard = clipboard.Write

type focus int

const (
	focusEditor focus = iota
	focusTree
	focusPath
)

// Options configure a Model.
type Options struct {
	Text        string    // initial text
	Theme       string    // ThemeDark or ThemeLight
	Lang        i18n.Lang // display language
	SampleTopic string    // topic of generated samples

	// Context governs AI requests. If nil, context.Background is used.
	Context context.Context
}

// Model is the bubbletea model of the viewer.
type Model struct {
	ed     *editor.Editor
	ctx    context.Context
	topic  string
	log    *logrus.Entry
	keys   KeyMap
	theme  string
	styles Styles
	lang   i18n.Lang
	labels *i18n.Labels

	state  editor.State
	view   *tree.View // nil when there is no parsed value
	lines  []tree.Line
	cursor int            // selected line of the tree pane
	sync   highlight.Sync // scroll position of the editor pane, in rows

	text    textarea.Model
	treeVP  viewport.Model
	path    textinput.Model
	spin    spinner.Model
	help    help.Model
	focus   focus
	pending editor.Action // the outstanding AI action, or 0

	status    string
	statusErr bool
	statusSeq int

	width, height int
}

// Messages.
type (
	aiResultMsg    struct{ out editor.Outcome }
	clipboardMsg   struct{ err error }
	clearStatusMsg struct{ seq int }
)

// New constructs a Model that edits text through ed.
func New(ed *editor.Editor, opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	lang := opts.Lang
	if lang == "" {
		lang = i18n.English
	}
	theme := opts.Theme
	if theme != ThemeLight {
		theme = ThemeDark
	}

	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Placeholder = lang.Labels().Placeholder
	ta.KeyMap.Paste.SetEnabled(false) // terminal paste arrives as keys
	ta.Focus()

	pi := textinput.New()
	pi.Prompt = "$ "
	pi.Placeholder = "$.path[0].to.node"
	pi.CharLimit = 512

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ed:     ed,
		ctx:    ctx,
		topic:  opts.SampleTopic,
		log:    logging.NewLogger("tui"),
		keys:   DefaultKeyMap(),
		theme:  theme,
		styles: NewStyles(theme),
		lang:   lang,
		labels: lang.Labels(),
		text:   ta,
		treeVP: viewport.New(40, 10),
		path:   pi,
		spin:   sp,
		help:   help.New(),
		focus:  focusEditor,
	}
	m.apply(ed.SetText(opts.Text))
	return m
}

// Run runs the viewer on the terminal until the user quits.
func Run(ed *editor.Editor, opts Options) error {
	_, err := tea.NewProgram(New(ed, opts), tea.WithAltScreen()).Run()
	return err
}

// Init implements part of the tea.Model interface.
func (m Model) Init() tea.Cmd { return textarea.Blink }

// Update implements part of the tea.Model interface.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		cmd, ok := m.handleGlobalKey(msg)
		if !ok {
			switch m.focus {
			case focusTree:
				cmd = m.handleTreeKey(msg)
			case focusPath:
				cmd = m.handlePathKey(msg)
			default:
				cmd = m.updateEditor(msg)
			}
		}
		return m, cmd

	case aiResultMsg:
		cmd := m.finishAI(msg.out)
		return m, cmd

	case clipboardMsg:
		var cmd tea.Cmd
		if msg.err != nil {
			m.log.WithError(msg.err).Warn("clipboard write failed")
			cmd = m.setStatus(m.labels.CopyFailed, true)
		} else {
			cmd = m.setStatus(m.labels.Copied, false)
		}
		return m, cmd

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status, m.statusErr = "", false
		}
		return m, nil

	case spinner.TickMsg:
		if m.pending != 0 {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == focusEditor {
		cmd = m.updateEditor(msg)
	}
	return m, cmd
}

// handleGlobalKey handles the keys that are active in every pane, and
// reports whether msg was one of them.
func (m *Model) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, m.keys.Format):
		m.apply(m.ed.Format())
	case key.Matches(msg, m.keys.Minify):
		m.apply(m.ed.Minify())
	case key.Matches(msg, m.keys.Unescape):
		m.apply(m.ed.Unescape())
	case key.Matches(msg, m.keys.Clear):
		m.apply(m.ed.Clear())
	case key.Matches(msg, m.keys.AI):
		return m.startAI(), true
	case key.Matches(msg, m.keys.CopyText):
		return copyCmd(m.state.Text), true
	case key.Matches(msg, m.keys.Theme):
		m.theme = otherTheme(m.theme)
		m.styles = NewStyles(m.theme)
		m.refreshTree()
	case key.Matches(msg, m.keys.Language):
		m.lang = m.lang.Toggle()
		m.labels = m.lang.Labels()
		m.text.Placeholder = m.labels.Placeholder
		m.refreshTree()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
	case key.Matches(msg, m.keys.SwitchPane):
		if m.focus == focusEditor {
			return m.setFocus(focusTree), true
		}
		return m.setFocus(focusEditor), true
	case key.Matches(msg, m.keys.GoToPath):
		if m.view == nil {
			return nil, true
		}
		m.path.SetValue("")
		return m.setFocus(focusPath), true
	default:
		return nil, false
	}
	return nil, true
}

// setFocus moves the input focus to the given pane.
func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.text.Blur()
	m.path.Blur()
	var cmd tea.Cmd
	switch f {
	case focusEditor:
		cmd = m.text.Focus()
	case focusPath:
		cmd = m.path.Focus()
	}
	m.refreshTree()
	return cmd
}

// updateEditor passes msg to the text area, and re-parses if the text changed.
func (m *Model) updateEditor(msg tea.Msg) tea.Cmd {
	// Leave room for the rows msg may add, so the text area does not scroll.
	grow := 1
	if k, ok := msg.(tea.KeyMsg); ok {
		grow += len(k.Runes)
	}
	m.text.SetHeight(m.text.Height() + grow)

	var cmd tea.Cmd
	m.text, cmd = m.text.Update(msg)
	if v := m.text.Value(); v != m.state.Text {
		m.apply(m.ed.SetText(v))
	} else {
		m.fitEditor()
	}
	return cmd
}

// layout returns the text of the editor wrapped as the text area shows it.
func (m *Model) layout() *highlight.Layout {
	return highlight.NewLayout(m.text.Value(), m.text.Width())
}

// fitEditor makes the text area tall enough to show all its rows, and scrolls
// the editor pane to keep the cursor in view. The text area itself never
// scrolls: the pane shows its rows from m.sync.Top, and the error mark is
// drawn over those rows at the position the layout gives it.
func (m *Model) fitEditor() {
	h := m.paneHeight()
	lay := m.layout()
	m.text.SetHeight(lay.Rows() + h)

	info := m.text.LineInfo()
	row, _ := lay.Position(m.text.Line(), info.StartColumn+info.ColumnOffset)
	m.sync.Follow(row, 0, 0, h)
	m.sync.Top = min(m.sync.Top, max(lay.Rows()-h, 0))
}

func (m *Model) handleTreeKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-max(m.treeVP.Height, 1))
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(max(m.treeVP.Height, 1))
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.refreshTree()
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(m.lines) - 1
		m.refreshTree()
	case key.Matches(msg, m.keys.Toggle):
		m.toggleSelected()
	case key.Matches(msg, m.keys.Fold):
		m.foldSelected()
	case key.Matches(msg, m.keys.Unfold):
		m.unfoldSelected()
	case key.Matches(msg, m.keys.ExpandAll):
		if m.view != nil {
			m.view.ExpandAll()
			m.refreshTree()
		}
	case key.Matches(msg, m.keys.CollapseAll):
		if m.view != nil {
			m.view.CollapseAll()
			m.cursor = 0
			m.refreshTree()
		}
	case key.Matches(msg, m.keys.CopyNode):
		ln, ok := m.selected()
		if !ok {
			return nil
		}
		text, err := m.view.Copy(ln.Path)
		if err != nil {
			m.log.WithError(err).WithField("path", ln.Path).Error("copy node failed")
			return m.setStatus(m.labels.CopyFailed, true)
		}
		return copyCmd(text)
	}
	return nil
}

func (m *Model) handlePathKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.setFocus(focusTree)
	case key.Matches(msg, m.keys.Accept):
		cmd := m.setFocus(focusTree)
		if m.view == nil {
			return cmd
		}
		p, err := tree.ParsePath(m.path.Value())
		if err != nil {
			return tea.Batch(cmd, m.setStatus(err.Error(), true))
		}
		i, err := m.view.Reveal(p)
		if err != nil {
			m.log.WithError(err).WithField("path", p).Debug("path not found")
			return tea.Batch(cmd, m.setStatus(m.labels.PathNotFound+": "+p.String(), true))
		}
		m.cursor = i
		m.refreshTree()
		return cmd
	}
	var cmd tea.Cmd
	m.path, cmd = m.path.Update(msg)
	return cmd
}

// apply makes st the current state. Every state comes from a new parse, so
// the tree view is rebuilt and its expand state starts over.
func (m *Model) apply(st editor.State) {
	if m.text.Value() != st.Text {
		m.text.SetValue(st.Text)
		if v := m.text.Value(); v != st.Text {
			// The text area expands tabs and drops control characters.
			// Parse what it holds, so error offsets match what it shows.
			st = m.ed.SetText(v)
		}
	}
	m.state = st
	if st.Valid() {
		m.view = tree.New(st.Parsed)
	} else {
		m.view = nil
	}
	m.cursor = 0
	m.treeVP.GotoTop()
	m.fitEditor()
	m.refreshTree()
}

// startAI starts the AI action offered for the current state: repair if the
// text has an error, otherwise generation of a sample.
func (m *Model) startAI() tea.Cmd {
	var job editor.Job
	var err error
	if m.state.HasError() {
		job, err = m.ed.StartRepair()
	} else {
		job, err = m.ed.StartGenerate(m.topic)
	}
	switch {
	case errors.Is(err, editor.ErrBusy):
		return m.setStatus(m.labels.Busy, true)
	case errors.Is(err, editor.ErrNothingToRepair):
		return m.setStatus(m.labels.NothingToRepair, true)
	case err != nil:
		return m.setStatus(err.Error(), true)
	}
	m.pending = job.Action
	ctx := m.ctx
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		return aiResultMsg{out: job.Run(ctx)}
	})
}

// finishAI applies the outcome of an AI action.
func (m *Model) finishAI(out editor.Outcome) tea.Cmd {
	m.pending = 0
	st, err := m.ed.Finish(out)
	if errors.Is(err, editor.ErrNotBusy) {
		return nil
	} else if err != nil {
		m.log.WithError(err).WithField("action", out.Action).Error("AI action failed")
		switch {
		case errors.Is(err, assist.ErrServiceUnavailable):
			return m.setStatus(m.labels.AIUnavailable, true)
		case out.Action == editor.Repair:
			return m.setStatus(m.labels.FixFailed, true)
		default:
			return m.setStatus(m.labels.GenerateFailed, true)
		}
	}
	m.apply(st)
	return nil
}

// setStatus shows a transient status message.
func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status, m.statusErr = msg, isErr
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// copyCmd returns a command that copies text to the clipboard.
func copyCmd(text string) tea.Cmd {
	return func() tea.Msg { return clipboardMsg{err: writeClipboard(text)} }
}

// paneHeight is the number of text rows inside each pane.
func (m *Model) paneHeight() int {
	chrome := 3 + 2 // toolbar, error bar, footer; pane borders
	if m.help.ShowAll {
		chrome += len(m.keys.FullHelp()[0]) - 1
	}
	return max(m.height-chrome, 1)
}

// resize lays out the panes for a terminal of the given size.
func (m *Model) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.width, m.height = width, height
	left := width / 2
	h := m.paneHeight()

	m.text.SetWidth(max(left-2, 1))
	m.treeVP.Width = max(width-left-2, 1)
	m.treeVP.Height = h
	m.path.Width = max(width-left-6, 1)
	m.help.Width = width
	m.fitEditor()
	m.refreshTree()
}

// String returns a one-line summary of the model state, for logging.
func (m Model) String() string {
	return fmt.Sprintf("tui.Model{focus=%d lines=%d cursor=%d pending=%v}", m.focus, len(m.lines), m.cursor, m.pending)
}
