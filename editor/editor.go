// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package editor implements the controller for the text being inspected.
//
// An Editor holds the current text and its parse result, and every change to
// the text goes through the same parse step. Transforms (format, minify,
// unescape, clear) are synchronous. AI actions are split into a Start call,
// which returns a Job that may run on another goroutine, and a Finish call
// that applies the outcome. While a job is outstanding the editor is busy and
// refuses to start another, but all other operations remain available.
package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/creachadair/jview/assist"
	"github.com/creachadair/jview/diag"
	"github.com/creachadair/jview/internal/logging"
	"github.com/sirupsen/logrus"
)

var (
	// ErrBusy is reported when an AI action is started while another is
	// outstanding.
	ErrBusy = errors.New("an AI request is already in progress")

	// ErrNothingToRepair is reported by a repair request when the text has no
	// parse error, or is empty.
	ErrNothingToRepair = errors.New("no parse error to repair")

	// ErrNotBusy is reported by Finish when no AI action is outstanding.
	ErrNotBusy = errors.New("no AI request is in progress")
)

// An Editor is the single owner of the current State. It is safe for
// concurrent use by multiple goroutines.
type Editor struct {
	opts []diag.Option
	ai   assist.Assistant
	log  *logrus.Entry

	mu    sync.Mutex
	state State
	busy  bool
}

// New constructs an Editor with empty text. The assistant performs AI
// actions; if ai == nil, AI actions fail as unavailable. The options control
// the parser.
func New(ai assist.Assistant, opts ...diag.Option) *Editor {
	if ai == nil {
		ai = assist.Unavailable{}
	}
	return &Editor{
		opts:  opts,
		ai:    ai,
		log:   logging.NewLogger("editor"),
		state: State{ErrIndex: diag.NoIndex},
	}
}

// State returns the current state of e.
func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Busy reports whether an AI action is outstanding.
func (e *Editor) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.busy
}

// setLocked parses text and makes it the current state. The caller must hold
// e.mu.
func (e *Editor) setLocked(text string) State {
	e.state = FromResult(text, diag.Parse(text, e.opts...))
	if e.state.HasError() {
		e.log.WithField("index", e.state.ErrIndex).Debugf("parse failed: %s", e.state.Err)
	}
	return e.state
}

// SetText replaces the text and returns the new state.
func (e *Editor) SetText(text string) State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.setLocked(text)
}

// Format replaces valid text with its canonical indented form. It has no
// effect unless the current text is valid.
func (e *Editor) Format() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.state.Valid() {
		return e.state
	}
	return e.setLocked(diag.Format(e.state.Parsed))
}

// Minify replaces valid text with its compact form. It has no effect unless
// the current text is valid.
func (e *Editor) Minify() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.state.Valid() {
		return e.state
	}
	return e.setLocked(diag.Minify(e.state.Parsed))
}

// Unescape replaces the text with its unescaped form (see diag.Unescape). It
// has no effect if the text is empty or all whitespace.
func (e *Editor) Unescape() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	if strings.TrimSpace(e.state.Text) == "" {
		return e.state
	}
	return e.setLocked(diag.Unescape(e.state.Text))
}

// Clear replaces the text with the empty string.
func (e *Editor) Clear() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.setLocked("")
}

// An Action identifies an AI action.
type Action int

// Constants defining the valid Action values.
const (
	Repair Action = iota + 1
	Generate
)

func (a Action) String() string {
	switch a {
	case Repair:
		return "repair"
	case Generate:
		return "generate"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// A Job is a pending AI action. Run may be called on any goroutine, and its
// Outcome must be passed to Finish on the Editor that created the job.
type Job struct {
	Action Action
	input  string // the text to repair, or the topic to generate
	ai     assist.Assistant
}

// Outcome is the result of running a Job.
type Outcome struct {
	Action Action
	Text   string // the output of the assistant, if Err == nil
	Err    error
}

// Run performs the action and returns its outcome. It does not modify the
// editor.
func (j Job) Run(ctx context.Context) Outcome {
	out := Outcome{Action: j.Action}
	switch j.Action {
	case Repair:
		out.Text, out.Err = j.ai.Repair(ctx, j.input)
	case Generate:
		out.Text, out.Err = j.ai.Generate(ctx, j.input)
	default:
		out.Err = fmt.Errorf("unknown action %v", j.Action)
	}
	return out
}

// StartRepair begins a repair of the current text. It fails with
// ErrNothingToRepair unless the text has a parse error, and with ErrBusy if
// another action is outstanding.
func (e *Editor) StartRepair() (Job, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.busy {
		return Job{}, ErrBusy
	} else if !e.state.HasError() || e.state.Text == "" {
		return Job{}, ErrNothingToRepair
	}
	e.busy = true
	e.log.WithField("bytes", len(e.state.Text)).Info("starting repair")
	return Job{Action: Repair, input: e.state.Text, ai: e.ai}, nil
}

// StartGenerate begins generation of a sample document about topic. It fails
// with ErrBusy if another action is outstanding.
func (e *Editor) StartGenerate(topic string) (Job, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.busy {
		return Job{}, ErrBusy
	}
	e.busy = true
	e.log.WithField("topic", topic).Info("starting generate")
	return Job{Action: Generate, input: topic, ai: e.ai}, nil
}

// Finish ends the outstanding action with the given outcome. If the action
// succeeded and its output is valid JSON, the output replaces the text.
// Otherwise the state is unchanged and Finish reports an error of concrete
// type *assist.Error. If no action is outstanding, Finish ignores o and
// reports ErrNotBusy.
func (e *Editor) Finish(o Outcome) (State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.busy {
		e.log.WithField("action", o.Action).Warn("ignoring outcome with no action outstanding")
		return e.state, ErrNotBusy
	}
	e.busy = false

	log := e.log.WithField("action", o.Action)
	if o.Err != nil {
		log.WithError(o.Err).Warn("AI action failed")
		return e.state, assist.AsError(o.Err)
	}
	res := diag.Parse(o.Text, e.opts...)
	if !res.OK() {
		log.WithField("reply", o.Text).Warn("AI output is not valid JSON")
		msg := res.Message
		if res.Kind == diag.Empty {
			msg = "empty output"
		}
		return e.state, assist.TransformFailed("AI output is not valid JSON", errors.New(msg))
	}
	log.Info("AI action complete")
	e.state = FromResult(o.Text, res)
	return e.state, nil
}

// Repair repairs the current text and waits for the result.
func (e *Editor) Repair(ctx context.Context) (State, error) {
	job, err := e.StartRepair()
	if err != nil {
		return e.State(), err
	}
	return e.Finish(job.Run(ctx))
}

// Generate replaces the text with a generated sample about topic, and waits
// for the result.
func (e *Editor) Generate(ctx context.Context, topic string) (State, error) {
	job, err := e.StartGenerate(topic)
	if err != nil {
		return e.State(), err
	}
	return e.Finish(job.Run(ctx))
}
