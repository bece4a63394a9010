// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package assist defines the AI collaborators of the JSON viewer: a repair
// action that turns malformed JSON into valid JSON, and a generator of sample
// documents on a topic.
//
// The Assistant interface is the only dependency of the rest of the program
// on AI services. A Client implements Assistant over any Model, which is a
// plain text-in, text-out completion function. The gemini and openai
// subpackages provide Model implementations for specific providers.
package assist

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/creachadair/jview/internal/logging"
	"github.com/sirupsen/logrus"
)

// An Assistant performs AI-backed transformations of JSON text.
// Errors reported by an Assistant have concrete type *Error.
type Assistant interface {
	// Repair returns a corrected version of the malformed JSON text.
	Repair(ctx context.Context, text string) (string, error)

	// Generate returns a complex, nested sample JSON document about topic.
	Generate(ctx context.Context, topic string) (string, error)
}

// A Model completes a text prompt. It is the boundary between a Client and a
// specific provider.
type Model interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// MaxRepairInput is the maximum number of runes of input sent to the model
// by a repair request. Longer inputs are truncated.
const MaxRepairInput = 10000

// Client implements the Assistant interface using a Model.
type Client struct {
	model Model
	log   *logrus.Entry
}

// New constructs a new Client that delegates completions to m.
func New(m Model) *Client {
	return &Client{model: m, log: logging.NewLogger("assist")}
}

// Repair implements part of the Assistant interface.
func (c *Client) Repair(ctx context.Context, text string) (string, error) {
	input, cut := truncate(text, MaxRepairInput)
	if cut {
		c.log.WithField("runes", MaxRepairInput).Debug("truncated repair input")
	}
	return c.complete(ctx, "repair", RepairPrompt(input))
}

// Generate implements part of the Assistant interface.
func (c *Client) Generate(ctx context.Context, topic string) (string, error) {
	return c.complete(ctx, "generate", GeneratePrompt(topic))
}

func (c *Client) complete(ctx context.Context, op, prompt string) (string, error) {
	log := c.log.WithField("op", op)
	log.WithField("bytes", len(prompt)).Debug("sending prompt")
	out, err := c.model.Complete(ctx, prompt)
	if err != nil {
		log.WithError(err).Error("completion failed")
		var ae *Error
		if errors.As(err, &ae) {
			return "", ae
		}
		return "", TransformFailed("failed to "+op+" JSON using AI", err)
	}
	reply := CleanReply(out)
	log.WithField("bytes", len(reply)).Debug("received reply")
	return reply, nil
}

// Unavailable is an Assistant for use when no credential is configured.
// All its methods report a ServiceUnavailable error.
type Unavailable struct {
	// Reason, if set, is reported in the error message.
	Reason string
}

func (u Unavailable) err() error {
	if u.Reason != "" {
		return Unavailablef("%s", u.Reason)
	}
	return Unavailablef("missing API key")
}

// Repair implements part of the Assistant interface. It always fails.
func (u Unavailable) Repair(context.Context, string) (string, error) { return "", u.err() }

// Generate implements part of the Assistant interface. It always fails.
func (u Unavailable) Generate(context.Context, string) (string, error) { return "", u.err() }

// RepairPrompt returns the prompt for repairing the malformed JSON text.
func RepairPrompt(text string) string {
	return `You are a strict JSON repair tool. Fix the following malformed JSON. ` +
		"Return ONLY the valid JSON string. Do not add markdown formatting like ```json or explanations.\n\n" +
		"Malformed JSON:\n" + text
}

// GeneratePrompt returns the prompt for generating a sample document about
// the given topic.
func GeneratePrompt(topic string) string {
	return `Generate a complex, nested JSON example regarding "` + topic + `".` + "\n" +
		"Include arrays, booleans, numbers, and nulls.\n" +
		"Return ONLY the raw JSON string without markdown formatting."
}

var (
	openFenceRE  = regexp.MustCompile("^\\s*```(?:json)?[ \\t]*\\n?")
	closeFenceRE = regexp.MustCompile("\\n?[ \\t]*```\\s*$")
)

// CleanReply strips a surrounding Markdown code fence from a model reply. An
// empty reply is reported as an empty object, "{}".
func CleanReply(s string) string {
	s = openFenceRE.ReplaceAllString(s, "")
	s = closeFenceRE.ReplaceAllString(s, "")
	if strings.TrimSpace(s) == "" {
		return "{}"
	}
	return s
}

// truncate returns the first n runes of s, and reports whether any were
// removed.
func truncate(s string, n int) (string, bool) {
	for i := range s {
		if n == 0 {
			return s[:i], true
		}
		n--
	}
	return s, false
}
