// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package openai implements an assist.Model backed by the OpenAI chat
// completions API, or any service compatible with it.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/creachadair/jview/assist"
	openai "github.com/openai/openai-go"
	openaiopt "github.com/openai/openai-go/option"
)

// DefaultModel is the model used when none is specified.
const DefaultModel = "gpt-4o-mini"

// Model implements the assist.Model interface using chat completions.
type Model struct {
	client openai.Client
	name   string
}

// New constructs a Model that calls the chat completions API with the given
// key. If baseURL != "", requests are sent there instead of the default
// OpenAI endpoint. If name == "", DefaultModel is used.
func New(apiKey, baseURL, name string, opts ...openaiopt.RequestOption) *Model {
	var clientOpts []openaiopt.RequestOption
	if apiKey != "" {
		clientOpts = append(clientOpts, openaiopt.WithAPIKey(apiKey))
	}
	if baseURL != "" {
		clientOpts = append(clientOpts, openaiopt.WithBaseURL(baseURL))
	}
	if name == "" {
		name = DefaultModel
	}
	return &Model{
		client: openai.NewClient(append(clientOpts, opts...)...),
		name:   name,
	}
}

// Name reports the name of the model.
func (m *Model) Name() string { return m.name }

// Complete implements the assist.Model interface.
func (m *Model) Complete(ctx context.Context, prompt string) (string, error) {
	rsp, err := m.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(m.name),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized ||
			apiErr.StatusCode == http.StatusForbidden) {
			return "", assist.Unavailablef("openai: request was not authorized (HTTP %d)", apiErr.StatusCode)
		}
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(rsp.Choices) == 0 {
		return "", nil
	}
	return rsp.Choices[0].Message.Content, nil
}
