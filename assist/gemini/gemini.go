// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package gemini implements an assist.Model backed by the Google Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the model used when none is specified.
const DefaultModel = "gemini-2.5-flash"

// Models is the subset of the GenAI models service used by a Model.
// The *genai.Models type satisfies this interface.
type Models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content,
		config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Model implements the assist.Model interface using Gemini.
type Model struct {
	models Models
	name   string
}

// New constructs a Model that calls the Gemini API with the given key.  If
// name == "", DefaultModel is used.
func New(ctx context.Context, apiKey, name string) (*Model, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: missing API key")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return NewWithModels(client.Models, name), nil
}

// NewWithModels constructs a Model that delegates to m.
func NewWithModels(m Models, name string) *Model {
	if name == "" {
		name = DefaultModel
	}
	return &Model{models: m, name: name}
}

// Name reports the name of the model.
func (m *Model) Name() string { return m.name }

// Complete implements the assist.Model interface.
func (m *Model) Complete(ctx context.Context, prompt string) (string, error) {
	rsp, err := m.models.GenerateContent(ctx, m.name, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return rsp.Text(), nil
}
