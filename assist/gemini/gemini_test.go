// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package gemini_test

import (
	"context"
	"errors"
	"testing"

	"github.com/creachadair/jview/assist"
	"github.com/creachadair/jview/assist/gemini"
	"google.golang.org/genai"
)

type fakeModels struct {
	model  string
	prompt string
	reply  string
	err    error
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content,
	_ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	if len(contents) == 1 && len(contents[0].Parts) == 1 {
		f.prompt = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: genai.NewContentFromText(f.reply, genai.RoleModel),
		}},
	}, nil
}

func TestComplete(t *testing.T) {
	fake := &fakeModels{reply: "```json\n{\"ok\": true}\n```"}
	m := gemini.NewWithModels(fake, "")
	if got := m.Name(); got != gemini.DefaultModel {
		t.Errorf("Name: got %q, want %q", got, gemini.DefaultModel)
	}

	c := assist.New(m)
	got, err := c.Repair(context.Background(), `{"ok": tru}`)
	if err != nil {
		t.Fatalf("Repair failed: %v", err)
	}
	if want := `{"ok": true}`; got != want {
		t.Errorf("Repair: got %q, want %q", got, want)
	}
	if fake.model != gemini.DefaultModel {
		t.Errorf("Model: got %q, want %q", fake.model, gemini.DefaultModel)
	}
	if want := assist.RepairPrompt(`{"ok": tru}`); fake.prompt != want {
		t.Errorf("Prompt: got %q, want %q", fake.prompt, want)
	}
}

func TestCompleteError(t *testing.T) {
	fake := &fakeModels{err: errors.New("quota exceeded")}
	c := assist.New(gemini.NewWithModels(fake, "gemini-test"))

	_, err := c.Generate(context.Background(), "birds")
	if !errors.Is(err, assist.ErrTransformFailure) {
		t.Errorf("Generate: got %v, want %v", err, assist.ErrTransformFailure)
	}
	if fake.model != "gemini-test" {
		t.Errorf("Model: got %q, want gemini-test", fake.model)
	}
}

func TestNewMissingKey(t *testing.T) {
	if m, err := gemini.New(context.Background(), "", ""); err == nil {
		t.Errorf("New with no key: got %v, want error", m)
	}
}
