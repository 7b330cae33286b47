// Package gemini implements text generation, embeddings and token counting
// on top of the Google Gemini API.
package gemini

import (
	"context"

	"github.com/fwojciec/brief"
	"google.golang.org/genai"
)

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements brief.Generator at compile time.
var _ brief.Generator = (*Generator)(nil)

// Generator implements brief.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator. An empty model selects DefaultModel.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Model returns the generation model identifier.
func (g *Generator) Model() string {
	return g.model
}

// Generate sends the prompt to Gemini and returns the response text.
func (g *Generator) Generate(ctx context.Context, req brief.GenerateRequest) (string, error) {
	if req.Prompt == "" {
		return "", brief.Errorf(brief.EINVALID, "prompt required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: req.Prompt}},
		}},
		BuildConfig(req),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", brief.Errorf(brief.EINTERNAL, "gemini returned nil result")
	}

	text := result.Text()
	if text == "" {
		return "", brief.Errorf(brief.EINTERNAL, "gemini returned empty response")
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig for a request.
func BuildConfig(req brief.GenerateRequest) *genai.GenerateContentConfig {
	temp := req.Temperature
	config := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: int32(req.MaxOutputTokens),
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	return config
}
