package brief

import "context"

// GenerateRequest is one text completion request.
type GenerateRequest struct {
	// System is the system instruction sent alongside the prompt.
	System string

	Prompt          string
	Temperature     float32
	MaxOutputTokens int
}

// Generator produces free text from a prompt using a language model.
type Generator interface {
	// Generate returns the model's completion for the request.
	// Returns EINVALID if the prompt is empty.
	Generate(ctx context.Context, req GenerateRequest) (string, error)

	// Model returns the generation model identifier.
	Model() string
}
