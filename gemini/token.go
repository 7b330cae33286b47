package gemini

import (
	"context"

	"github.com/fwojciec/brief"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ brief.TokenCounter = (*TokenCounter)(nil)

// TokenCounter estimates the size of generation requests with the local
// Gemini tokenizer. Counts include the system instruction sent alongside
// every prompt.
type TokenCounter struct {
	tok    *tokenizer.LocalTokenizer
	model  string
	system *genai.Content
}

// NewTokenCounter creates a TokenCounter for a tokenizer-supported model.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, brief.Errorf(brief.EINVALID, "tokenizer for %q: %v", model, err)
	}
	return &TokenCounter{
		tok:    tok,
		model:  model,
		system: genai.NewContentFromText(brief.SystemInstruction, genai.RoleUser),
	}, nil
}

// Model returns the tokenizer model name.
func (tc *TokenCounter) Model() string {
	return tc.model
}

// CountTokens returns the token count of a request carrying text as its
// prompt. Empty text counts as zero.
func (tc *TokenCounter) CountTokens(_ context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens(
		[]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)},
		&genai.CountTokensConfig{SystemInstruction: tc.system},
	)
	if err != nil {
		return 0, brief.Errorf(brief.EINTERNAL, "count tokens: %v", err)
	}
	return int(result.TotalTokens), nil
}
