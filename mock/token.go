package mock

import (
	"context"
	"strings"

	"github.com/fwojciec/brief"
)

var _ brief.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of brief.TokenCounter. Without
// CountTokensFn it counts whitespace-separated words.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if tc.CountTokensFn == nil {
		return len(strings.Fields(text)), nil
	}
	return tc.CountTokensFn(ctx, text)
}
