package mock

import (
	"context"

	"github.com/fwojciec/brief"
)

var _ brief.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of brief.Embedder.
type Embedder struct {
	EmbedFn func(ctx context.Context, texts []string) ([][]float32, error)
	ModelFn func() string
}

func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return e.EmbedFn(ctx, texts)
}

func (e *Embedder) Model() string {
	if e.ModelFn == nil {
		return "mock-embedding"
	}
	return e.ModelFn()
}
