// Package ratelimit throttles calls to the embedding and generation services.
package ratelimit

import (
	"context"

	"github.com/fwojciec/brief"
	"golang.org/x/time/rate"
)

// NewLimiter returns a token-bucket limiter allowing rps calls per second
// with no bursting. A non-positive rps disables limiting.
func NewLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(rps), 1)
}

var _ brief.Embedder = (*Embedder)(nil)

// Embedder waits on a limiter before each call to the wrapped embedder.
type Embedder struct {
	next    brief.Embedder
	limiter *rate.Limiter
}

// NewEmbedder wraps next with limiter.
func NewEmbedder(next brief.Embedder, limiter *rate.Limiter) *Embedder {
	return &Embedder{next: next, limiter: limiter}
}

// Model returns the wrapped embedder's model.
func (e *Embedder) Model() string {
	return e.next.Model()
}

// Embed blocks until the limiter allows a call, then delegates.
// Returns an error if the context is canceled while waiting.
func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return e.next.Embed(ctx, texts)
}

var _ brief.Generator = (*Generator)(nil)

// Generator waits on a limiter before each call to the wrapped generator.
type Generator struct {
	next    brief.Generator
	limiter *rate.Limiter
}

// NewGenerator wraps next with limiter.
func NewGenerator(next brief.Generator, limiter *rate.Limiter) *Generator {
	return &Generator{next: next, limiter: limiter}
}

// Model returns the wrapped generator's model.
func (g *Generator) Model() string {
	return g.next.Model()
}

// Generate blocks until the limiter allows a call, then delegates.
func (g *Generator) Generate(ctx context.Context, req brief.GenerateRequest) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return g.next.Generate(ctx, req)
}
