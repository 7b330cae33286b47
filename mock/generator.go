package mock

import (
	"context"

	"github.com/fwojciec/brief"
)

var _ brief.Generator = (*Generator)(nil)

// Generator is a mock implementation of brief.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, req brief.GenerateRequest) (string, error)
	ModelFn    func() string
}

func (g *Generator) Generate(ctx context.Context, req brief.GenerateRequest) (string, error) {
	return g.GenerateFn(ctx, req)
}

func (g *Generator) Model() string {
	if g.ModelFn == nil {
		return "mock-generation"
	}
	return g.ModelFn()
}
