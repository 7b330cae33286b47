package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/brief"
)

// Ensure LoggingGenerator implements brief.Generator.
var _ brief.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with logging.
type LoggingGenerator struct {
	next   brief.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next brief.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Model delegates to the wrapped generator.
func (g *LoggingGenerator) Model() string {
	return g.next.Model()
}

// Generate delegates to the wrapped generator and logs prompt and output sizes.
func (g *LoggingGenerator) Generate(ctx context.Context, req brief.GenerateRequest) (text string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generation",
			"model", g.next.Model(),
			"prompt_chars", len(req.Prompt),
			"output_chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, req)
}
