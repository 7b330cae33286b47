package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/brief"
	"github.com/fwojciec/brief/cache"
	"github.com/fwojciec/brief/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Extractor brief.Extractor
	Pipeline  *pipeline.Pipeline
	Renderers map[brief.Format]brief.Renderer

	// Embeddings is the cache in front of the embedding service, if any.
	Embeddings *cache.Embedder
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Config file (default ~/.brief/config.yaml, or BRIEF_CONFIG)" type:"path"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Generate GenerateCmd `cmd:"" help:"Generate a content brief from competitor pages"`
	Analyze  AnalyzeCmd  `cmd:"" help:"Show heading statistics and size policy for competitor pages"`
	Extract  ExtractCmd  `cmd:"" help:"Show the headings and metadata extracted from one page"`
	Render   RenderCmd   `cmd:"" help:"Render saved generator output as a document"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Keyword  string   `arg:"" help:"Target keyword"`
	Files    []string `arg:"" type:"path" help:"Competitor HTML files"`
	Tier     string   `short:"t" default:"medium" enum:"short,medium,long" help:"Article size (short, medium, long)"`
	Mode     string   `short:"m" default:"outline" enum:"outline,full" help:"Outline with guidance or full content"`
	Insights bool     `short:"i" help:"Rank competitor headings and paragraphs by relevance to the keyword"`
	Format   string   `short:"f" default:"markdown" enum:"markdown,md,html,pdf" help:"Output format"`
	Out      string   `short:"o" help:"Output file, - for stdout (default content_brief_<keyword>.<ext>)"`
	DryRun   bool     `help:"Print the prompt without calling the generator"`
	Provider string   `help:"Generation provider, gemini or openai (overrides config)"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	Files []string `arg:"" type:"path" help:"Competitor HTML files"`
	Tier  string   `short:"t" default:"medium" enum:"short,medium,long" help:"Article size (short, medium, long)"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File       string `arg:"" type:"path" help:"HTML file"`
	Paragraphs bool   `short:"p" help:"Include body paragraphs"`
}

// RenderCmd is the "render" subcommand.
type RenderCmd struct {
	File    string `arg:"" type:"path" help:"Generator output text file"`
	Keyword string `short:"k" required:"" help:"Target keyword used for the title"`
	Format  string `short:"f" default:"markdown" enum:"markdown,md,html,pdf" help:"Output format"`
	Out     string `short:"o" help:"Output file, - for stdout (default content_brief_<keyword>.<ext>)"`
}
