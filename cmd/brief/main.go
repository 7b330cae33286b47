package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/brief"
	"github.com/fwojciec/brief/cache"
	"github.com/fwojciec/brief/fpdf"
	"github.com/fwojciec/brief/gemini"
	"github.com/fwojciec/brief/goldmark"
	"github.com/fwojciec/brief/goquery"
	"github.com/fwojciec/brief/openai"
	"github.com/fwojciec/brief/pipeline"
	"github.com/fwojciec/brief/ratelimit"
	briefslog "github.com/fwojciec/brief/slog"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getenv reads the environment. Set before calling Run().
	Getenv func(string) string

	// Config is the resolved configuration, available after Run().
	Config Config

	// Services for end-to-end testing. When set they replace the provider
	// clients built from Config.
	Embedder  brief.Embedder
	Generator brief.Generator
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Getenv: os.Getenv,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("brief"),
		kong.Description("Build SEO content briefs from competitor pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'brief --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	path, required := configPath(cli.Config, m.Getenv)
	cfg, err := LoadConfig(path, required)
	if err != nil {
		return err
	}
	cfg.ApplyEnv(m.Getenv)
	if cli.Generate.Provider != "" {
		cfg.Provider = cli.Generate.Provider
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	m.Config = cfg

	deps.Extractor = briefslog.NewLoggingExtractor(goquery.NewExtractor(), logger)
	deps.Renderers = map[brief.Format]brief.Renderer{
		brief.MarkdownFormat: brief.MarkdownRenderer{},
		brief.HTMLFormat:     goldmark.NewRenderer(),
		brief.PDFFormat:      fpdf.NewRenderer(),
	}

	if node := kongCtx.Selected(); node != nil && node.Name == "generate" {
		p, err := m.newPipeline(ctx, cli.Generate, cli.Verbose, deps, stderr)
		if err != nil {
			return err
		}
		deps.Pipeline = p
	}

	return kongCtx.Run(deps)
}

// newPipeline wires provider clients for the generate command. Clients are
// only created for the stages the flags require.
func (m *Main) newPipeline(ctx context.Context, c GenerateCmd, verbose bool, deps *Dependencies, stderr io.Writer) (*pipeline.Pipeline, error) {
	cfg := m.Config
	logger := deps.Logger
	p := &pipeline.Pipeline{
		Extractor:       deps.Extractor,
		Logger:          logger,
		RetryDelays:     pipeline.BackoffDelays(cfg.RetryAttempts, cfg.RetryBaseDelay),
		Temperature:     &cfg.Temperature,
		MaxOutputTokens: cfg.MaxOutputTokens,
	}

	// The tokenizer fetches its vocabulary on first use and prints a notice
	// to stdout, so it is only loaded when the count will be shown and
	// stdout does not carry the prompt.
	if verbose && !c.DryRun {
		if tc, err := gemini.NewTokenCounter(tokenizerModel); err != nil {
			logger.Debug("token counting disabled", "err", err)
		} else {
			p.TokenCounter = tc
		}
	}

	needEmbedder := c.Insights
	needGenerator := !c.DryRun
	if !needEmbedder && !needGenerator {
		return p, nil
	}

	limiter := ratelimit.NewLimiter(cfg.RequestsPerSecond)
	embedder, generator := m.Embedder, m.Generator
	if (needEmbedder && embedder == nil) || (needGenerator && generator == nil) {
		if cfg.APIKey() == "" {
			fmt.Fprintln(stderr, keyHint(cfg.Provider))
			return nil, brief.Errorf(brief.EINVALID, "%s API key not set", cfg.Provider)
		}
		var err error
		embedder, generator, err = providerClients(ctx, cfg, embedder, generator)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your API key is valid")
			return nil, err
		}
	}

	if needEmbedder {
		logged := briefslog.NewLoggingEmbedder(embedder, logger)
		deps.Embeddings = cache.NewEmbedder(ratelimit.NewEmbedder(logged, limiter))
		p.Ranker = brief.NewRanker(deps.Embeddings)
	}
	if needGenerator {
		p.Generator = ratelimit.NewGenerator(briefslog.NewLoggingGenerator(generator, logger), limiter)
	}

	return p, nil
}

// providerClients creates the clients not already supplied.
func providerClients(ctx context.Context, cfg Config, embedder brief.Embedder, generator brief.Generator) (brief.Embedder, brief.Generator, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		client := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
		if embedder == nil {
			embedder = openai.NewEmbedder(client, cfg.EmbeddingModel, cfg.BatchSize)
		}
		if generator == nil {
			generator = openai.NewGenerator(client, cfg.GenerationModel)
		}
	default:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		if embedder == nil {
			embedder = gemini.NewEmbedder(client, cfg.EmbeddingModel, cfg.BatchSize)
		}
		if generator == nil {
			generator = gemini.NewGenerator(client, cfg.GenerationModel)
		}
	}
	return embedder, generator, nil
}

// tokenizerModel is the local tokenizer used to report prompt size.
const tokenizerModel = "gemini-2.5-flash"
