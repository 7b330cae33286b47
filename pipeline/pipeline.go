// Package pipeline composes extraction, aggregation, ranking, sizing and
// prompt assembly into a single synchronous content-brief request.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/brief"
	"github.com/google/uuid"
)

// Pipeline runs content-brief requests end to end.
type Pipeline struct {
	Extractor brief.Extractor

	// Ranker is optional. Without it insights are never computed.
	Ranker *brief.Ranker

	// Generator is required by Run only.
	Generator brief.Generator

	// TokenCounter is optional and only used to log the prompt size.
	TokenCounter brief.TokenCounter

	Logger      *slog.Logger
	RetryDelays []time.Duration

	// Temperature defaults to brief.DefaultTemperature when nil. A pointer
	// to zero requests deterministic sampling.
	Temperature *float32

	// MaxOutputTokens defaults to brief.DefaultMaxOutputTokens when zero.
	MaxOutputTokens int

	// Progress, if set, receives an event as each stage begins.
	Progress ProgressFunc
}

// Request is one content-brief request.
type Request struct {
	// ID identifies the request in logs. Generated when empty.
	ID        string
	Keyword   string
	Documents []brief.Document
	Tier      brief.Tier
	Mode      brief.ContentMode

	// Insights enables embedding-based ranking of headings and paragraphs.
	Insights bool
}

// Result holds everything produced for a request.
type Result struct {
	RequestID        string
	Extracts         []*brief.PageExtract
	Stats            brief.CorpusStats
	Policy           brief.SizePolicy
	HeadingRanking   *brief.Ranking
	ParagraphRanking *brief.Ranking
	CompetitorInfo   string
	Prompt           string

	// Output is the generator's text. Empty after Analyze.
	Output string
}

// Stage names a step of a request.
type Stage int

const (
	StageExtract Stage = iota
	StageAggregate
	StageRank
	StagePrompt
	StageGenerate
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageExtract:
		return "extract"
	case StageAggregate:
		return "aggregate"
	case StageRank:
		return "rank"
	case StagePrompt:
		return "prompt"
	case StageGenerate:
		return "generate"
	}
	return ""
}

// ProgressFunc is a callback for reporting stage transitions.
type ProgressFunc func(requestID string, stage Stage)

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p.Logger
}

func (p *Pipeline) stage(id string, s Stage) {
	p.logger().Debug("stage", "request_id", id, "stage", s.String())
	if p.Progress != nil {
		p.Progress(id, s)
	}
}

// Analyze runs every stage except generation. The only network calls are
// embeddings, made when the request asks for insights.
func (p *Pipeline) Analyze(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Keyword) == "" {
		return nil, brief.Errorf(brief.EINVALID, "keyword required")
	}
	if len(req.Documents) == 0 {
		return nil, brief.Errorf(brief.EINVALID, "at least one document required")
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	log := p.logger().With("request_id", id)
	res := &Result{RequestID: id}

	p.stage(id, StageExtract)
	opts := brief.ExtractOptions{Paragraphs: req.Insights}
	sets := make([]brief.HeadingSet, 0, len(req.Documents))
	for _, doc := range req.Documents {
		page := p.Extractor.Extract(doc.HTML, opts)
		page.Source = doc.Name
		if page.Warning != "" {
			log.Warn("document degraded", "source", doc.Name, "warning", page.Warning)
		}
		res.Extracts = append(res.Extracts, page)
		sets = append(sets, page.Headings)
	}

	p.stage(id, StageAggregate)
	res.Stats = brief.Aggregate(sets)
	res.Policy = brief.NewSizePolicy(req.Tier, res.Stats.TotalHeadingCount)
	res.CompetitorInfo = brief.FormatCompetitorInfo(res.Extracts)

	if req.Insights && p.Ranker != nil {
		p.stage(id, StageRank)
		var headings, paragraphs []string
		for _, page := range res.Extracts {
			headings = append(headings, page.Headings.Flatten()...)
			paragraphs = append(paragraphs, page.Paragraphs...)
		}
		var err error
		if res.HeadingRanking, err = p.rank(ctx, log, req.Keyword, "headings", headings); err != nil {
			return nil, err
		}
		if res.ParagraphRanking, err = p.rank(ctx, log, req.Keyword, "paragraphs", brief.SubstantiveParagraphs(paragraphs)); err != nil {
			return nil, err
		}
	}

	p.stage(id, StagePrompt)
	res.Prompt = brief.BuildPrompt(brief.PromptInput{
		Keyword:           req.Keyword,
		Stats:             res.Stats,
		CompetitorInfo:    res.CompetitorInfo,
		Policy:            res.Policy,
		Mode:              req.Mode,
		HeadingInsights:   res.HeadingRanking,
		ParagraphInsights: res.ParagraphRanking,
	})

	if p.TokenCounter != nil {
		if n, err := p.TokenCounter.CountTokens(ctx, res.Prompt); err != nil {
			log.Debug("token count failed", "err", err)
		} else {
			log.Debug("prompt assembled", "chars", len(res.Prompt), "tokens", n)
		}
	}

	return res, nil
}

// rank degrades an unavailable embedding service to RankingUnavailable so
// the prompt falls back to the no-insights text. Other errors are returned.
func (p *Pipeline) rank(ctx context.Context, log *slog.Logger, keyword, kind string, fragments []string) (*brief.Ranking, error) {
	ranking, err := p.Ranker.Rank(ctx, keyword, fragments)
	if err == nil {
		log.Debug("ranked", "kind", kind, "candidates", len(fragments), "status", ranking.Status.String())
		return ranking, nil
	}
	if brief.ErrorCode(err) == brief.EUNAVAILABLE {
		log.Warn("ranking unavailable", "kind", kind, "err", brief.ErrorMessage(err))
		return &brief.Ranking{Status: brief.RankingUnavailable}, nil
	}
	return nil, err
}

// Run analyzes the request and sends the prompt to the generator, retrying
// failed generations with RetryDelays between attempts.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	if p.Generator == nil {
		return nil, brief.Errorf(brief.EINTERNAL, "generator not configured")
	}

	res, err := p.Analyze(ctx, req)
	if err != nil {
		return nil, err
	}

	p.stage(res.RequestID, StageGenerate)
	gr := brief.GenerateRequest{
		System:          brief.SystemInstruction,
		Prompt:          res.Prompt,
		Temperature:     brief.DefaultTemperature,
		MaxOutputTokens: p.MaxOutputTokens,
	}
	if p.Temperature != nil {
		gr.Temperature = *p.Temperature
	}
	if gr.MaxOutputTokens == 0 {
		gr.MaxOutputTokens = brief.DefaultMaxOutputTokens
	}

	delays := p.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	log := p.logger().With("request_id", res.RequestID)
	retryLog := func(attempt int, err error) {
		log.Warn("generation retry", "attempt", attempt, "err", err)
	}

	out, err := GenerateWithRetryDelays(ctx, p.Generator, gr, retryLog, delays)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}
	res.Output = out
	return res, nil
}
