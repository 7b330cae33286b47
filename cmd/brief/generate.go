package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/brief"
	"github.com/fwojciec/brief/fs"
	"github.com/fwojciec/brief/pipeline"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	tier, err := brief.ParseTier(c.Tier)
	if err != nil {
		return reportError(deps, err)
	}
	mode, err := brief.ParseContentMode(c.Mode)
	if err != nil {
		return reportError(deps, err)
	}
	format, err := brief.ParseFormat(c.Format)
	if err != nil {
		return reportError(deps, err)
	}

	docs, err := fs.ReadDocuments(c.Files)
	if err != nil {
		return reportError(deps, err)
	}

	req := pipeline.Request{
		Keyword:   c.Keyword,
		Documents: docs,
		Tier:      tier,
		Mode:      mode,
		Insights:  c.Insights,
	}

	defer logCacheStats(deps)

	if c.DryRun {
		res, err := deps.Pipeline.Analyze(deps.Ctx, req)
		if err != nil {
			return reportError(deps, err)
		}
		fmt.Fprint(deps.Stdout, res.Prompt)
		return nil
	}

	deps.Pipeline.Progress = func(_ string, stage pipeline.Stage) {
		if stage == pipeline.StageGenerate {
			fmt.Fprintf(deps.Stderr, "Generating brief for %q from %d pages...\n", c.Keyword, len(docs))
		}
	}
	res, err := deps.Pipeline.Run(deps.Ctx, req)
	if err != nil {
		return reportError(deps, err)
	}

	return writeBrief(deps, c.Out, c.Keyword, format, brief.ParseOutline(res.Output))
}

// writeBrief renders blocks to out, stdout for "-" or the default file name
// when empty.
func writeBrief(deps *Dependencies, out, keyword string, format brief.Format, blocks []brief.Block) error {
	renderer, ok := deps.Renderers[format]
	if !ok {
		return reportError(deps, brief.Errorf(brief.EINVALID, "no renderer for format %q", format))
	}

	if out == "-" {
		if err := renderer.Render(deps.Stdout, keyword, blocks); err != nil {
			return reportError(deps, err)
		}
		return nil
	}

	if out == "" {
		out = fs.OutputPath(keyword, format)
	}
	if err := fs.WriteFile(out, func(w io.Writer) error {
		return renderer.Render(w, keyword, blocks)
	}); err != nil {
		return reportError(deps, err)
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s (%d blocks)\n", out, len(blocks))
	return nil
}

func logCacheStats(deps *Dependencies) {
	if deps.Embeddings == nil || deps.Logger == nil {
		return
	}
	hits, misses := deps.Embeddings.Stats()
	deps.Logger.Debug("embedding cache", "hits", hits, "misses", misses)
}

// reportError prints the user-facing message for err and returns it.
func reportError(deps *Dependencies, err error) error {
	if brief.ErrorCode(err) == brief.EINTERNAL {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
	} else {
		fmt.Fprintf(deps.Stderr, "error: %s\n", brief.ErrorMessage(err))
	}
	return err
}
