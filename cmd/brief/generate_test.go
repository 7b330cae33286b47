package main_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/brief"
	main "github.com/fwojciec/brief/cmd/brief"
	"github.com/fwojciec/brief/goquery"
	"github.com/fwojciec/brief/mock"
	"github.com/fwojciec/brief/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders generator output with selected format", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		page := writeFile(t, dir, "espresso.html", espressoPage)
		outPath := filepath.Join(dir, "out", "brief.pdf")

		var rendered []brief.Block
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Pipeline: &pipeline.Pipeline{
				Extractor: goquery.NewExtractor(),
				Generator: &mock.Generator{
					GenerateFn: func(context.Context, brief.GenerateRequest) (string, error) {
						return "**H2: Intro**", nil
					},
				},
			},
			Renderers: map[brief.Format]brief.Renderer{
				brief.PDFFormat: &mock.Renderer{
					RenderFn: func(w io.Writer, keyword string, blocks []brief.Block) error {
						rendered = blocks
						_, err := io.WriteString(w, "%PDF-"+keyword)
						return err
					},
				},
			},
		}

		cmd := &main.GenerateCmd{Keyword: "espresso", Files: []string{page}, Tier: "short", Mode: "outline", Format: "pdf", Out: outPath}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []brief.Block{{Kind: brief.BlockHeading, Level: 2, Text: "H2: Intro"}}, rendered)
		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-espresso", string(data))
	})

	t.Run("writes nothing when generation fails", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		page := writeFile(t, dir, "espresso.html", espressoPage)
		outPath := filepath.Join(dir, "brief.md")
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Pipeline: &pipeline.Pipeline{
				Extractor: goquery.NewExtractor(),
				Generator: &mock.Generator{
					GenerateFn: func(context.Context, brief.GenerateRequest) (string, error) {
						return "", errors.New("service down")
					},
				},
				RetryDelays: noDelays,
			},
			Renderers: map[brief.Format]brief.Renderer{brief.MarkdownFormat: brief.MarkdownRenderer{}},
		}

		cmd := &main.GenerateCmd{Keyword: "espresso", Files: []string{page}, Tier: "medium", Mode: "outline", Format: "markdown", Out: outPath}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "service down")
		assert.NoFileExists(t, outPath)
	})

	t.Run("rejects unknown tier", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

		cmd := &main.GenerateCmd{Keyword: "espresso", Tier: "huge", Mode: "outline", Format: "markdown"}
		err := cmd.Run(deps)

		assert.Equal(t, brief.EINVALID, brief.ErrorCode(err))
	})
}

// noDelays disables retry waits.
var noDelays = []time.Duration{0, 0}
