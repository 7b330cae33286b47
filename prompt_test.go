package brief_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/brief"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContentMode(t *testing.T) {
	t.Parallel()

	mode, err := brief.ParseContentMode("FULL")
	require.NoError(t, err)
	assert.Equal(t, brief.ModeFull, mode)

	_, err = brief.ParseContentMode("summary")
	require.Error(t, err)
	assert.Equal(t, brief.EINVALID, brief.ErrorCode(err))
}

func TestFormatCompetitorInfo(t *testing.T) {
	t.Parallel()

	var headings brief.HeadingSet
	headings.Add(brief.H1, "Best Coffee Grinders")
	headings.Add(brief.H2, "Burr vs Blade")
	pages := []*brief.PageExtract{
		{Title: "Grinders 2026", Description: "Our picks", Headings: headings},
		{},
	}

	info := brief.FormatCompetitorInfo(pages)

	assert.Contains(t, info, "Competitor #1 Meta Title: Grinders 2026\n")
	assert.Contains(t, info, "Competitor #1 Meta Description: Our picks\n")
	assert.Contains(t, info, "Competitor #1 Headings:\nH1: Best Coffee Grinders\nH2: Burr vs Blade\n")
	assert.Contains(t, info, "Competitor #2 Meta Title: \n")
}

func TestFormatStats(t *testing.T) {
	t.Parallel()

	var doc brief.HeadingSet
	doc.Add(brief.H2, "Intro")
	doc.Add(brief.H2, "Intro")
	stats := brief.Aggregate([]brief.HeadingSet{doc})

	out := brief.FormatStats(stats)

	assert.Contains(t, out, "H2: 2 headings, average length 5.0 characters; common words: intro (2)\n")
	assert.Contains(t, out, "H4: 0 headings, average length 0.0 characters\n")
	assert.Contains(t, out, "Total headings: 2\n")
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	stats := brief.CorpusStats{TotalHeadingCount: 41}
	input := brief.PromptInput{
		Keyword:        "espresso machines",
		Stats:          stats,
		CompetitorInfo: "Competitor #1 Meta Title: Espresso 101\n",
		Policy:         brief.NewSizePolicy(brief.TierShort, stats.TotalHeadingCount),
		Mode:           brief.ModeOutline,
	}

	t.Run("includes keyword, competitor info and sizing", func(t *testing.T) {
		t.Parallel()

		prompt := brief.BuildPrompt(input)

		assert.Contains(t, prompt, `targeting the keyword "espresso machines"`)
		assert.Contains(t, prompt, "Competitor #1 Meta Title: Espresso 101")
		assert.Contains(t, prompt, "about 41 total headings")
		assert.Contains(t, prompt, "For a short article, aim for roughly 7-10 total H2/H3/H4 headings")
		assert.Contains(t, prompt, "800-1,200 words")
		assert.Contains(t, prompt, "**H2: Heading Title**")
	})

	t.Run("selects guidance clause by mode", func(t *testing.T) {
		t.Parallel()

		outline := brief.BuildPrompt(input)
		full := input
		full.Mode = brief.ModeFull
		fullPrompt := brief.BuildPrompt(full)

		assert.Contains(t, outline, "brief (1-2 sentences)")
		assert.NotContains(t, outline, "detailed, original paragraphs")
		assert.Contains(t, fullPrompt, "detailed, original paragraphs")
	})

	t.Run("renders fallback text without insights", func(t *testing.T) {
		t.Parallel()

		in := input
		in.ParagraphInsights = &brief.Ranking{Status: brief.RankingUnavailable}

		prompt := brief.BuildPrompt(in)

		assert.Equal(t, 2, strings.Count(prompt, brief.NoInsightsText))
	})

	t.Run("numbers ranked fragments", func(t *testing.T) {
		t.Parallel()

		in := input
		in.HeadingInsights = &brief.Ranking{Status: brief.RankingOK, Fragments: []brief.RankedFragment{
			{Text: "How to descale", Score: 0.9},
		}}
		in.ParagraphInsights = &brief.Ranking{Status: brief.RankingOK, Fragments: []brief.RankedFragment{
			{Text: "Pressure matters more than most buyers expect.", Score: 0.8},
			{Text: "Single boilers are cheaper but slower between shots.", Score: 0.7},
		}}

		prompt := brief.BuildPrompt(in)

		assert.Contains(t, prompt, "Competitor Heading #1:\nHow to descale\n")
		assert.Contains(t, prompt, "Competitor Snippet #2:\nSingle boilers are cheaper but slower between shots.\n")
		assert.NotContains(t, prompt, brief.NoInsightsText)
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, brief.BuildPrompt(input), brief.BuildPrompt(input))
	})
}
