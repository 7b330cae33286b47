package brief

import (
	"fmt"
	"strings"
)

// ContentMode selects how much text the generator is asked to write.
type ContentMode int

// Content modes.
const (
	ModeOutline ContentMode = iota
	ModeFull
)

// String returns the CLI name of the mode.
func (m ContentMode) String() string {
	switch m {
	case ModeOutline:
		return "outline"
	case ModeFull:
		return "full"
	}
	return ""
}

// ParseContentMode parses "outline" or "full".
func ParseContentMode(s string) (ContentMode, error) {
	for _, m := range []ContentMode{ModeOutline, ModeFull} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, Errorf(EINVALID, "unknown content mode %q (want outline or full)", s)
}

// NoInsightsText replaces a ranking section when no ranked fragments exist.
const NoInsightsText = "No additional insights available."

// SystemInstruction is sent as the system message of every generation request.
const SystemInstruction = "Provide detailed SEO content recommendations based on the analysis and snippets."

// Default generation parameters.
const (
	DefaultTemperature     = 0.6
	DefaultMaxOutputTokens = 8192
)

// PromptInput holds everything the prompt is assembled from.
type PromptInput struct {
	Keyword        string
	Stats          CorpusStats
	CompetitorInfo string
	Policy         SizePolicy
	Mode           ContentMode

	// HeadingInsights and ParagraphInsights are optional. A nil ranking or
	// one without fragments renders NoInsightsText.
	HeadingInsights   *Ranking
	ParagraphInsights *Ranking
}

// FormatCompetitorInfo renders the metadata and headings of every page in
// input order, numbered from 1.
func FormatCompetitorInfo(pages []*PageExtract) string {
	var sb strings.Builder
	for i, p := range pages {
		n := i + 1
		fmt.Fprintf(&sb, "Competitor #%d Meta Title: %s\n", n, p.Title)
		fmt.Fprintf(&sb, "Competitor #%d Meta Description: %s\n", n, p.Description)
		fmt.Fprintf(&sb, "Competitor #%d Headings:\n", n)
		for _, level := range HeadingLevels {
			for _, h := range p.Headings[level] {
				fmt.Fprintf(&sb, "%s: %s\n", level.Label(), h)
			}
		}
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// FormatStats renders corpus statistics as one summary line per level.
func FormatStats(stats CorpusStats) string {
	var sb strings.Builder
	for _, level := range HeadingLevels {
		ls := stats.Level(level)
		fmt.Fprintf(&sb, "%s: %d headings, average length %.1f characters", level.Label(), ls.Count, ls.AverageLength)
		if len(ls.TopTerms) > 0 {
			terms := make([]string, len(ls.TopTerms))
			for i, tf := range ls.TopTerms {
				terms[i] = fmt.Sprintf("%s (%d)", tf.Term, tf.Frequency)
			}
			fmt.Fprintf(&sb, "; common words: %s", strings.Join(terms, ", "))
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Total headings: %d\n", stats.TotalHeadingCount)
	return sb.String()
}

func formatInsights(r *Ranking, label string) string {
	if r == nil || r.Status != RankingOK || len(r.Fragments) == 0 {
		return NoInsightsText + "\n"
	}
	var sb strings.Builder
	for i, f := range r.Fragments {
		fmt.Fprintf(&sb, "%s #%d:\n%s\n\n", label, i+1, f.Text)
	}
	return sb.String()
}

func lengthInstruction(in PromptInput) string {
	return fmt.Sprintf(`The competitors collectively have about %d total headings.
Try to produce a cohesive structure that covers the topic thoroughly.
For a %s article, aim for roughly %d-%d total H2/H3/H4 headings combined and a total length of about %s.
`, in.Stats.TotalHeadingCount, strings.ToLower(in.Policy.Tier.String()), in.Policy.EffectiveMin, in.Policy.EffectiveMax, in.Policy.WordCountGuidance)
}

func contentInstruction(mode ContentMode) string {
	if mode == ModeFull {
		return `For each heading in the content outline:
- **Content Guidance:** Provide detailed, original paragraphs of content. Incorporate relevant details from the provided competitor snippets if any.
`
	}
	return `For each heading in the content outline:
- **Content Guidance:** Provide a brief (1-2 sentences) description of what should be covered under this heading.
`
}

// BuildPrompt assembles the generation request text.
func BuildPrompt(in PromptInput) string {
	var sb strings.Builder
	sb.WriteString("You are an SEO content strategist.\n\n")
	fmt.Fprintf(&sb, "Your task is to create an optimized content outline and corresponding guidance (or full content) for a new article targeting the keyword %q.\n\n", in.Keyword)

	sb.WriteString("- **Competitor Heading Analysis**:\n")
	sb.WriteString(FormatStats(in.Stats))
	sb.WriteString("\n")

	sb.WriteString("- **Competitor Meta and Headings**:\n")
	sb.WriteString(in.CompetitorInfo)
	sb.WriteString("\n")

	sb.WriteString("- **Most Relevant Competitor Headings**:\n")
	sb.WriteString(formatInsights(in.HeadingInsights, "Competitor Heading"))
	sb.WriteString("\n")

	sb.WriteString("- **Relevant Competitor Snippets**:\n")
	sb.WriteString(formatInsights(in.ParagraphInsights, "Competitor Snippet"))
	sb.WriteString("\n")

	sb.WriteString(`Instructions:
1. Recommend an optimized meta title, meta description, and H1 tag.
2. Generate an optimized heading structure (H2/H3/H4) covering important subtopics and ensuring topical completeness.
3. Ensure the structure flows cohesively from basic to advanced concepts.
4. Include sections for common questions, comparisons, and practical steps.
5. Add subtopics not covered by competitors if relevant.
6. Provide a final summary.

`)
	sb.WriteString(lengthInstruction(in))
	sb.WriteString("\n")
	sb.WriteString(contentInstruction(in.Mode))
	sb.WriteString(`
Format:

**Meta Title Recommendation:**
Your recommendation

---

**Meta Description Recommendation:**
Your recommendation

---

**H1 Tag Recommendation:**
Your recommendation

---

**Content Outline:**

**H2: Heading Title**
- **Content Guidance:** [Content or guidance]

(Repeat for all headings)

---

**Final Summary**
Your summary
---
`)
	return sb.String()
}
