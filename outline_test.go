package brief_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/brief"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOutput = `**Meta Title Recommendation:**
Best Espresso Machines for Home Baristas

---

**Meta Description Recommendation:**
Compare the top espresso machines.

---

**H1 Tag Recommendation:**
The Best Espresso Machines

---

**Content Outline:**

**H2: Choosing a Machine**
- **Content Guidance:** Explain boiler types.

**H3: Single Boiler**
- **Content Guidance:** Cover heat-up times.

### H4: Budget Picks
- a plain bullet

---

**Final Summary**
Wrap up the buying advice.
---
`

func TestParseOutline(t *testing.T) {
	t.Parallel()

	t.Run("interprets labelled sections and headings", func(t *testing.T) {
		t.Parallel()

		blocks := brief.ParseOutline(sampleOutput)

		expected := []brief.Block{
			{Kind: brief.BlockHeading, Level: 4, Text: "Meta Title Recommendation"},
			{Kind: brief.BlockParagraph, Text: "Best Espresso Machines for Home Baristas"},
			{Kind: brief.BlockHeading, Level: 4, Text: "Meta Description Recommendation"},
			{Kind: brief.BlockParagraph, Text: "Compare the top espresso machines."},
			{Kind: brief.BlockHeading, Level: 4, Text: "H1 Tag Recommendation"},
			{Kind: brief.BlockParagraph, Text: "The Best Espresso Machines"},
			{Kind: brief.BlockHeading, Level: 1, Text: "Content Outline"},
			{Kind: brief.BlockHeading, Level: 2, Text: "H2: Choosing a Machine"},
			{Kind: brief.BlockParagraph, Text: "Explain boiler types."},
			{Kind: brief.BlockHeading, Level: 3, Text: "H3: Single Boiler"},
			{Kind: brief.BlockParagraph, Text: "Cover heat-up times."},
			{Kind: brief.BlockHeading, Level: 4, Text: "H4: Budget Picks"},
			{Kind: brief.BlockParagraph, Text: "- a plain bullet"},
			{Kind: brief.BlockHeading, Level: 1, Text: "Final Summary"},
			{Kind: brief.BlockParagraph, Text: "Wrap up the buying advice."},
		}
		assert.Equal(t, expected, blocks)
	})

	t.Run("keeps text following a label on the same line", func(t *testing.T) {
		t.Parallel()

		blocks := brief.ParseOutline("**Meta Title Recommendation:** Grind Like a Pro")

		require.Len(t, blocks, 2)
		assert.Equal(t, "Grind Like a Pro", blocks[1].Text)
	})

	t.Run("tolerates unstructured output", func(t *testing.T) {
		t.Parallel()

		blocks := brief.ParseOutline("Sorry, here is some free text.\n\nAnd more.")

		assert.Equal(t, []brief.Block{
			{Kind: brief.BlockParagraph, Text: "Sorry, here is some free text."},
			{Kind: brief.BlockParagraph, Text: "And more."},
		}, blocks)
	})

	t.Run("returns nothing for empty output", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, brief.ParseOutline("  \n---\n"))
	})
}

func TestFormatMarkdown(t *testing.T) {
	t.Parallel()

	blocks := []brief.Block{
		{Kind: brief.BlockHeading, Level: 2, Text: "H2: Choosing a Machine"},
		{Kind: brief.BlockParagraph, Text: "Explain boiler types."},
	}

	md := brief.FormatMarkdown("espresso", blocks)

	assert.Equal(t, "# Content Brief: espresso\n\n## H2: Choosing a Machine\n\nExplain boiler types.\n", md)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := brief.ParseFormat("md")
	require.NoError(t, err)
	assert.Equal(t, brief.MarkdownFormat, f)
	assert.Equal(t, "md", f.Ext())

	f, err = brief.ParseFormat("PDF")
	require.NoError(t, err)
	assert.Equal(t, "pdf", f.Ext())

	_, err = brief.ParseFormat("docx")
	assert.Equal(t, brief.EINVALID, brief.ErrorCode(err))
}

func TestMarkdownRenderer_Render(t *testing.T) {
	t.Parallel()

	blocks := []brief.Block{{Kind: brief.BlockParagraph, Text: "Body."}}

	var sb strings.Builder
	err := brief.MarkdownRenderer{}.Render(&sb, "espresso", blocks)

	require.NoError(t, err)
	assert.Equal(t, brief.FormatMarkdown("espresso", blocks), sb.String())
}
