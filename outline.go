package brief

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// BlockKind distinguishes rendered outline blocks.
type BlockKind int

// Block kinds.
const (
	BlockHeading BlockKind = iota
	BlockParagraph
)

// Block is one renderable unit of a generated brief.
type Block struct {
	Kind BlockKind

	// Level is the heading level (1-4) for BlockHeading blocks.
	Level int
	Text  string
}

// Renderer writes a content brief in a specific document format.
type Renderer interface {
	Render(w io.Writer, keyword string, blocks []Block) error
}

// Format is an output document format.
type Format string

// Supported output formats.
const (
	MarkdownFormat Format = "markdown"
	HTMLFormat     Format = "html"
	PDFFormat      Format = "pdf"
)

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case MarkdownFormat, HTMLFormat, PDFFormat:
		return f, nil
	case "md":
		return MarkdownFormat, nil
	}
	return "", Errorf(EINVALID, "unknown output format %q (want markdown, html or pdf)", s)
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	if f == MarkdownFormat {
		return "md"
	}
	return string(f)
}

// BriefTitle returns the document title for a keyword.
func BriefTitle(keyword string) string {
	return "Content Brief: " + keyword
}

// sectionLabels maps the labelled sections requested in the prompt to the
// heading level they are rendered at.
var sectionLabels = []struct {
	label string
	title string
	level int
}{
	{"Meta Title Recommendation:", "Meta Title Recommendation", 4},
	{"Meta Description Recommendation:", "Meta Description Recommendation", 4},
	{"H1 Tag Recommendation:", "H1 Tag Recommendation", 4},
	{"Content Outline:", "Content Outline", 1},
	{"Final Summary", "Final Summary", 1},
}

const guidanceLabel = "Content Guidance:"

// ParseOutline interprets generator output line by line. The generator is
// not guaranteed to follow the requested structure, so unrecognised lines
// become paragraphs and emphasis markers are tolerated but not required.
func ParseOutline(text string) []Block {
	var blocks []Block
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || isRule(line) {
			continue
		}
		blocks = append(blocks, parseLine(line)...)
	}
	return blocks
}

func parseLine(line string) []Block {
	bare := stripEmphasis(strings.TrimLeft(line, "# "))

	for _, s := range sectionLabels {
		if strings.HasPrefix(bare, s.label) {
			blocks := []Block{{Kind: BlockHeading, Level: s.level, Text: s.title}}
			if rest := stripEmphasis(bare[len(s.label):]); rest != "" {
				blocks = append(blocks, Block{Kind: BlockParagraph, Text: rest})
			}
			return blocks
		}
	}

	for _, level := range []HeadingLevel{H2, H3, H4} {
		prefix := level.Label() + ":"
		if strings.HasPrefix(bare, prefix) {
			heading := stripEmphasis(bare[len(prefix):])
			return []Block{{Kind: BlockHeading, Level: int(level) + 1, Text: prefix + " " + heading}}
		}
	}

	if item := strings.TrimSpace(strings.TrimPrefix(line, "-")); item != line {
		if g := stripEmphasis(item); strings.HasPrefix(g, guidanceLabel) {
			return []Block{{Kind: BlockParagraph, Text: stripEmphasis(g[len(guidanceLabel):])}}
		}
	}

	return []Block{{Kind: BlockParagraph, Text: line}}
}

// stripEmphasis removes markdown bold markers and surrounding space.
func stripEmphasis(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "**", ""))
}

func isRule(line string) bool {
	return strings.Trim(line, "-") == "" && len(line) >= 3
}

// FormatMarkdown renders blocks as a markdown document titled with the keyword.
func FormatMarkdown(keyword string, blocks []Block) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n", BriefTitle(keyword))
	for _, b := range blocks {
		sb.WriteString("\n")
		switch b.Kind {
		case BlockHeading:
			fmt.Fprintf(&sb, "%s %s\n", strings.Repeat("#", max(b.Level, 1)), b.Text)
		default:
			sb.WriteString(b.Text)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Ensure MarkdownRenderer implements Renderer.
var _ Renderer = MarkdownRenderer{}

// MarkdownRenderer writes FormatMarkdown output.
type MarkdownRenderer struct{}

// Render writes the markdown document to w.
func (MarkdownRenderer) Render(w io.Writer, keyword string, blocks []Block) error {
	_, err := io.WriteString(w, FormatMarkdown(keyword, blocks))
	return err
}
