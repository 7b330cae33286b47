// Package goldmark renders content briefs as standalone HTML documents.
package goldmark

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/fwojciec/brief"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Ensure Renderer implements brief.Renderer.
var _ brief.Renderer = (*Renderer)(nil)

// Renderer converts the markdown form of a brief to HTML.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Linkify),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Render writes a complete HTML document. Block text is escaped by goldmark
// since raw HTML rendering is left disabled.
func (r *Renderer) Render(w io.Writer, keyword string, blocks []brief.Block) error {
	var body bytes.Buffer
	if err := r.md.Convert([]byte(brief.FormatMarkdown(keyword, blocks)), &body); err != nil {
		return fmt.Errorf("convert markdown: %w", err)
	}

	_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`, html.EscapeString(brief.BriefTitle(keyword)), body.String())
	return err
}
