package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/brief"
	"golang.org/x/net/html"
)

// Ensure Extractor implements brief.Extractor at compile time.
var _ brief.Extractor = (*Extractor)(nil)

// boilerplateTags are removed together with their contents before any
// content is extracted.
const boilerplateTags = "script, style, noscript, header, footer, nav, aside"

// BoilerplateIdentifiers lists class and id values that mark non-content
// regions. Matching is exact: a class matches when one of the element's
// class tokens equals the identifier.
var BoilerplateIdentifiers = []string{
	"nav", "navigation", "sidebar", "footer", "header", "menu",
	"breadcrumbs", "breadcrumb", "site-footer", "site-header",
	"widget", "widgets", "site-navigation", "main-navigation",
	"secondary-navigation", "site-sidebar",
}

// mainScopeSelectors are tried in order to find the main content region.
var mainScopeSelectors = []string{
	"main",
	"article",
	`div[class~="content"]`,
	`div[id="content"]`,
}

const headingSelector = "h1, h2, h3, h4"

// Extractor isolates the main content of a page with goquery and extracts
// headings, metadata and paragraphs from it.
type Extractor struct {
	boilerplate string
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	selectors := make([]string, 0, 2*len(BoilerplateIdentifiers))
	for _, id := range BoilerplateIdentifiers {
		selectors = append(selectors, `[class~="`+id+`"]`, `[id="`+id+`"]`)
	}
	return &Extractor{boilerplate: strings.Join(selectors, ", ")}
}

// Extract parses rawHTML and returns its structural signals. It never fails:
// input that cannot be parsed yields an empty extract with Warning set.
func (e *Extractor) Extract(rawHTML string, opts brief.ExtractOptions) *brief.PageExtract {
	if strings.TrimSpace(rawHTML) == "" {
		return &brief.PageExtract{Warning: "empty HTML input"}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return &brief.PageExtract{Warning: "failed to parse HTML: " + err.Error()}
	}

	doc.Find(boilerplateTags).Remove()
	doc.Find(e.boilerplate).Remove()

	page := &brief.PageExtract{
		Title:       strings.TrimSpace(doc.Find("title").First().Text()),
		Description: metaDescription(doc),
	}

	scope := mainScope(doc)
	scope.Find(headingSelector).Each(func(_ int, sel *goquery.Selection) {
		level, err := brief.ParseHeadingLevel(goquery.NodeName(sel))
		if err != nil {
			return
		}
		if text := collapsedText(sel); text != "" {
			page.Headings.Add(level, text)
		}
	})

	if opts.Paragraphs {
		scope.Find("p").Each(func(_ int, sel *goquery.Selection) {
			if text := collapsedText(sel); text != "" {
				page.Paragraphs = append(page.Paragraphs, text)
			}
		})
	}

	return page
}

// mainScope returns the first main, article, div.content or div#content
// element. Without one it falls back to the body, and without a body to
// the whole document. Top-level boilerplate has already been removed at
// that point.
func mainScope(doc *goquery.Document) *goquery.Selection {
	for _, selector := range mainScopeSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	if body := doc.Find("body").First(); body.Length() > 0 {
		return body
	}
	return doc.Selection
}

func metaDescription(doc *goquery.Document) string {
	content, _ := doc.Find(`meta[name="description"]`).First().Attr("content")
	return strings.TrimSpace(content)
}

// collapsedText joins the selection's text nodes with single spaces,
// collapsing whitespace inside each node and dropping empty nodes.
func collapsedText(sel *goquery.Selection) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if fields := strings.Fields(n.Data); len(fields) > 0 {
				parts = append(parts, strings.Join(fields, " "))
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}
