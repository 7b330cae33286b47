package main

import (
	"github.com/fwojciec/brief"
	"github.com/fwojciec/brief/fs"
)

// extractOutput is the YAML document printed by the extract command.
type extractOutput struct {
	Source      string              `yaml:"source"`
	Title       string              `yaml:"title"`
	Description string              `yaml:"description"`
	Headings    map[string][]string `yaml:"headings"`
	Paragraphs  []string            `yaml:"paragraphs,omitempty"`
	Warning     string              `yaml:"warning,omitempty"`
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	doc, err := fs.ReadDocument(c.File)
	if err != nil {
		return reportError(deps, err)
	}

	page := deps.Extractor.Extract(doc.HTML, brief.ExtractOptions{Paragraphs: c.Paragraphs})

	out := extractOutput{
		Source:      doc.Name,
		Title:       page.Title,
		Description: page.Description,
		Headings:    make(map[string][]string),
		Paragraphs:  page.Paragraphs,
		Warning:     page.Warning,
	}
	for _, level := range brief.HeadingLevels {
		if hs := page.Headings[level]; len(hs) > 0 {
			out.Headings[level.String()] = hs
		}
	}

	return encodeYAML(deps, out)
}
