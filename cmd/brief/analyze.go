package main

import (
	"github.com/fwojciec/brief"
	"github.com/fwojciec/brief/fs"
	"gopkg.in/yaml.v3"
)

// analysisOutput is the YAML document printed by the analyze command.
type analysisOutput struct {
	Pages      []pageSummary               `yaml:"pages"`
	Levels     map[string]brief.LevelStats `yaml:"levels"`
	Total      int                         `yaml:"total_heading_count"`
	Tier       string                      `yaml:"tier"`
	SizePolicy brief.SizePolicy            `yaml:"size_policy"`
}

type pageSummary struct {
	Source   string `yaml:"source"`
	Title    string `yaml:"title"`
	Headings int    `yaml:"headings"`
	Warning  string `yaml:"warning,omitempty"`
}

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	tier, err := brief.ParseTier(c.Tier)
	if err != nil {
		return reportError(deps, err)
	}

	docs, err := fs.ReadDocuments(c.Files)
	if err != nil {
		return reportError(deps, err)
	}

	out := analysisOutput{Levels: make(map[string]brief.LevelStats, brief.NumHeadingLevels)}
	sets := make([]brief.HeadingSet, 0, len(docs))
	for _, doc := range docs {
		page := deps.Extractor.Extract(doc.HTML, brief.ExtractOptions{})
		sets = append(sets, page.Headings)
		out.Pages = append(out.Pages, pageSummary{
			Source:   doc.Name,
			Title:    page.Title,
			Headings: page.Headings.Total(),
			Warning:  page.Warning,
		})
	}

	stats := brief.Aggregate(sets)
	for _, level := range brief.HeadingLevels {
		out.Levels[level.String()] = stats.Level(level)
	}
	out.Total = stats.TotalHeadingCount
	out.Tier = tier.String()
	out.SizePolicy = brief.NewSizePolicy(tier, stats.TotalHeadingCount)

	return encodeYAML(deps, out)
}

func encodeYAML(deps *Dependencies, v any) error {
	enc := yaml.NewEncoder(deps.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return reportError(deps, err)
	}
	return enc.Close()
}
