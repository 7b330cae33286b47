package brief

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Aggregation limits.
const (
	MaxTopTerms = 10
	MaxExamples = 10
)

// TermFrequency is a lowercased heading token and its occurrence count.
type TermFrequency struct {
	Term      string `yaml:"term"`
	Frequency int    `yaml:"frequency"`
}

// LevelStats summarises the headings of one level across all pages.
type LevelStats struct {
	Count int `yaml:"count"`

	// AverageLength is the mean heading length in characters, 0 when Count is 0.
	AverageLength float64 `yaml:"average_length"`

	// TopTerms is frequency-descending; ties keep first-seen order.
	TopTerms []TermFrequency `yaml:"top_terms"`

	// Examples are the first headings in aggregation order.
	Examples []string `yaml:"examples"`
}

// CorpusStats holds heading statistics for every level.
type CorpusStats struct {
	Levels            [NumHeadingLevels]LevelStats `yaml:"-"`
	TotalHeadingCount int                          `yaml:"total_heading_count"`
}

// Level returns the statistics for a heading level.
func (s CorpusStats) Level(l HeadingLevel) LevelStats {
	return s.Levels[l]
}

// Aggregate combines per-page heading sets into corpus statistics.
// Headings are concatenated in page order, then document order.
func Aggregate(sets []HeadingSet) CorpusStats {
	var stats CorpusStats
	for _, level := range HeadingLevels {
		var headings []string
		for _, set := range sets {
			headings = append(headings, set[level]...)
		}
		stats.Levels[level] = aggregateLevel(headings)
		stats.TotalHeadingCount += len(headings)
	}
	return stats
}

func aggregateLevel(headings []string) LevelStats {
	ls := LevelStats{
		Count:    len(headings),
		TopTerms: topTerms(headings, MaxTopTerms),
		Examples: []string{},
	}
	if len(headings) == 0 {
		return ls
	}

	var chars int
	for _, h := range headings {
		chars += utf8.RuneCountInString(h)
	}
	ls.AverageLength = float64(chars) / float64(len(headings))

	n := min(len(headings), MaxExamples)
	ls.Examples = append(ls.Examples, headings[:n]...)
	return ls
}

// topTerms counts whitespace-separated lowercased tokens and returns the n
// most frequent.
func topTerms(headings []string, n int) []TermFrequency {
	counts := make(map[string]int)
	var order []string
	for _, token := range strings.Fields(strings.ToLower(strings.Join(headings, " "))) {
		if _, ok := counts[token]; !ok {
			order = append(order, token)
		}
		counts[token]++
	}

	terms := make([]TermFrequency, 0, len(order))
	for _, token := range order {
		terms = append(terms, TermFrequency{Term: token, Frequency: counts[token]})
	}
	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].Frequency > terms[j].Frequency
	})

	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}
