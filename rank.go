package brief

import (
	"context"
	"sort"
	"strings"
)

// DefaultRankLimit is the number of fragments kept by a Ranker.
const DefaultRankLimit = 5

// MinParagraphWords is the minimum word count of a paragraph eligible
// for relevance ranking.
const MinParagraphWords = 6

// RankedFragment is a text fragment scored against the target keyword.
type RankedFragment struct {
	Text  string  `yaml:"text"`
	Score float64 `yaml:"score"`
}

// RankingStatus describes the outcome of a ranking.
type RankingStatus int

// Ranking outcomes.
const (
	RankingOK RankingStatus = iota
	RankingNoCandidates
	RankingUnavailable
)

// String returns a short description of the status.
func (s RankingStatus) String() string {
	switch s {
	case RankingOK:
		return "ok"
	case RankingNoCandidates:
		return "no candidates"
	case RankingUnavailable:
		return "unavailable"
	}
	return ""
}

// Ranking is the result of ranking fragments against a keyword.
// Fragments is only populated when Status is RankingOK.
type Ranking struct {
	Status    RankingStatus
	Fragments []RankedFragment
}

// Texts returns the ranked fragment texts in rank order.
func (r *Ranking) Texts() []string {
	if r == nil {
		return nil
	}
	texts := make([]string, len(r.Fragments))
	for i, f := range r.Fragments {
		texts[i] = f.Text
	}
	return texts
}

// Ranker scores fragments by cosine similarity between their embeddings and
// the keyword's embedding.
type Ranker struct {
	Embedder Embedder

	// Limit is the number of fragments returned. Zero means DefaultRankLimit.
	Limit int
}

// NewRanker returns a Ranker keeping the top DefaultRankLimit fragments.
func NewRanker(embedder Embedder) *Ranker {
	return &Ranker{Embedder: embedder, Limit: DefaultRankLimit}
}

// Rank returns the most relevant fragments, highest score first. Ties keep
// their original order. An empty candidate list yields RankingNoCandidates
// without calling the embedder. Embedding failures return an EUNAVAILABLE
// error rather than a partial ranking.
func (r *Ranker) Rank(ctx context.Context, keyword string, fragments []string) (*Ranking, error) {
	if len(fragments) == 0 {
		return &Ranking{Status: RankingNoCandidates}, nil
	}
	if strings.TrimSpace(keyword) == "" {
		return nil, Errorf(EINVALID, "keyword required")
	}

	kv, err := r.Embedder.Embed(ctx, []string{keyword})
	if err != nil {
		return nil, Errorf(EUNAVAILABLE, "embedding keyword: %v", err)
	}
	if len(kv) != 1 {
		return nil, Errorf(EUNAVAILABLE, "embedding keyword: got %d vectors, want 1", len(kv))
	}
	dim := len(kv[0])
	if dim == 0 {
		return nil, Errorf(EUNAVAILABLE, "embedding keyword: empty vector")
	}

	vectors, err := r.Embedder.Embed(ctx, fragments)
	if err != nil {
		return nil, Errorf(EUNAVAILABLE, "embedding fragments: %v", err)
	}
	if len(vectors) != len(fragments) {
		return nil, Errorf(EUNAVAILABLE, "embedding fragments: got %d vectors, want %d", len(vectors), len(fragments))
	}
	for i, v := range vectors {
		if len(v) != dim {
			return nil, Errorf(EUNAVAILABLE, "embedding fragment %d: got %d dimensions, want %d", i, len(v), dim)
		}
	}

	ranked := make([]RankedFragment, len(fragments))
	for i, text := range fragments {
		ranked[i] = RankedFragment{Text: text, Score: CosineSimilarity(kv[0], vectors[i])}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	limit := r.Limit
	if limit <= 0 {
		limit = DefaultRankLimit
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return &Ranking{Status: RankingOK, Fragments: ranked}, nil
}

// SubstantiveParagraphs returns the paragraphs with at least
// MinParagraphWords whitespace-separated words.
func SubstantiveParagraphs(paragraphs []string) []string {
	var out []string
	for _, p := range paragraphs {
		if len(strings.Fields(p)) >= MinParagraphWords {
			out = append(out, p)
		}
	}
	return out
}
