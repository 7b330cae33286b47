package gemini

import (
	"context"

	"github.com/fwojciec/brief"
	"google.golang.org/genai"
)

// DefaultEmbeddingModel is the embedding model used when none is configured.
const DefaultEmbeddingModel = "gemini-embedding-001"

// DefaultBatchSize is the number of texts sent per EmbedContent call.
const DefaultBatchSize = 100

var _ brief.Embedder = (*Embedder)(nil)

// Embedder implements brief.Embedder using the Gemini embedding API.
type Embedder struct {
	client    *genai.Client
	model     string
	batchSize int
}

// NewEmbedder creates a new Embedder. An empty model selects
// DefaultEmbeddingModel and a non-positive batch size DefaultBatchSize.
func NewEmbedder(client *genai.Client, model string, batchSize int) *Embedder {
	if model == "" {
		model = DefaultEmbeddingModel
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Embedder{client: client, model: model, batchSize: batchSize}
}

// Model returns the embedding model identifier.
func (e *Embedder) Model() string {
	return e.model
}

// Embed returns one vector per text, batching requests.
func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	all := make([][]float32, 0, len(texts))
	for i := 0; i < len(texts); i += e.batchSize {
		end := min(i+e.batchSize, len(texts))

		contents := make([]*genai.Content, 0, end-i)
		for _, text := range texts[i:end] {
			contents = append(contents, genai.NewContentFromText(text, genai.RoleUser))
		}

		result, err := e.client.Models.EmbedContent(ctx, e.model, contents, &genai.EmbedContentConfig{
			TaskType: "SEMANTIC_SIMILARITY",
		})
		if err != nil {
			return nil, err
		}
		if result == nil || len(result.Embeddings) != end-i {
			return nil, brief.Errorf(brief.EINTERNAL, "gemini returned %d embeddings for %d texts", embeddingCount(result), end-i)
		}
		for _, emb := range result.Embeddings {
			all = append(all, emb.Values)
		}
	}
	return all, nil
}

func embeddingCount(result *genai.EmbedContentResponse) int {
	if result == nil {
		return 0
	}
	return len(result.Embeddings)
}
