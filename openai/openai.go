// Package openai implements text generation and embeddings on top of any
// OpenAI-compatible API.
package openai

import (
	"context"
	"math"

	"github.com/fwojciec/brief"
	goopenai "github.com/sashabaranov/go-openai"
)

// Default models.
const (
	DefaultModel          = "gpt-4o-mini"
	DefaultEmbeddingModel = string(goopenai.SmallEmbedding3)
)

// DefaultBatchSize is the number of texts sent per embeddings request.
const DefaultBatchSize = 256

// Client is the subset of the go-openai client used by this package.
type Client interface {
	CreateChatCompletion(ctx context.Context, request goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error)
	CreateEmbeddings(ctx context.Context, request goopenai.EmbeddingRequestConverter) (goopenai.EmbeddingResponse, error)
}

// NewClient creates an API client. An empty baseURL selects the OpenAI API.
func NewClient(apiKey, baseURL string) *goopenai.Client {
	config := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return goopenai.NewClientWithConfig(config)
}

var _ brief.Generator = (*Generator)(nil)

// Generator implements brief.Generator with chat completions.
type Generator struct {
	client Client
	model  string
}

// NewGenerator creates a new Generator. An empty model selects DefaultModel.
func NewGenerator(client Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Model returns the generation model identifier.
func (g *Generator) Model() string {
	return g.model
}

// Generate sends the prompt as a chat completion and returns the first choice.
func (g *Generator) Generate(ctx context.Context, req brief.GenerateRequest) (string, error) {
	if req.Prompt == "" {
		return "", brief.Errorf(brief.EINVALID, "prompt required")
	}

	resp, err := g.client.CreateChatCompletion(ctx, BuildRequest(g.model, req))
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", brief.Errorf(brief.EINTERNAL, "openai returned no completion")
	}
	return resp.Choices[0].Message.Content, nil
}

// BuildRequest returns the chat completion request for a generation request.
func BuildRequest(model string, req brief.GenerateRequest) goopenai.ChatCompletionRequest {
	var messages []goopenai.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, goopenai.ChatCompletionMessage{Role: goopenai.ChatMessageRoleSystem, Content: req.System})
	}
	messages = append(messages, goopenai.ChatCompletionMessage{Role: goopenai.ChatMessageRoleUser, Content: req.Prompt})

	// The client omits a zero temperature, which the API reads as 1.
	temp := req.Temperature
	if temp == 0 {
		temp = math.SmallestNonzeroFloat32
	}

	return goopenai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: temp,
		MaxTokens:   req.MaxOutputTokens,
	}
}

var _ brief.Embedder = (*Embedder)(nil)

// Embedder implements brief.Embedder with the embeddings endpoint.
type Embedder struct {
	client    Client
	model     string
	batchSize int
}

// NewEmbedder creates a new Embedder. An empty model selects
// DefaultEmbeddingModel and a non-positive batch size DefaultBatchSize.
func NewEmbedder(client Client, model string, batchSize int) *Embedder {
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

// Embed returns one vector per text, batching requests. Vectors are placed
// by the index reported by the API.
func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := 0; i < len(texts); i += e.batchSize {
		end := min(i+e.batchSize, len(texts))

		resp, err := e.client.CreateEmbeddings(ctx, goopenai.EmbeddingRequest{
			Input: texts[i:end],
			Model: goopenai.EmbeddingModel(e.model),
		})
		if err != nil {
			return nil, err
		}
		if len(resp.Data) != end-i {
			return nil, brief.Errorf(brief.EINTERNAL, "openai returned %d embeddings for %d texts", len(resp.Data), end-i)
		}
		filled := make([]bool, end-i)
		for _, d := range resp.Data {
			if d.Index < 0 || d.Index >= end-i {
				return nil, brief.Errorf(brief.EINTERNAL, "openai returned embedding index %d out of range", d.Index)
			}
			if filled[d.Index] {
				return nil, brief.Errorf(brief.EINTERNAL, "openai returned duplicate embedding index %d", d.Index)
			}
			filled[d.Index] = true
			out[i+d.Index] = d.Embedding
		}
	}
	return out, nil
}
