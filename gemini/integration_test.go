//go:build integration

package gemini_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fwojciec/brief"
	"github.com/fwojciec/brief/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newIntegrationClient(t *testing.T, ctx context.Context) *genai.Client {
	t.Helper()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	require.NoError(t, err)
	return client
}

func TestGenerator_Integration_ReturnsText(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	generator := gemini.NewGenerator(newIntegrationClient(t, ctx), "")

	text, err := generator.Generate(ctx, brief.GenerateRequest{
		System:          brief.SystemInstruction,
		Prompt:          "Suggest one H2 heading for an article about espresso machines, prefixed with 'H2:'.",
		Temperature:     brief.DefaultTemperature,
		MaxOutputTokens: 256,
	})

	require.NoError(t, err)
	assert.Contains(t, text, "H2")
}

func TestEmbedder_Integration_RanksRelatedTextHigher(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	ranker := brief.NewRanker(gemini.NewEmbedder(newIntegrationClient(t, ctx), "", 0))

	ranking, err := ranker.Rank(ctx, "espresso machines", []string{
		"Quarterly tax filing deadlines",
		"How to pick an espresso machine for home",
	})

	require.NoError(t, err)
	require.Len(t, ranking.Fragments, 2)
	assert.Equal(t, "How to pick an espresso machine for home", ranking.Fragments[0].Text)
}
