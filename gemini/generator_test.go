package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/brief"
	"github.com/fwojciec/brief/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate_ReturnsErrorWhenPromptEmpty(t *testing.T) {
	t.Parallel()

	generator := gemini.NewGenerator(nil, "") // nil client ok for this test

	_, err := generator.Generate(context.Background(), brief.GenerateRequest{})

	require.Error(t, err)
	assert.Equal(t, brief.EINVALID, brief.ErrorCode(err))
	assert.Contains(t, brief.ErrorMessage(err), "prompt required")
}

func TestNewGenerator_DefaultsModel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, gemini.DefaultModel, gemini.NewGenerator(nil, "").Model())
	assert.Equal(t, "gemini-2.5-pro", gemini.NewGenerator(nil, "gemini-2.5-pro").Model())
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig(brief.GenerateRequest{System: brief.SystemInstruction})

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "SEO content recommendations")
}

func TestBuildConfig_OmitsEmptySystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig(brief.GenerateRequest{})

	assert.Nil(t, config.SystemInstruction)
}

func TestBuildConfig_SetsSamplingParameters(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig(brief.GenerateRequest{Temperature: 0.6, MaxOutputTokens: 4096})

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.6, *config.Temperature, 0.001)
	assert.Equal(t, int32(4096), config.MaxOutputTokens)
}

func TestEmbedder_Embed_EmptyInput(t *testing.T) {
	t.Parallel()

	embedder := gemini.NewEmbedder(nil, "", 0)

	vectors, err := embedder.Embed(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, vectors)
	assert.Equal(t, gemini.DefaultEmbeddingModel, embedder.Model())
}
