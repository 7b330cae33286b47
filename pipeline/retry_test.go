package pipeline_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/brief"
	"github.com/fwojciec/brief/mock"
	"github.com/fwojciec/brief/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noDelays is used for fast unit tests.
var noDelays = []time.Duration{0, 0}

func TestBackoffDelays(t *testing.T) {
	t.Parallel()

	t.Run("doubles from base", func(t *testing.T) {
		t.Parallel()

		delays := pipeline.BackoffDelays(4, time.Second)

		assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, delays)
	})

	t.Run("single attempt has no delays", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, pipeline.BackoffDelays(1, time.Second))
		assert.Empty(t, pipeline.BackoffDelays(0, time.Second))
	})

	t.Run("default allows three attempts", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, pipeline.DefaultRetryDelays())
	})
}

func TestGenerateWithRetryDelays(t *testing.T) {
	t.Parallel()

	t.Run("succeeds on first attempt", func(t *testing.T) {
		t.Parallel()

		var attempts int
		gen := &mock.Generator{
			GenerateFn: func(context.Context, brief.GenerateRequest) (string, error) {
				attempts++
				return "outline", nil
			},
		}

		text, err := pipeline.GenerateWithRetryDelays(context.Background(), gen, brief.GenerateRequest{Prompt: "p"}, nil, noDelays)

		require.NoError(t, err)
		assert.Equal(t, "outline", text)
		assert.Equal(t, 1, attempts)
	})

	t.Run("retries on failure and succeeds", func(t *testing.T) {
		t.Parallel()

		var attempts int
		var logged []int
		gen := &mock.Generator{
			GenerateFn: func(context.Context, brief.GenerateRequest) (string, error) {
				attempts++
				if attempts < 3 {
					return "", errors.New("transient error")
				}
				return "outline", nil
			},
		}
		logger := func(attempt int, err error) {
			logged = append(logged, attempt)
		}

		text, err := pipeline.GenerateWithRetryDelays(context.Background(), gen, brief.GenerateRequest{Prompt: "p"}, logger, noDelays)

		require.NoError(t, err)
		assert.Equal(t, "outline", text)
		assert.Equal(t, 3, attempts)
		assert.Equal(t, []int{2, 3}, logged)
	})

	t.Run("returns terminal error after max attempts", func(t *testing.T) {
		t.Parallel()

		var attempts int
		gen := &mock.Generator{
			GenerateFn: func(context.Context, brief.GenerateRequest) (string, error) {
				attempts++
				return "", errors.New("service down")
			},
		}

		text, err := pipeline.GenerateWithRetryDelays(context.Background(), gen, brief.GenerateRequest{Prompt: "p"}, nil, noDelays)

		require.Error(t, err)
		assert.Empty(t, text)
		assert.Equal(t, 3, attempts)
		assert.Contains(t, err.Error(), "after 3 attempts")
		assert.Contains(t, err.Error(), "service down")
	})

	t.Run("does not retry invalid requests", func(t *testing.T) {
		t.Parallel()

		var attempts int
		gen := &mock.Generator{
			GenerateFn: func(context.Context, brief.GenerateRequest) (string, error) {
				attempts++
				return "", brief.Errorf(brief.EINVALID, "prompt required")
			},
		}

		_, err := pipeline.GenerateWithRetryDelays(context.Background(), gen, brief.GenerateRequest{}, nil, noDelays)

		assert.Equal(t, brief.EINVALID, brief.ErrorCode(err))
		assert.Equal(t, 1, attempts)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		var attempts int
		gen := &mock.Generator{
			GenerateFn: func(context.Context, brief.GenerateRequest) (string, error) {
				attempts++
				cancel()
				return "", errors.New("transient error")
			},
		}

		_, err := pipeline.GenerateWithRetryDelays(ctx, gen, brief.GenerateRequest{Prompt: "p"}, nil, []time.Duration{time.Hour, time.Hour})

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, attempts)
	})
}
