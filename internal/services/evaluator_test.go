package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity(t *testing.T) {
	require.InDelta(t, 1.0, CosineSimilarity([]float32{1, 2, 3}, []float32{2, 4, 6}), 1e-9)
	require.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	require.InDelta(t, -1.0, CosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)
	require.Zero(t, CosineSimilarity(nil, nil))
	require.Zero(t, CosineSimilarity([]float32{1, 2}, []float32{1}))
	require.Zero(t, CosineSimilarity([]float32{0, 0}, []float32{1, 1}))
}

func TestSimilarityScore(t *testing.T) {
	require.Equal(t, 87.65, SimilarityScore(0.876543))
	require.Equal(t, 100.0, SimilarityScore(1))
	require.Equal(t, 0.0, SimilarityScore(-0.4))
	require.Equal(t, 100.0, SimilarityScore(1.0000001))
}

func TestFeedbackFor(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, FeedbackExcellent},
		{85.01, FeedbackExcellent},
		{85, FeedbackGood},
		{60.01, FeedbackGood},
		{60, FeedbackVague},
		{0, FeedbackVague},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, FeedbackFor(tt.score), "score %v", tt.score)
	}
}

func TestAnswerEvaluator(t *testing.T) {
	t.Run("scores similar answers", func(t *testing.T) {
		emb := &fakeEmbedder{EmbedFn: func(ctx context.Context, texts ...string) ([][]float32, error) {
			require.Equal(t, []string{"student", "ideal"}, texts)
			return [][]float32{{1, 0.1}, {1, 0}}, nil
		}}

		result, err := NewAnswerEvaluator(emb).Evaluate(context.Background(), "student", "ideal")
		require.NoError(t, err)
		require.Equal(t, 99.5, result.Score)
		require.Equal(t, FeedbackExcellent, result.Feedback)
	})

	t.Run("opposite answers clamp to zero", func(t *testing.T) {
		emb := &fakeEmbedder{EmbedFn: func(ctx context.Context, texts ...string) ([][]float32, error) {
			return [][]float32{{1, 0}, {-1, 0}}, nil
		}}

		result, err := NewAnswerEvaluator(emb).Evaluate(context.Background(), "a", "b")
		require.NoError(t, err)
		require.Equal(t, 0.0, result.Score)
		require.Equal(t, FeedbackVague, result.Feedback)
	})

	t.Run("embedding error", func(t *testing.T) {
		emb := &fakeEmbedder{EmbedFn: func(ctx context.Context, texts ...string) ([][]float32, error) {
			return nil, errors.New("quota")
		}}

		_, err := NewAnswerEvaluator(emb).Evaluate(context.Background(), "a", "b")
		require.ErrorContains(t, err, "quota")
	})

	t.Run("wrong embedding count", func(t *testing.T) {
		emb := &fakeEmbedder{EmbedFn: func(ctx context.Context, texts ...string) ([][]float32, error) {
			return [][]float32{{1}}, nil
		}}

		_, err := NewAnswerEvaluator(emb).Evaluate(context.Background(), "a", "b")
		require.Error(t, err)
	})
}
