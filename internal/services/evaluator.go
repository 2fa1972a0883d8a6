package services

import (
	"context"
	"fmt"
	"math"
)

const (
	FeedbackExcellent = "Excellent! You covered the key concepts perfectly."
	FeedbackGood      = "Good, but you missed some specific technical keywords."
	FeedbackVague     = "Too vague. Try to be more specific and use industry terminology."
)

type AnswerScore struct {
	Score    float64
	Feedback string
}

type AnswerEvaluator interface {
	Evaluate(ctx context.Context, studentAnswer, idealAnswer string) (*AnswerScore, error)
}

type answerEvaluator struct {
	embedder Embedder
}

func NewAnswerEvaluator(embedder Embedder) AnswerEvaluator {
	return &answerEvaluator{embedder: embedder}
}

// Evaluate scores the student answer by embedding similarity to the ideal answer.
func (e *answerEvaluator) Evaluate(ctx context.Context, studentAnswer, idealAnswer string) (*AnswerScore, error) {
	vectors, err := e.embedder.EmbedTexts(ctx, studentAnswer, idealAnswer)
	if err != nil {
		return nil, fmt.Errorf("failed to embed answers: %w", err)
	}
	if len(vectors) != 2 {
		return nil, fmt.Errorf("expected 2 embeddings, got %d", len(vectors))
	}

	score := SimilarityScore(CosineSimilarity(vectors[0], vectors[1]))

	return &AnswerScore{
		Score:    score,
		Feedback: FeedbackFor(score),
	}, nil
}

// CosineSimilarity returns 0 for empty, zero or mismatched vectors.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// SimilarityScore clamps negative similarity to zero and scales to 0-100,
// rounded to two decimals.
func SimilarityScore(similarity float64) float64 {
	if similarity < 0 || math.IsNaN(similarity) {
		similarity = 0
	}
	if similarity > 1 {
		similarity = 1
	}
	return math.Round(similarity*100*100) / 100
}

func FeedbackFor(score float64) string {
	switch {
	case score > 85:
		return FeedbackExcellent
	case score > 60:
		return FeedbackGood
	default:
		return FeedbackVague
	}
}
