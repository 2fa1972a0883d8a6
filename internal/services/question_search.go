package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"ai-placement-tracker/internal/models"
	"ai-placement-tracker/internal/repositories"
)

// minSearchScore is the cosine score below which a vector hit is ignored
// and substring search takes over.
const minSearchScore = 0.55

type QuestionFinder interface {
	FindCoding(ctx context.Context, topic string) (*models.CodingQuestion, error)
	FindTheory(ctx context.Context, topic string) (*models.TheoryQuestion, error)
}

type questionFinder struct {
	questionRepo  repositories.QuestionRepository
	embedder      Embedder
	index         QuestionIndex
	promptBuilder *PromptBuilder
}

// NewQuestionFinder searches the vector index when index is non-nil and
// falls back to substring matching in the database.
func NewQuestionFinder(questionRepo repositories.QuestionRepository, embedder Embedder, index QuestionIndex) QuestionFinder {
	return &questionFinder{
		questionRepo:  questionRepo,
		embedder:      embedder,
		index:         index,
		promptBuilder: NewPromptBuilder(),
	}
}

func (f *questionFinder) FindCoding(ctx context.Context, topic string) (*models.CodingQuestion, error) {
	for _, id := range f.semanticHits(ctx, models.KindCoding, topic) {
		q, err := f.questionRepo.FindCodingByID(id)
		if err == nil {
			return q, nil
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
	}
	return f.questionRepo.SearchCoding(topic)
}

func (f *questionFinder) FindTheory(ctx context.Context, topic string) (*models.TheoryQuestion, error) {
	for _, id := range f.semanticHits(ctx, models.KindTheory, topic) {
		q, err := f.questionRepo.FindTheoryByID(id)
		if err == nil {
			return q, nil
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
	}
	return f.questionRepo.SearchTheory(topic)
}

// semanticHits returns question IDs ordered by score. Index failures are
// logged and treated as no hits.
func (f *questionFinder) semanticHits(ctx context.Context, kind models.QuestionKind, topic string) []uint {
	if f.index == nil || f.embedder == nil {
		return nil
	}

	query := f.promptBuilder.BuildSearchQuery(kind, topic)
	vectors, err := f.embedder.EmbedTexts(ctx, query)
	if err != nil || len(vectors) == 0 {
		log.Warn().Err(err).Str("topic", topic).Msg("⚠️  Failed to embed search topic, using substring search")
		return nil
	}

	results, err := f.index.SearchQuestions(ctx, vectors[0], kind, 3)
	if err != nil {
		log.Warn().Err(err).Str("topic", topic).Msg("⚠️  Question index search failed, using substring search")
		return nil
	}

	var ids []uint
	for _, r := range results {
		if r.Score < minSearchScore {
			continue
		}
		ids = append(ids, r.QuestionID)
	}
	return ids
}
