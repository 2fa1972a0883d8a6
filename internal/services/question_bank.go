package services

import (
	"context"

	"ai-placement-tracker/internal/models"
	"ai-placement-tracker/internal/repositories"
)

// ReseedQuestionBank replaces every stored question. Vector points are keyed
// by row ID, so the index is cleared first; the new rows are unindexed and
// get picked up by the index worker. index may be nil.
func ReseedQuestionBank(
	ctx context.Context,
	questionRepo repositories.QuestionRepository,
	index QuestionIndex,
	theory []models.TheoryQuestion,
	coding []models.CodingQuestion,
) error {
	if index != nil {
		for _, kind := range []models.QuestionKind{models.KindTheory, models.KindCoding} {
			if err := index.DeleteQuestions(ctx, kind); err != nil {
				return err
			}
		}
	}

	return questionRepo.ReplaceAll(theory, coding)
}
