package services

import (
	"context"

	"ai-placement-tracker/internal/models"
)

type fakeEmbedder struct {
	EmbedFn func(ctx context.Context, texts ...string) ([][]float32, error)
	calls   [][]string
}

func (f *fakeEmbedder) EmbedTexts(ctx context.Context, texts ...string) ([][]float32, error) {
	f.calls = append(f.calls, texts)
	if f.EmbedFn != nil {
		return f.EmbedFn(ctx, texts...)
	}
	panic("unexpected EmbedTexts")
}

type fakeTranscriber struct {
	TranscribeFn func(ctx context.Context, audio []byte, mimeType string) (string, error)
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if f.TranscribeFn != nil {
		return f.TranscribeFn(ctx, audio, mimeType)
	}
	panic("unexpected Transcribe")
}

type fakeIndex struct {
	UpsertFn func(ctx context.Context, kind models.QuestionKind, id uint, text string, embedding []float32) error
	SearchFn func(ctx context.Context, queryEmbedding []float32, kind models.QuestionKind, limit int) ([]SearchResult, error)
	DeleteFn func(ctx context.Context, kind models.QuestionKind) error
}

func (f *fakeIndex) InitCollection(ctx context.Context) error { return nil }

func (f *fakeIndex) UpsertQuestion(ctx context.Context, kind models.QuestionKind, id uint, text string, embedding []float32) error {
	if f.UpsertFn != nil {
		return f.UpsertFn(ctx, kind, id, text, embedding)
	}
	panic("unexpected UpsertQuestion")
}

func (f *fakeIndex) SearchQuestions(ctx context.Context, queryEmbedding []float32, kind models.QuestionKind, limit int) ([]SearchResult, error) {
	if f.SearchFn != nil {
		return f.SearchFn(ctx, queryEmbedding, kind, limit)
	}
	panic("unexpected SearchQuestions")
}

func (f *fakeIndex) DeleteQuestions(ctx context.Context, kind models.QuestionKind) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, kind)
	}
	panic("unexpected DeleteQuestions")
}

type fakeQuestionRepo struct {
	FindTheoryByIDFn      func(id uint) (*models.TheoryQuestion, error)
	FindCodingByIDFn      func(id uint) (*models.CodingQuestion, error)
	SearchTheoryFn        func(topic string) (*models.TheoryQuestion, error)
	SearchCodingFn        func(topic string) (*models.CodingQuestion, error)
	FindUnindexedTheoryFn func(limit int) ([]models.TheoryQuestion, error)
	FindUnindexedCodingFn func(limit int) ([]models.CodingQuestion, error)
	MarkIndexedFn         func(kind models.QuestionKind, id uint) error
	ReplaceAllFn          func(theory []models.TheoryQuestion, coding []models.CodingQuestion) error
}

func (f *fakeQuestionRepo) RandomTheory(subject string) (*models.TheoryQuestion, error) {
	panic("unexpected RandomTheory")
}

func (f *fakeQuestionRepo) RandomCoding() (*models.CodingQuestion, error) {
	panic("unexpected RandomCoding")
}

func (f *fakeQuestionRepo) FindTheoryByID(id uint) (*models.TheoryQuestion, error) {
	if f.FindTheoryByIDFn != nil {
		return f.FindTheoryByIDFn(id)
	}
	panic("unexpected FindTheoryByID")
}

func (f *fakeQuestionRepo) FindCodingByID(id uint) (*models.CodingQuestion, error) {
	if f.FindCodingByIDFn != nil {
		return f.FindCodingByIDFn(id)
	}
	panic("unexpected FindCodingByID")
}

func (f *fakeQuestionRepo) SearchTheory(topic string) (*models.TheoryQuestion, error) {
	if f.SearchTheoryFn != nil {
		return f.SearchTheoryFn(topic)
	}
	panic("unexpected SearchTheory")
}

func (f *fakeQuestionRepo) SearchCoding(topic string) (*models.CodingQuestion, error) {
	if f.SearchCodingFn != nil {
		return f.SearchCodingFn(topic)
	}
	panic("unexpected SearchCoding")
}

func (f *fakeQuestionRepo) FindUnindexedTheory(limit int) ([]models.TheoryQuestion, error) {
	if f.FindUnindexedTheoryFn != nil {
		return f.FindUnindexedTheoryFn(limit)
	}
	return nil, nil
}

func (f *fakeQuestionRepo) FindUnindexedCoding(limit int) ([]models.CodingQuestion, error) {
	if f.FindUnindexedCodingFn != nil {
		return f.FindUnindexedCodingFn(limit)
	}
	return nil, nil
}

func (f *fakeQuestionRepo) MarkIndexed(kind models.QuestionKind, id uint) error {
	if f.MarkIndexedFn != nil {
		return f.MarkIndexedFn(kind, id)
	}
	panic("unexpected MarkIndexed")
}

func (f *fakeQuestionRepo) ReplaceAll(theory []models.TheoryQuestion, coding []models.CodingQuestion) error {
	if f.ReplaceAllFn != nil {
		return f.ReplaceAllFn(theory, coding)
	}
	panic("unexpected ReplaceAll")
}

type fakePDFParser struct {
	ExtractFn func(filePath string) (*PDFContent, error)
}

func (f *fakePDFParser) ExtractText(filePath string) (*PDFContent, error) {
	if f.ExtractFn != nil {
		return f.ExtractFn(filePath)
	}
	panic("unexpected ExtractText")
}
