package services

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"ai-placement-tracker/internal/models"
	"ai-placement-tracker/internal/repositories"
)

// memoryIndex scores every point of the requested kind equally, like
// identical question texts embedded under different row IDs.
type memoryIndex struct {
	points map[string]SearchResult
}

func newMemoryIndex() *memoryIndex {
	return &memoryIndex{points: make(map[string]SearchResult)}
}

func (m *memoryIndex) InitCollection(ctx context.Context) error { return nil }

func (m *memoryIndex) UpsertQuestion(ctx context.Context, kind models.QuestionKind, id uint, text string, embedding []float32) error {
	m.points[QuestionPointID(kind, id)] = SearchResult{QuestionID: id, Kind: kind, Score: 0.9, Text: text}
	return nil
}

func (m *memoryIndex) SearchQuestions(ctx context.Context, queryEmbedding []float32, kind models.QuestionKind, limit int) ([]SearchResult, error) {
	var out []SearchResult
	for _, p := range m.points {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuestionID < out[j].QuestionID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryIndex) DeleteQuestions(ctx context.Context, kind models.QuestionKind) error {
	for id, p := range m.points {
		if p.Kind == kind {
			delete(m.points, id)
		}
	}
	return nil
}

func TestReseedQuestionBankClearsStalePoints(t *testing.T) {
	ctx := context.Background()
	index := newMemoryIndex()
	for _, id := range []uint{1, 2, 3} {
		require.NoError(t, index.UpsertQuestion(ctx, models.KindCoding, id, "Two Sum: add up to target", nil))
	}
	require.NoError(t, index.UpsertQuestion(ctx, models.KindTheory, 4, "Operating Systems: deadlock", nil))

	live := map[uint]*models.CodingQuestion{}
	repo := &fakeQuestionRepo{
		ReplaceAllFn: func(theory []models.TheoryQuestion, coding []models.CodingQuestion) error {
			require.Empty(t, index.points, "index must be cleared before rows are replaced")
			for i := range coding {
				coding[i].ID = uint(7 + i)
				live[coding[i].ID] = &coding[i]
			}
			return nil
		},
		FindCodingByIDFn: func(id uint) (*models.CodingQuestion, error) {
			if q, ok := live[id]; ok {
				return q, nil
			}
			return nil, repositories.ErrNotFound
		},
	}

	coding := []models.CodingQuestion{{Title: "Two Sum", Description: "add up to target"}}
	require.NoError(t, ReseedQuestionBank(ctx, repo, index, nil, coding))

	// what the index worker does for the fresh row
	require.NoError(t, index.UpsertQuestion(ctx, models.KindCoding, 7, coding[0].SearchText(), nil))

	emb := &fakeEmbedder{EmbedFn: func(ctx context.Context, texts ...string) ([][]float32, error) {
		return [][]float32{{1}}, nil
	}}
	q, err := NewQuestionFinder(repo, emb, index).FindCoding(ctx, "two sum")
	require.NoError(t, err)
	require.Equal(t, uint(7), q.ID)
}

func TestReseedQuestionBank(t *testing.T) {
	ctx := context.Background()

	t.Run("without index", func(t *testing.T) {
		called := false
		repo := &fakeQuestionRepo{ReplaceAllFn: func(theory []models.TheoryQuestion, coding []models.CodingQuestion) error {
			called = true
			return nil
		}}
		require.NoError(t, ReseedQuestionBank(ctx, repo, nil, nil, nil))
		require.True(t, called)
	})

	t.Run("index failure keeps rows", func(t *testing.T) {
		index := &fakeIndex{DeleteFn: func(ctx context.Context, kind models.QuestionKind) error {
			return errors.New("qdrant unavailable")
		}}
		err := ReseedQuestionBank(ctx, &fakeQuestionRepo{}, index, nil, nil)
		require.ErrorContains(t, err, "qdrant unavailable")
	})

	t.Run("clears both kinds", func(t *testing.T) {
		var kinds []models.QuestionKind
		index := &fakeIndex{DeleteFn: func(ctx context.Context, kind models.QuestionKind) error {
			kinds = append(kinds, kind)
			return nil
		}}
		repo := &fakeQuestionRepo{ReplaceAllFn: func(theory []models.TheoryQuestion, coding []models.CodingQuestion) error {
			return nil
		}}
		require.NoError(t, ReseedQuestionBank(ctx, repo, index, nil, nil))
		require.Equal(t, []models.QuestionKind{models.KindTheory, models.KindCoding}, kinds)
	})
}
