package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"ai-placement-tracker/internal/models"
)

type QuestionRepository interface {
	RandomTheory(subject string) (*models.TheoryQuestion, error)
	RandomCoding() (*models.CodingQuestion, error)
	FindTheoryByID(id uint) (*models.TheoryQuestion, error)
	FindCodingByID(id uint) (*models.CodingQuestion, error)
	SearchTheory(topic string) (*models.TheoryQuestion, error)
	SearchCoding(topic string) (*models.CodingQuestion, error)
	FindUnindexedTheory(limit int) ([]models.TheoryQuestion, error)
	FindUnindexedCoding(limit int) ([]models.CodingQuestion, error)
	MarkIndexed(kind models.QuestionKind, id uint) error
	ReplaceAll(theory []models.TheoryQuestion, coding []models.CodingQuestion) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) RandomTheory(subject string) (*models.TheoryQuestion, error) {
	var q models.TheoryQuestion
	query := r.db.Order("RANDOM()")
	if subject != "" {
		query = query.Where("LOWER(subject) = ?", strings.ToLower(subject))
	}
	if err := query.First(&q).Error; err != nil {
		return nil, wrapFind("theory question", err)
	}
	return &q, nil
}

func (r *questionRepository) RandomCoding() (*models.CodingQuestion, error) {
	var q models.CodingQuestion
	if err := r.db.Order("RANDOM()").First(&q).Error; err != nil {
		return nil, wrapFind("coding question", err)
	}
	return &q, nil
}

func (r *questionRepository) FindTheoryByID(id uint) (*models.TheoryQuestion, error) {
	var q models.TheoryQuestion
	if err := r.db.Where("id = ?", id).First(&q).Error; err != nil {
		return nil, wrapFind("theory question", err)
	}
	return &q, nil
}

func (r *questionRepository) FindCodingByID(id uint) (*models.CodingQuestion, error) {
	var q models.CodingQuestion
	if err := r.db.Where("id = ?", id).First(&q).Error; err != nil {
		return nil, wrapFind("coding question", err)
	}
	return &q, nil
}

// SearchTheory returns the lowest-id question whose subject or text contains topic.
func (r *questionRepository) SearchTheory(topic string) (*models.TheoryQuestion, error) {
	var q models.TheoryQuestion
	pattern := likePattern(topic)
	err := r.db.
		Where(`LOWER(subject) LIKE ? ESCAPE '\' OR LOWER(question_text) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("id ASC").
		First(&q).Error
	if err != nil {
		return nil, wrapFind("theory question", err)
	}
	return &q, nil
}

// SearchCoding returns the lowest-id question whose title or description contains topic.
func (r *questionRepository) SearchCoding(topic string) (*models.CodingQuestion, error) {
	var q models.CodingQuestion
	pattern := likePattern(topic)
	err := r.db.
		Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("id ASC").
		First(&q).Error
	if err != nil {
		return nil, wrapFind("coding question", err)
	}
	return &q, nil
}

func (r *questionRepository) FindUnindexedTheory(limit int) ([]models.TheoryQuestion, error) {
	var qs []models.TheoryQuestion
	if err := r.db.Where("indexed_at IS NULL").Order("id ASC").Limit(limit).Find(&qs).Error; err != nil {
		return nil, fmt.Errorf("failed to find unindexed theory questions: %w", err)
	}
	return qs, nil
}

func (r *questionRepository) FindUnindexedCoding(limit int) ([]models.CodingQuestion, error) {
	var qs []models.CodingQuestion
	if err := r.db.Where("indexed_at IS NULL").Order("id ASC").Limit(limit).Find(&qs).Error; err != nil {
		return nil, fmt.Errorf("failed to find unindexed coding questions: %w", err)
	}
	return qs, nil
}

func (r *questionRepository) MarkIndexed(kind models.QuestionKind, id uint) error {
	var model interface{}
	switch kind {
	case models.KindTheory:
		model = &models.TheoryQuestion{}
	case models.KindCoding:
		model = &models.CodingQuestion{}
	default:
		return fmt.Errorf("unknown question kind %q", kind)
	}

	result := r.db.Model(model).Where("id = ?", id).Update("indexed_at", time.Now())
	if result.Error != nil {
		return fmt.Errorf("failed to mark question indexed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s question %d: %w", kind, id, ErrNotFound)
	}
	return nil
}

// ReplaceAll clears the question bank and inserts the given questions.
func (r *questionRepository) ReplaceAll(theory []models.TheoryQuestion, coding []models.CodingQuestion) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.TheoryQuestion{}).Error; err != nil {
			return fmt.Errorf("failed to clear theory questions: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&models.CodingQuestion{}).Error; err != nil {
			return fmt.Errorf("failed to clear coding questions: %w", err)
		}
		if len(theory) > 0 {
			if err := tx.Create(&theory).Error; err != nil {
				return fmt.Errorf("failed to insert theory questions: %w", err)
			}
		}
		if len(coding) > 0 {
			if err := tx.Create(&coding).Error; err != nil {
				return fmt.Errorf("failed to insert coding questions: %w", err)
			}
		}
		return nil
	})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern matches topic literally as a substring; pair it with ESCAPE '\'.
func likePattern(topic string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(topic))) + "%"
}

func wrapFind(what string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("failed to find %s: %w", what, err)
}
