package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"ai-placement-tracker/internal/models"
)

type InterviewRepository interface {
	// Record stores a scored session and its attempt in one transaction.
	Record(interview *models.MockInterview, attempt *models.Attempt) error
	FindInterviewsByUserID(userID uint) ([]models.MockInterview, error)
	FindAttemptsByUserID(userID uint) ([]models.Attempt, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) Record(interview *models.MockInterview, attempt *models.Attempt) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(interview).Error; err != nil {
			return fmt.Errorf("failed to create mock interview: %w", err)
		}
		if attempt == nil {
			return nil
		}
		if err := tx.Create(attempt).Error; err != nil {
			return fmt.Errorf("failed to create attempt: %w", err)
		}
		return nil
	})
}

func (r *interviewRepository) FindInterviewsByUserID(userID uint) ([]models.MockInterview, error) {
	interviews := []models.MockInterview{}
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&interviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find mock interviews: %w", err)
	}
	return interviews, nil
}

func (r *interviewRepository) FindAttemptsByUserID(userID uint) ([]models.Attempt, error) {
	attempts := []models.Attempt{}
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&attempts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find attempts: %w", err)
	}
	return attempts, nil
}
