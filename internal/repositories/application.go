package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"ai-placement-tracker/internal/models"
)

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByUserID(userID uint) ([]models.Application, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(app *models.Application) error {
	if err := r.db.Create(app).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

func (r *applicationRepository) FindByUserID(userID uint) ([]models.Application, error) {
	apps := []models.Application{}
	err := r.db.
		Where("user_id = ?", userID).
		Order("date_applied DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find applications: %w", err)
	}
	return apps, nil
}
