package repositories

import (
	"gorm.io/gorm"

	"skillnet_backend/internal/models"
)

type FeedbackRepository interface {
	Create(db *gorm.DB, feedback *models.Feedback) error
	FindAll(db *gorm.DB, limit, offset int) ([]models.Feedback, error)
}

type feedbackRepository struct{}

func NewFeedbackRepository() FeedbackRepository {
	return &feedbackRepository{}
}

func (r *feedbackRepository) Create(db *gorm.DB, feedback *models.Feedback) error {
	return db.Create(feedback).Error
}

func (r *feedbackRepository) FindAll(db *gorm.DB, limit, offset int) ([]models.Feedback, error) {
	var items []models.Feedback
	err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&items).Error
	return items, err
}
