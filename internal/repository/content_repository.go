package repository

import (
	"micro_learning_backend/internal/model"

	"gorm.io/gorm"
)

type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

func (r *ContentRepository) Create(content *model.LearningContent) error {
	return r.DB.Create(content).Error
}

// FindByTopic returns every lesson for a topic, newest first.
func (r *ContentRepository) FindByTopic(topicID uint) ([]model.LearningContent, error) {
	var contents []model.LearningContent
	err := r.DB.Where("topic_id = ?", topicID).
		Order("created_at DESC").
		Find(&contents).Error
	return contents, err
}
