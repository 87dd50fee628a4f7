package repository

import (
	"micro_learning_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByUserAndTopic(userID, topicID uint) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := r.DB.Where("user_id = ? AND topic_id = ?", userID, topicID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) Create(progress *model.UserProgress) error {
	return r.DB.Create(progress).Error
}

// IncrementCompletion bumps completed_lessons and streak by one in a single
// upsert so concurrent completions for the same (user, topic) serialize on
// the unique index instead of racing an application-level read-modify-write.
// A first completion without a prior read inserts the row at 1/1.
func (r *ProgressRepository) IncrementCompletion(userID, topicID uint, now time.Time) error {
	progress := model.UserProgress{
		UserID:           userID,
		TopicID:          topicID,
		CompletedLessons: 1,
		Streak:           1,
		LastActivity:     now,
	}

	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "topic_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"completed_lessons": gorm.Expr("completed_lessons + 1"),
			"streak":            gorm.Expr("streak + 1"),
			"last_activity":     now,
			"updated_at":        now,
		}),
	}).Create(&progress).Error
}
