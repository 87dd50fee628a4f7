package model

import (
	"time"
)

// UserProgress tracks per-user, per-topic completion counters. At most one
// row exists per (user, topic); the unique composite index is what makes
// the lazy get-or-create and the completion upsert race-safe.
// swagger:model UserProgress
type UserProgress struct {
	BaseModel
	UserID           uint      `gorm:"uniqueIndex:idx_user_topic;type:bigint unsigned;not null" json:"userId"`
	TopicID          uint      `gorm:"uniqueIndex:idx_user_topic;type:bigint unsigned;not null" json:"topicId"`
	CompletedLessons int       `gorm:"default:0" json:"completedLessons"`
	Streak           int       `gorm:"default:0" json:"streak"`
	LastActivity     time.Time `gorm:"not null" json:"lastActivity"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
