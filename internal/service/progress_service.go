package service

import (
	"errors"
	"micro_learning_backend/internal/model"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ProgressStore is the slice of the progress repository the tracker needs.
type ProgressStore interface {
	FindByUserAndTopic(userID, topicID uint) (*model.UserProgress, error)
	Create(progress *model.UserProgress) error
	IncrementCompletion(userID, topicID uint, now time.Time) error
}

type ProgressService struct {
	ProgressRepo ProgressStore
}

func NewProgressService(progressRepo ProgressStore) *ProgressService {
	return &ProgressService{ProgressRepo: progressRepo}
}

// GetOrCreate returns the progress row for (user, topic), inserting a
// zeroed one on first read. Losing an insert race against a concurrent
// first read is benign: the unique index rejects the duplicate and the
// winner's row is re-read.
func (s *ProgressService) GetOrCreate(userID, topicID uint) (*model.UserProgress, error) {
	progress, err := s.ProgressRepo.FindByUserAndTopic(userID, topicID)
	if err == nil {
		return progress, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := &model.UserProgress{
		UserID:       userID,
		TopicID:      topicID,
		LastActivity: time.Now(),
	}
	if err := s.ProgressRepo.Create(fresh); err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return s.ProgressRepo.FindByUserAndTopic(userID, topicID)
		}
		return nil, err
	}

	return fresh, nil
}

// CompleteLesson applies the atomic increment and returns the post-update
// row. The increment itself creates the row on demand, so a completion
// without a prior read still succeeds.
func (s *ProgressService) CompleteLesson(userID, topicID uint) (*model.UserProgress, error) {
	if err := s.ProgressRepo.IncrementCompletion(userID, topicID, time.Now()); err != nil {
		return nil, err
	}
	return s.ProgressRepo.FindByUserAndTopic(userID, topicID)
}
