package service

import (
	"context"
	"errors"
	"micro_learning_backend/internal/model"
	"micro_learning_backend/internal/util"
	"micro_learning_backend/pkg/logger"
	"micro_learning_backend/pkg/monitoring"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContentStore is the slice of the content repository the service needs.
type ContentStore interface {
	Create(content *model.LearningContent) error
	FindByTopic(topicID uint) ([]model.LearningContent, error)
}

// TopicStore is the slice of the topic repository the service needs.
type TopicStore interface {
	FindAll() ([]model.Topic, error)
	FindByID(id uint) (*model.Topic, error)
}

// LessonGenerator produces lesson text for a topic via the upstream model.
type LessonGenerator interface {
	GenerateLesson(ctx context.Context, topic, difficulty string) (*model.GeneratedLesson, error)
}

type ContentService struct {
	ContentRepo ContentStore
	TopicRepo   TopicStore
	Generator   LessonGenerator
}

func NewContentService(contentRepo ContentStore, topicRepo TopicStore, generator LessonGenerator) *ContentService {
	return &ContentService{
		ContentRepo: contentRepo,
		TopicRepo:   topicRepo,
		Generator:   generator,
	}
}

func (s *ContentService) ListByTopic(topicID uint) ([]model.LearningContent, error) {
	return s.ContentRepo.FindByTopic(topicID)
}

// Create persists an immutable content item, estimating the read time
// from the word count when the client does not supply one.
func (s *ContentService) Create(content *model.LearningContent) error {
	if content.ReadTime <= 0 {
		content.ReadTime = EstimateReadTime(content.Content)
	}
	return s.ContentRepo.Create(content)
}

// GenerateLesson runs one upstream generation attempt for the topic and
// persists the result. Upstream failures of any kind are collapsed into
// ErrGenerationFailed; the underlying cause only goes to the log.
func (s *ContentService) GenerateLesson(ctx context.Context, topicID uint, difficulty string) (*model.LearningContent, *model.Quiz, error) {
	topic, err := s.TopicRepo.FindByID(topicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.ErrTopicNotFound
		}
		return nil, nil, err
	}

	lesson, err := s.Generator.GenerateLesson(ctx, topic.Title, difficulty)
	if err != nil {
		monitoring.GenerationCounter.WithLabelValues("lesson", "error").Inc()
		logger.Log.Error("lesson generation failed",
			zap.Uint("topicId", topicID),
			zap.String("difficulty", difficulty),
			zap.Error(err))
		return nil, nil, util.ErrGenerationFailed
	}
	monitoring.GenerationCounter.WithLabelValues("lesson", "ok").Inc()

	content := &model.LearningContent{
		TopicID:  topicID,
		Title:    lesson.Title,
		Content:  lesson.Content,
		ReadTime: EstimateReadTime(lesson.Content),
	}
	if err := s.ContentRepo.Create(content); err != nil {
		return nil, nil, err
	}

	return content, &lesson.Quiz, nil
}

// EstimateReadTime converts a word count to minutes at 200 wpm, never
// below one minute.
func EstimateReadTime(text string) int {
	words := len(strings.Fields(text))
	minutes := (words + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
