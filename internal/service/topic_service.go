package service

import (
	"context"
	"encoding/json"
	"micro_learning_backend/internal/model"
	"micro_learning_backend/internal/util"
	"micro_learning_backend/pkg/logger"
	"micro_learning_backend/pkg/monitoring"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// TopicSuggester produces topic suggestions via the upstream model.
type TopicSuggester interface {
	GenerateTopics(ctx context.Context, category string) ([]model.TopicSuggestion, error)
}

type TopicService struct {
	TopicRepo TopicStore
	Suggester TopicSuggester
	Redis     *redis.Client
}

const topicCacheKey = "topics:all"
const topicCacheTTL = 5 * time.Minute

func NewTopicService(topicRepo TopicStore, suggester TopicSuggester, rdb *redis.Client) *TopicService {
	return &TopicService{
		TopicRepo: topicRepo,
		Suggester: suggester,
		Redis:     rdb,
	}
}

// List serves the topic catalog through a short-lived redis cache. Topics
// only change at seed time, so a stale window of a few minutes is fine.
func (s *TopicService) List(ctx context.Context) ([]model.Topic, error) {
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, topicCacheKey).Result(); err == nil {
			var topics []model.Topic
			if err := json.Unmarshal([]byte(val), &topics); err == nil {
				return topics, nil
			}
		}
	}

	topics, err := s.TopicRepo.FindAll()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(topics); err == nil {
			s.Redis.Set(ctx, topicCacheKey, data, topicCacheTTL)
		}
	}

	return topics, nil
}

// Suggest runs one upstream generation attempt for the category. The
// suggestions are returned to the client and never persisted.
func (s *TopicService) Suggest(ctx context.Context, category string) ([]model.TopicSuggestion, error) {
	suggestions, err := s.Suggester.GenerateTopics(ctx, category)
	if err != nil {
		monitoring.GenerationCounter.WithLabelValues("topics", "error").Inc()
		logger.Log.Error("topic generation failed",
			zap.String("category", category),
			zap.Error(err))
		return nil, util.ErrGenerationFailed
	}
	monitoring.GenerationCounter.WithLabelValues("topics", "ok").Inc()

	return suggestions, nil
}
