package service

import (
	"context"
	"errors"
	"micro_learning_backend/internal/model"
	"micro_learning_backend/internal/util"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeContentStore struct {
	contents []model.LearningContent
}

func (s *fakeContentStore) Create(content *model.LearningContent) error {
	if content.ID == "" {
		content.ID = uuid.New().String()
	}
	if content.CreatedAt.IsZero() {
		content.CreatedAt = time.Now()
	}
	s.contents = append(s.contents, *content)
	return nil
}

func (s *fakeContentStore) FindByTopic(topicID uint) ([]model.LearningContent, error) {
	var out []model.LearningContent
	for _, c := range s.contents {
		if c.TopicID == topicID {
			out = append(out, c)
		}
	}
	// newest first, as the repository orders by created_at DESC
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

type fakeTopicStore struct {
	topics map[uint]*model.Topic
}

func (s *fakeTopicStore) FindAll() ([]model.Topic, error) {
	var out []model.Topic
	for _, t := range s.topics {
		out = append(out, *t)
	}
	return out, nil
}

func (s *fakeTopicStore) FindByID(id uint) (*model.Topic, error) {
	t, ok := s.topics[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *t
	return &copy, nil
}

type fakeGenerator struct {
	lesson *model.GeneratedLesson
	err    error
	calls  int
}

func (g *fakeGenerator) GenerateLesson(ctx context.Context, topic, difficulty string) (*model.GeneratedLesson, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.lesson, nil
}

func newTestTopicStore() *fakeTopicStore {
	topic := &model.Topic{Title: "Artificial Intelligence"}
	topic.ID = 7
	return &fakeTopicStore{topics: map[uint]*model.Topic{7: topic}}
}

func TestCreateContentRoundTrip(t *testing.T) {
	store := &fakeContentStore{}
	svc := NewContentService(store, newTestTopicStore(), &fakeGenerator{})

	item := &model.LearningContent{
		TopicID:  7,
		Title:    "Understanding AI",
		Content:  "A short lesson body.",
		Source:   "https://example.com/ai",
		ReadTime: 3,
	}
	if err := svc.Create(item); err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.ID == "" {
		t.Fatal("expected generated id")
	}
	if item.CreatedAt.IsZero() {
		t.Fatal("expected creation timestamp")
	}

	listed, err := svc.ListByTopic(7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 item, got %d", len(listed))
	}
	got := listed[0]
	if got.Title != item.Title || got.Content != item.Content || got.Source != item.Source || got.ReadTime != 3 {
		t.Fatalf("fields not preserved: %+v", got)
	}
}

func TestCreateContentEstimatesReadTime(t *testing.T) {
	store := &fakeContentStore{}
	svc := NewContentService(store, newTestTopicStore(), &fakeGenerator{})

	item := &model.LearningContent{
		TopicID: 7,
		Title:   "Dense lesson",
		Content: strings.Repeat("word ", 450),
	}
	if err := svc.Create(item); err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.ReadTime != 3 {
		t.Fatalf("expected 3 minute estimate for 450 words, got %d", item.ReadTime)
	}
}

func TestListByTopicNewestFirst(t *testing.T) {
	store := &fakeContentStore{}
	svc := NewContentService(store, newTestTopicStore(), &fakeGenerator{})

	base := time.Now()
	for i := 0; i < 3; i++ {
		store.contents = append(store.contents, model.LearningContent{
			UUIDBase: model.UUIDBase{ID: uuid.New().String(), CreatedAt: base.Add(time.Duration(i) * time.Minute)},
			TopicID:  7,
			Title:    "lesson",
			Content:  "body",
		})
	}

	listed, err := svc.ListByTopic(7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i := 1; i < len(listed); i++ {
		if listed[i].CreatedAt.After(listed[i-1].CreatedAt) {
			t.Fatalf("items out of order at index %d", i)
		}
	}
}

func TestGenerateLessonPersists(t *testing.T) {
	store := &fakeContentStore{}
	gen := &fakeGenerator{
		lesson: &model.GeneratedLesson{
			Title:   "Intro to AI",
			Content: strings.Repeat("word ", 250),
			Quiz: model.Quiz{Questions: []model.QuizQuestion{
				{Text: "q", Type: "multiple-choice", Options: []string{"a", "b"}, CorrectAnswer: "a"},
			}},
		},
	}
	svc := NewContentService(store, newTestTopicStore(), gen)

	content, quiz, err := svc.GenerateLesson(context.Background(), 7, "beginner")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if gen.calls != 1 {
		t.Fatalf("expected a single generation attempt, got %d", gen.calls)
	}
	if content.ID == "" || content.TopicID != 7 {
		t.Fatalf("unexpected stored content %+v", content)
	}
	if content.ReadTime != 2 {
		t.Fatalf("expected 2 minute estimate for 250 words, got %d", content.ReadTime)
	}
	if len(quiz.Questions) != 1 {
		t.Fatalf("expected quiz alongside content, got %+v", quiz)
	}
	if len(store.contents) != 1 {
		t.Fatalf("expected lesson persisted, got %d rows", len(store.contents))
	}
}

func TestGenerateLessonUnknownTopic(t *testing.T) {
	svc := NewContentService(&fakeContentStore{}, newTestTopicStore(), &fakeGenerator{})

	_, _, err := svc.GenerateLesson(context.Background(), 99, "beginner")
	if !errors.Is(err, util.ErrTopicNotFound) {
		t.Fatalf("expected ErrTopicNotFound, got %v", err)
	}
}

func TestGenerateLessonCollapsesUpstreamError(t *testing.T) {
	store := &fakeContentStore{}
	gen := &fakeGenerator{err: errors.New("AI API error (status 500): boom")}
	svc := NewContentService(store, newTestTopicStore(), gen)

	_, _, err := svc.GenerateLesson(context.Background(), 7, "beginner")
	if !errors.Is(err, util.ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
	if strings.Contains(err.Error(), "boom") {
		t.Fatalf("upstream error leaked: %v", err)
	}
	if len(store.contents) != 0 {
		t.Fatal("failed generation must not persist content")
	}
}

func TestEstimateReadTime(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{0, 1},
		{1, 1},
		{199, 1},
		{200, 1},
		{201, 2},
		{450, 3},
	}
	for _, tt := range tests {
		text := strings.TrimSpace(strings.Repeat("word ", tt.words))
		if got := EstimateReadTime(text); got != tt.want {
			t.Errorf("EstimateReadTime(%d words) = %d, want %d", tt.words, got, tt.want)
		}
	}
}
