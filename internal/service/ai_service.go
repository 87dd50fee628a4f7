package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"micro_learning_backend/internal/config"
	"micro_learning_backend/internal/model"
	"net/http"
	"strings"
)

// AIService talks to an OpenAI-compatible chat completions endpoint. One
// attempt per call, bounded by the configured client timeout; retry policy
// is deliberately left to the caller.
type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: cfg.RequestTimeout},
	}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *AIService) Chat(ctx context.Context, system, prompt string) (string, error) {
	messages := []AIChatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: prompt},
	}

	reqBody := ChatCompletionRequest{
		Model:    s.config.Model,
		Messages: messages,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("AI returned no choices")
}

// GenerateLesson asks for a micro-lesson plus quiz in strict JSON and
// parses it into the expected shape. Anything that fails to parse is an
// error for the caller to collapse into its generation-failure class.
func (s *AIService) GenerateLesson(ctx context.Context, topic, difficulty string) (*model.GeneratedLesson, error) {
	system := "You are an educational content creator. Create a short lesson with quiz questions."
	prompt := fmt.Sprintf(`Create a %s level micro-lesson about %s with the following format:
{
  "title": "lesson title",
  "content": "main lesson content (200-300 words)",
  "quiz": {
    "questions": [
      {
        "text": "question text",
        "type": "multiple-choice",
        "options": ["option1", "option2", "option3", "option4"],
        "correctAnswer": "correct option",
        "explanation": "why this is correct"
      }
    ]
  }
}
Respond with JSON only.`, difficulty, topic)

	raw, err := s.Chat(ctx, system, prompt)
	if err != nil {
		return nil, err
	}

	var lesson model.GeneratedLesson
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &lesson); err != nil {
		return nil, fmt.Errorf("unparseable lesson payload: %w", err)
	}
	if lesson.Title == "" || lesson.Content == "" {
		return nil, fmt.Errorf("incomplete lesson payload")
	}

	return &lesson, nil
}

// GenerateTopics asks for five topic suggestions for a category.
func (s *AIService) GenerateTopics(ctx context.Context, category string) ([]model.TopicSuggestion, error) {
	system := "You are an educational content planner."
	prompt := fmt.Sprintf(`Generate 5 interesting learning topics for the category "%s" in this format:
[{
  "id": "unique-id",
  "name": "topic name",
  "description": "brief description",
  "icon": "relevant emoji",
  "category": "%s"
}]
Respond with JSON only.`, category, category)

	raw, err := s.Chat(ctx, system, prompt)
	if err != nil {
		return nil, err
	}

	var topics []model.TopicSuggestion
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &topics); err != nil {
		return nil, fmt.Errorf("unparseable topics payload: %w", err)
	}
	if len(topics) == 0 {
		return nil, fmt.Errorf("empty topics payload")
	}

	return topics, nil
}

// stripCodeFence removes a surrounding markdown code fence, which models
// add despite the JSON-only instruction.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
