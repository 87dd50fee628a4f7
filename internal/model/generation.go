package model

// Shapes exchanged with the upstream content generator. These are not
// persisted as-is: a generated lesson is stored as LearningContent, topic
// suggestions are returned to the client untouched.

// swagger:model QuizQuestion
type QuizQuestion struct {
	Text          string   `json:"text"`
	Type          string   `json:"type"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// swagger:model Quiz
type Quiz struct {
	Questions []QuizQuestion `json:"questions"`
}

// swagger:model GeneratedLesson
type GeneratedLesson struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Quiz    Quiz   `json:"quiz"`
}

// swagger:model TopicSuggestion
type TopicSuggestion struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
}
