package model

// LearningContent is a single unit of reading material tied to a topic.
// Records are immutable once created; there is no update or delete path.
// swagger:model LearningContent
type LearningContent struct {
	UUIDBase
	TopicID  uint   `gorm:"index;type:bigint unsigned;not null" json:"topicId"`
	Title    string `gorm:"size:255;not null" json:"title"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Source   string `gorm:"size:255" json:"source,omitempty"`
	ReadTime int    `gorm:"default:0" json:"readTime"` // 阅读时长估计（分钟）
}

func (LearningContent) TableName() string {
	return "learning_contents"
}
