package model

// Topic is a named subject area users can follow for recurring lessons.
// Rows come from the boot seed or from accepted AI suggestions and are
// read-only afterwards.
// swagger:model Topic
type Topic struct {
	BaseModel
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Icon        string `gorm:"size:50" json:"icon"`
	Color       string `gorm:"size:50" json:"color"`
}

func (Topic) TableName() string {
	return "topics"
}
