package feedback

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is an anonymous submission; no identity is ever attached.
type Feedback struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Category  string    `gorm:"size:50;not null;index" json:"category"`
	Title     string    `gorm:"size:150" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

// Comment is an anonymous reply on a feedback item.
type Comment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FeedbackID uuid.UUID `gorm:"type:uuid;not null;index" json:"feedbackId"`
	Author     string    `gorm:"size:50;not null;default:'Anonymous'" json:"author"`
	Message    string    `gorm:"size:500;not null" json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (Comment) TableName() string { return "feedback_comments" }

// FeedbackWithComments is the single-item projection.
type FeedbackWithComments struct {
	Feedback
	Comments []Comment `json:"comments"`
}
