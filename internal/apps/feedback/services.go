package feedback

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrFeedbackNotFound = errors.New("feedback not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrMessageTooShort  = errors.New("message must be at least 5 characters long")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(category, title, message string) (*Feedback, error) {
	message = strings.TrimSpace(message)
	if utf8.RuneCountInString(message) < 5 {
		return nil, ErrMessageTooShort
	}

	fb := &Feedback{
		ID:       uuid.New(),
		Category: strings.TrimSpace(category),
		Title:    strings.TrimSpace(title),
		Message:  message,
	}
	if err := s.db.Create(fb).Error; err != nil {
		return nil, err
	}
	return fb, nil
}

func (s *Service) List() ([]Feedback, error) {
	var items []Feedback
	err := s.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (s *Service) ListByCategory(category string) ([]Feedback, error) {
	var items []Feedback
	err := s.db.Where("category = ?", category).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (s *Service) Get(id uuid.UUID) (*FeedbackWithComments, error) {
	var fb Feedback
	if err := s.db.First(&fb, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}

	var comments []Comment
	if err := s.db.Where("feedback_id = ?", id).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, err
	}

	return &FeedbackWithComments{Feedback: fb, Comments: comments}, nil
}

func (s *Service) AddComment(feedbackID uuid.UUID, author, message string) (*Comment, error) {
	var fb Feedback
	if err := s.db.First(&fb, "id = ?", feedbackID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}

	author = strings.TrimSpace(author)
	if author == "" {
		author = "Anonymous"
	}

	comment := &Comment{
		ID:         uuid.New(),
		FeedbackID: feedbackID,
		Author:     author,
		Message:    strings.TrimSpace(message),
	}
	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment addressed through its parent feedback. An
// absent feedback and an absent comment report distinct not-found errors.
func (s *Service) DeleteComment(feedbackID, commentID uuid.UUID) error {
	var fb Feedback
	if err := s.db.First(&fb, "id = ?", feedbackID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFeedbackNotFound
		}
		return err
	}

	result := s.db.Delete(&Comment{}, "id = ? AND feedback_id = ?", commentID, feedbackID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}
