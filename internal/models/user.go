package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the portal identity record. Rows are created by upsert on first
// external sign-in and keyed by email; they are never hard-deleted.
type User struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	UserName    string         `gorm:"size:100;not null" json:"user_name"`
	PhoneNumber *string        `gorm:"size:30" json:"phone_number"`
	Gender      *string        `gorm:"size:20" json:"gender"`
	Image       *string        `gorm:"size:500" json:"image"`
	Role        string         `gorm:"size:20;default:'user'" json:"role"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// HasPhoneNumber reports whether a usable phone number is already stored.
func (u *User) HasPhoneNumber() bool {
	return u.PhoneNumber != nil && *u.PhoneNumber != ""
}
