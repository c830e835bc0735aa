package lostfound

import (
	"time"

	"github.com/google/uuid"
	"github.com/ridwankhan/campusconnect/internal/models"
)

// LostItem is a lost-and-found report owned by the reporting identity.
type LostItem struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID     uuid.UUID   `gorm:"type:uuid;not null;index" json:"ownerId"`
	Owner       models.User `gorm:"foreignKey:OwnerID" json:"-"`
	Name        string      `gorm:"size:150;not null" json:"name"`
	Description string      `gorm:"type:text;not null" json:"description"`
	Date        time.Time   `gorm:"not null" json:"date"`
	Location    string      `gorm:"size:255;not null" json:"location"`
	PhoneNumber string      `gorm:"size:30" json:"phone_number"`
	Image       string      `gorm:"size:500" json:"image"`
	CreatedAt   time.Time   `gorm:"index" json:"createdAt"`
}

// ItemView is an item joined with the owner's public contact projection.
type ItemView struct {
	LostItem
	UserName   string  `json:"user_name"`
	OwnerEmail string  `json:"email"`
	OwnerPhone *string `json:"owner_phone_number"`
}
