package marketplace

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Payment status values for a post.
const (
	PaymentPending = "Pending"
	PaymentDone    = "Payment Done"
)

// Post is a marketplace advertisement owned by the selling identity. Sold
// posts are removed once the seller confirms payment.
type Post struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SellerID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"sellerId"`
	SellerName    string         `gorm:"size:100;not null" json:"sellerName"`
	Title         string         `gorm:"size:150;not null" json:"title"`
	Category      string         `gorm:"size:50;not null;index" json:"category"`
	Description   string         `gorm:"type:text;not null" json:"description"`
	Images        datatypes.JSON `gorm:"type:jsonb" json:"images"`
	Location      string         `gorm:"size:255;not null" json:"location"`
	Price         int            `gorm:"not null" json:"price"`
	PhoneNumber   string         `gorm:"size:30;not null" json:"phone_number"`
	PaymentStatus string         `gorm:"size:20;not null;default:'Pending';index" json:"paymentStatus"`
	BuyerID       *uuid.UUID     `gorm:"type:uuid" json:"buyerId"`
	BuyerName     string         `gorm:"size:100" json:"buyerName"`
	CreatedAt     time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func (Post) TableName() string { return "marketplace_posts" }
