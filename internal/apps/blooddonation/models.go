package blooddonation

import (
	"time"

	"github.com/google/uuid"
	"github.com/ridwankhan/campusconnect/internal/models"
)

// DonorRecord marks an identity as a blood donor. The unique index on
// UserID is the hard guarantee that an identity has at most one record;
// IsActive is the sole availability flag.
type DonorRecord struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"donor_id"`
	UserID      uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User        models.User `gorm:"foreignKey:UserID" json:"-"`
	BloodGroup  string      `gorm:"size:5;not null" json:"blood_group"`
	Location    string      `gorm:"size:255;not null" json:"location"`
	LastDonated *time.Time  `json:"last_donated"`
	IsActive    bool        `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// BloodRequest is an owned resource: only the requester may cancel it, and
// the retention sweeper purges it once it ages out.
type BloodRequest struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"request_id"`
	RequesterID uuid.UUID   `gorm:"type:uuid;not null;index" json:"requester_id"`
	Requester   models.User `gorm:"foreignKey:RequesterID" json:"-"`
	BloodGroup  string      `gorm:"size:5;not null" json:"blood_group"`
	Location    string      `gorm:"size:255;not null" json:"location"`
	Deadline    time.Time   `gorm:"not null" json:"deadline"`
	CreatedAt   time.Time   `gorm:"index" json:"created_at"`
}

// DonorView is the public projection returned by donor listings.
type DonorView struct {
	DonorID     uuid.UUID  `json:"donor_id"`
	BloodGroup  string     `json:"blood_group"`
	Location    string     `json:"location"`
	LastDonated *time.Time `json:"last_donated"`
	IsActive    bool       `json:"isActive"`
	UserName    string     `json:"user_name"`
	PhoneNumber *string    `json:"phone_number"`
	Email       string     `json:"email"`
}

// RequestView is the public projection returned by request listings.
type RequestView struct {
	RequestID   uuid.UUID `json:"requestId"`
	BloodGroup  string    `json:"blood_group"`
	Location    string    `json:"location"`
	Deadline    time.Time `json:"deadline"`
	CreatedAt   time.Time `json:"createdAt"`
	UserName    string    `json:"user_name"`
	PhoneNumber *string   `json:"phone_number"`
	Email       string    `json:"email"`
}
