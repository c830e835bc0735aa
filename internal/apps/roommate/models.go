package roommate

import (
	"time"

	"github.com/google/uuid"
	"github.com/ridwankhan/campusconnect/internal/models"
	"gorm.io/datatypes"
)

// Listing is a roommate-wanted advertisement owned by the posting identity.
type Listing struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	PostedBy        uuid.UUID      `gorm:"type:uuid;not null;index" json:"posted_by"`
	Poster          models.User    `gorm:"foreignKey:PostedBy" json:"-"`
	Area            string         `gorm:"size:100;not null" json:"area"`
	FullAddress     string         `gorm:"size:255;not null" json:"fullAddress"`
	Floor           string         `gorm:"size:30" json:"floor"`
	CurrentStudents int            `json:"currentStudents"`
	StudentsInfo    string         `gorm:"type:text" json:"studentsInfo"`
	Rent            int            `gorm:"not null" json:"rent"`
	Facilities      datatypes.JSON `gorm:"type:jsonb" json:"facilities"`
	PhoneNumber     string         `gorm:"size:30" json:"phone_number"`
	IsGirlsOnly     bool           `gorm:"not null;default:false" json:"isGirlsOnly"`
	PostedDate      time.Time      `gorm:"autoCreateTime;index" json:"postedDate"`
}

func (Listing) TableName() string { return "roommate_listings" }

// ListingView is a listing joined with the poster's display name.
type ListingView struct {
	Listing
	UserName string `json:"userName"`
}
