package societies

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Society struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string         `gorm:"size:150;not null;uniqueIndex" json:"name"`
	Logo            string         `gorm:"size:512" json:"logo"`
	CoverPhoto      string         `gorm:"size:512" json:"coverPhoto"`
	Description     string         `gorm:"type:text" json:"description"`
	Category        string         `gorm:"size:50;index" json:"category"`
	EstablishedYear int            `json:"establishedYear"`
	ContactEmail    string         `gorm:"size:255" json:"contactEmail"`
	Facebook        string         `gorm:"size:512" json:"facebook"`
	Website         string         `gorm:"size:512" json:"website"`
	PanelMembers    datatypes.JSON `json:"panelMembers"`
	PastGallery     datatypes.JSON `json:"pastGallery"`
	Admins          datatypes.JSON `json:"admins"`
	Followers       datatypes.JSON `json:"followers"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

type Event struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SocietyID            uuid.UUID      `gorm:"type:uuid;not null;index" json:"societyId"`
	Society              Society        `gorm:"foreignKey:SocietyID" json:"-"`
	Title                string         `gorm:"size:200;not null" json:"title"`
	Category             string         `gorm:"size:50;index" json:"category"`
	Date                 string         `gorm:"size:10;not null;index" json:"date"`
	Time                 string         `gorm:"size:20" json:"time"`
	Venue                string         `gorm:"size:200" json:"venue"`
	Description          string         `gorm:"type:text" json:"description"`
	Image                string         `gorm:"size:512" json:"image"`
	MaxParticipants      int            `json:"maxParticipants"`
	RegistrationDeadline string         `gorm:"size:10" json:"registrationDeadline"`
	Registrations        datatypes.JSON `json:"registrations"`
	CreatedBy            string         `gorm:"size:255" json:"createdBy"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
}

// SocietyView is the list projection with the follower count precomputed.
type SocietyView struct {
	Society
	MemberCount int `json:"memberCount"`
}

// SocietyDetail adds the flags personalized for the requesting caller.
type SocietyDetail struct {
	SocietyView
	IsFollowing bool `json:"isFollowing"`
	IsAdmin     bool `json:"isAdmin"`
}

// EventView carries the parent society name alongside the event.
type EventView struct {
	Event
	SocietyName     string `json:"societyName"`
	RegisteredCount int    `json:"registeredCount"`
}

// emailList decodes a JSON column holding a flat list of email strings.
// A null or malformed column reads as empty.
func emailList(j datatypes.JSON) []string {
	if len(j) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(j, &list); err != nil {
		return nil
	}
	return list
}

func emailListJSON(list []string) datatypes.JSON {
	if list == nil {
		list = []string{}
	}
	b, _ := json.Marshal(list)
	return datatypes.JSON(b)
}

func containsEmail(list []string, email string) bool {
	for _, e := range list {
		if e == email {
			return true
		}
	}
	return false
}
