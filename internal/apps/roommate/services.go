package roommate

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrNotPoster       = errors.New("not the owner of this listing")
)

type ListingService struct {
	db *gorm.DB
}

func NewListingService(db *gorm.DB) *ListingService {
	return &ListingService{db: db}
}

// CreateListing persists a listing owned by the caller.
func (s *ListingService) CreateListing(userID uuid.UUID, area, fullAddress, floor, studentsInfo, phoneNumber string, currentStudents, rent int, facilities []string, isGirlsOnly bool) (*Listing, error) {
	facJSON, err := json.Marshal(facilities)
	if err != nil {
		return nil, err
	}

	listing := Listing{
		ID:              uuid.New(),
		PostedBy:        userID,
		Area:            area,
		FullAddress:     fullAddress,
		Floor:           floor,
		CurrentStudents: currentStudents,
		StudentsInfo:    studentsInfo,
		Rent:            rent,
		Facilities:      datatypes.JSON(facJSON),
		PhoneNumber:     phoneNumber,
		IsGirlsOnly:     isGirlsOnly,
	}
	if err := s.db.Create(&listing).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

// ListListings returns all listings, newest first, each with the poster's
// display name.
func (s *ListingService) ListListings() ([]ListingView, error) {
	var listings []Listing
	if err := s.db.Preload("Poster").Order("posted_date DESC").Find(&listings).Error; err != nil {
		return nil, err
	}

	views := make([]ListingView, len(listings))
	for i, l := range listings {
		views[i] = ListingView{Listing: l, UserName: l.Poster.UserName}
	}
	return views, nil
}

// DeleteListing removes a listing after the existence-then-ownership guard.
func (s *ListingService) DeleteListing(userID, listingID uuid.UUID) error {
	var listing Listing
	if err := s.db.First(&listing, "id = ?", listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListingNotFound
		}
		return err
	}

	if listing.PostedBy != userID {
		return ErrNotPoster
	}

	return s.db.Delete(&listing).Error
}
