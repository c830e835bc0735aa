package lostfound

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound = errors.New("lost item not found")
	ErrNotReporter  = errors.New("not the owner of this item report")
)

type ItemService struct {
	db *gorm.DB
}

func NewItemService(db *gorm.DB) *ItemService {
	return &ItemService{db: db}
}

// CreateItem persists a lost-item report owned by the caller. A zero date
// defaults to the time of reporting.
func (s *ItemService) CreateItem(ownerID uuid.UUID, name, description, location, phoneNumber, image string, date time.Time) (*LostItem, error) {
	if date.IsZero() {
		date = time.Now()
	}

	item := LostItem{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Date:        date,
		Location:    location,
		PhoneNumber: phoneNumber,
		Image:       image,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListItems returns all reports, newest first, with owner contact info.
func (s *ItemService) ListItems() ([]ItemView, error) {
	var items []LostItem
	if err := s.db.Preload("Owner").Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}

	views := make([]ItemView, len(items))
	for i, item := range items {
		views[i] = ItemView{
			LostItem:   item,
			UserName:   item.Owner.UserName,
			OwnerEmail: item.Owner.Email,
			OwnerPhone: item.Owner.PhoneNumber,
		}
	}
	return views, nil
}

// DeleteItem removes a report after the existence-then-ownership guard.
func (s *ItemService) DeleteItem(userID, itemID uuid.UUID) error {
	var item LostItem
	if err := s.db.First(&item, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return err
	}

	if item.OwnerID != userID {
		return ErrNotReporter
	}

	return s.db.Delete(&item).Error
}
