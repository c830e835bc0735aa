package blooddonation

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ridwankhan/campusconnect/internal/models"
	"gorm.io/gorm"
)

var (
	ErrAlreadyActive   = errors.New("donor record is already active")
	ErrDonorNotFound   = errors.New("donor record not found")
	ErrRequestNotFound = errors.New("blood request not found")
	ErrNotRequester    = errors.New("not the owner of this blood request")
	ErrInvalidDeadline = errors.New("deadline must be a valid date in the future")
)

// DonorService owns the donor registration state machine:
// NoRecord -> Active <-> Inactive.
type DonorService struct {
	db *gorm.DB
}

func NewDonorService(db *gorm.DB) *DonorService {
	return &DonorService{db: db}
}

// Register creates or reactivates the caller's donor record. The whole
// decision, including the one-time phone backfill onto the identity, runs in
// a single transaction so concurrent attempts cannot duplicate the record or
// lose the backfill. Returns the record and the action taken ("created" or
// "reactivated").
func (s *DonorService) Register(userID uuid.UUID, bloodGroup, location, phoneNumber string, lastDonated *time.Time) (*DonorRecord, string, error) {
	var record *DonorRecord
	var action string

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}

		// One-time backfill: never overwrites an existing phone number.
		if !user.HasPhoneNumber() && phoneNumber != "" {
			if err := tx.Model(&user).Update("phone_number", phoneNumber).Error; err != nil {
				return err
			}
		}

		var existing DonorRecord
		err := tx.Where("user_id = ?", userID).First(&existing).Error
		if err == nil {
			if existing.IsActive {
				return ErrAlreadyActive
			}
			updates := map[string]interface{}{
				"blood_group":  bloodGroup,
				"location":     location,
				"last_donated": lastDonated,
				"is_active":    true,
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}
			existing.BloodGroup = bloodGroup
			existing.Location = location
			existing.LastDonated = lastDonated
			existing.IsActive = true
			record = &existing
			action = "reactivated"
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		created := DonorRecord{
			ID:          uuid.New(),
			UserID:      userID,
			BloodGroup:  bloodGroup,
			Location:    location,
			LastDonated: lastDonated,
			IsActive:    true,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}
		record = &created
		action = "created"
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return record, action, nil
}

// Toggle flips the active flag of an existing donor record and returns the
// new value.
func (s *DonorService) Toggle(userID uuid.UUID) (bool, error) {
	var existing DonorRecord
	if err := s.db.Where("user_id = ?", userID).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrDonorNotFound
		}
		return false, err
	}

	newStatus := !existing.IsActive
	if err := s.db.Model(&existing).Update("is_active", newStatus).Error; err != nil {
		return false, err
	}
	return newStatus, nil
}

// UpdateInfo applies a partial update to the caller's donor record. A
// supplied phone number always updates the identity.
func (s *DonorService) UpdateInfo(userID uuid.UUID, bloodGroup, location, phoneNumber string, lastDonated *time.Time) error {
	var existing DonorRecord
	if err := s.db.Where("user_id = ?", userID).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDonorNotFound
		}
		return err
	}

	updates := map[string]interface{}{}
	if bloodGroup != "" {
		updates["blood_group"] = bloodGroup
	}
	if location != "" {
		updates["location"] = location
	}
	if lastDonated != nil {
		updates["last_donated"] = lastDonated
	}
	if len(updates) > 0 {
		if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
			return err
		}
	}

	if phoneNumber != "" {
		if err := s.db.Model(&models.User{}).Where("id = ?", userID).
			Update("phone_number", phoneNumber).Error; err != nil {
			return err
		}
	}
	return nil
}

// ListDonors returns every active donor with the owner's public contact
// projection, plus the caller's own record even when inactive so the client
// can render their toggle state.
func (s *DonorService) ListDonors(callerID uuid.UUID) ([]DonorView, error) {
	var records []DonorRecord
	if err := s.db.Preload("User").Where("is_active = ?", true).Find(&records).Error; err != nil {
		return nil, err
	}

	callerIncluded := false
	for _, r := range records {
		if r.UserID == callerID {
			callerIncluded = true
			break
		}
	}
	if !callerIncluded {
		var own DonorRecord
		if err := s.db.Preload("User").Where("user_id = ?", callerID).First(&own).Error; err == nil {
			records = append(records, own)
		}
	}

	views := make([]DonorView, len(records))
	for i, r := range records {
		views[i] = DonorView{
			DonorID:     r.ID,
			BloodGroup:  r.BloodGroup,
			Location:    r.Location,
			LastDonated: r.LastDonated,
			IsActive:    r.IsActive,
			UserName:    r.User.UserName,
			PhoneNumber: r.User.PhoneNumber,
			Email:       r.User.Email,
		}
	}
	return views, nil
}

// RequestService handles blood request lifecycle: create, list, cancel.
type RequestService struct {
	db *gorm.DB
}

func NewRequestService(db *gorm.DB) *RequestService {
	return &RequestService{db: db}
}

// CreateRequest persists a request owned by the caller. The deadline must be
// strictly in the future.
func (s *RequestService) CreateRequest(userID uuid.UUID, bloodGroup, location string, deadline time.Time) (*RequestView, error) {
	if !deadline.After(time.Now()) {
		return nil, ErrInvalidDeadline
	}

	request := BloodRequest{
		ID:          uuid.New(),
		RequesterID: userID,
		BloodGroup:  bloodGroup,
		Location:    location,
		Deadline:    deadline,
	}
	if err := s.db.Create(&request).Error; err != nil {
		return nil, err
	}

	var requester models.User
	if err := s.db.First(&requester, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	return &RequestView{
		RequestID:   request.ID,
		BloodGroup:  request.BloodGroup,
		Location:    request.Location,
		Deadline:    request.Deadline,
		CreatedAt:   request.CreatedAt,
		UserName:    requester.UserName,
		PhoneNumber: requester.PhoneNumber,
		Email:       requester.Email,
	}, nil
}

// CancelRequest deletes a request after the guard chain: existence first,
// then ownership, so a missing row never leaks a forbidden response.
func (s *RequestService) CancelRequest(userID, requestID uuid.UUID) error {
	var request BloodRequest
	if err := s.db.First(&request, "id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequestNotFound
		}
		return err
	}

	if request.RequesterID != userID {
		return ErrNotRequester
	}

	return s.db.Delete(&request).Error
}

// ListRequests returns all requests, newest first, with the requester's
// public contact projection.
func (s *RequestService) ListRequests() ([]RequestView, error) {
	var requests []BloodRequest
	if err := s.db.Preload("Requester").Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}

	views := make([]RequestView, len(requests))
	for i, r := range requests {
		views[i] = RequestView{
			RequestID:   r.ID,
			BloodGroup:  r.BloodGroup,
			Location:    r.Location,
			Deadline:    r.Deadline,
			CreatedAt:   r.CreatedAt,
			UserName:    r.Requester.UserName,
			PhoneNumber: r.Requester.PhoneNumber,
			Email:       r.Requester.Email,
		}
	}
	return views, nil
}
