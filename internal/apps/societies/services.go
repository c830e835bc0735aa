package societies

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrSocietyNotFound   = errors.New("society not found")
	ErrEventNotFound     = errors.New("event not found")
	ErrDuplicateName     = errors.New("a society with this name already exists")
	ErrNotSocietyAdmin   = errors.New("caller is not an admin of this society")
	ErrAlreadyRegistered = errors.New("already registered for this event")
	ErrEventFull         = errors.New("event has reached maximum participants")
	ErrDeadlinePassed    = errors.New("registration deadline has passed")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) ListSocieties(category string) ([]SocietyView, error) {
	query := s.db.Model(&Society{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var societies []Society
	if err := query.Order("name ASC").Find(&societies).Error; err != nil {
		return nil, err
	}

	views := make([]SocietyView, 0, len(societies))
	for _, soc := range societies {
		views = append(views, SocietyView{
			Society:     soc,
			MemberCount: len(emailList(soc.Followers)),
		})
	}
	return views, nil
}

func (s *Service) GetSociety(id uuid.UUID, callerEmail string) (*SocietyDetail, error) {
	var soc Society
	if err := s.db.First(&soc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSocietyNotFound
		}
		return nil, err
	}

	followers := emailList(soc.Followers)
	detail := &SocietyDetail{
		SocietyView: SocietyView{Society: soc, MemberCount: len(followers)},
	}
	if callerEmail != "" {
		detail.IsFollowing = containsEmail(followers, callerEmail)
		detail.IsAdmin = containsEmail(emailList(soc.Admins), callerEmail)
	}
	return detail, nil
}

// CreateSociety rejects duplicate names and seeds the creator as the first
// admin when no admin list was supplied.
func (s *Service) CreateSociety(creatorEmail string, soc *Society) (*Society, error) {
	var count int64
	if err := s.db.Model(&Society{}).Where("LOWER(name) = LOWER(?)", soc.Name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateName
	}

	soc.ID = uuid.New()
	admins := emailList(soc.Admins)
	if !containsEmail(admins, creatorEmail) {
		admins = append(admins, creatorEmail)
	}
	soc.Admins = emailListJSON(admins)
	if len(soc.Followers) == 0 {
		soc.Followers = emailListJSON(nil)
	}
	if len(soc.PanelMembers) == 0 {
		soc.PanelMembers = datatypes.JSON([]byte("[]"))
	}
	if len(soc.PastGallery) == 0 {
		soc.PastGallery = datatypes.JSON([]byte("[]"))
	}

	if err := s.db.Create(soc).Error; err != nil {
		return nil, err
	}
	return soc, nil
}

// adminSociety loads a society and verifies the caller sits on its admin
// email list.
func (s *Service) adminSociety(id uuid.UUID, callerEmail string) (*Society, error) {
	var soc Society
	if err := s.db.First(&soc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSocietyNotFound
		}
		return nil, err
	}
	if !containsEmail(emailList(soc.Admins), callerEmail) {
		return nil, ErrNotSocietyAdmin
	}
	return &soc, nil
}

func (s *Service) UpdateSociety(id uuid.UUID, callerEmail string, updates map[string]interface{}) (*Society, error) {
	soc, err := s.adminSociety(id, callerEmail)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(soc).Updates(updates).Error; err != nil {
		return nil, err
	}
	return soc, nil
}

func (s *Service) UpdatePanelMembers(id uuid.UUID, callerEmail string, panel datatypes.JSON) (*Society, error) {
	soc, err := s.adminSociety(id, callerEmail)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(soc).Update("panel_members", panel).Error; err != nil {
		return nil, err
	}
	return soc, nil
}

func (s *Service) UpdateGallery(id uuid.UUID, callerEmail string, gallery datatypes.JSON) (*Society, error) {
	soc, err := s.adminSociety(id, callerEmail)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(soc).Update("past_gallery", gallery).Error; err != nil {
		return nil, err
	}
	return soc, nil
}

// ToggleFollow flips the caller's membership in the follower list and
// reports the resulting state.
func (s *Service) ToggleFollow(id uuid.UUID, callerEmail string) (bool, error) {
	var following bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var soc Society
		if err := tx.First(&soc, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSocietyNotFound
			}
			return err
		}

		followers := emailList(soc.Followers)
		if containsEmail(followers, callerEmail) {
			next := make([]string, 0, len(followers)-1)
			for _, e := range followers {
				if e != callerEmail {
					next = append(next, e)
				}
			}
			followers = next
			following = false
		} else {
			followers = append(followers, callerEmail)
			following = true
		}

		return tx.Model(&soc).Update("followers", emailListJSON(followers)).Error
	})
	return following, err
}

type EventFilter struct {
	SocietyID uuid.UUID
	Category  string
	Month     string
	Upcoming  bool
}

func (s *Service) ListEvents(f EventFilter) ([]EventView, error) {
	query := s.db.Model(&Event{}).Preload("Society")
	if f.SocietyID != uuid.Nil {
		query = query.Where("society_id = ?", f.SocietyID)
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Month != "" {
		query = query.Where("date LIKE ?", f.Month+"%")
	}
	if f.Upcoming {
		query = query.Where("date >= ?", time.Now().Format("2006-01-02"))
	}

	var events []Event
	if err := query.Order("date ASC").Find(&events).Error; err != nil {
		return nil, err
	}

	views := make([]EventView, 0, len(events))
	for _, ev := range events {
		views = append(views, EventView{
			Event:           ev,
			SocietyName:     ev.Society.Name,
			RegisteredCount: len(emailList(ev.Registrations)),
		})
	}
	return views, nil
}

func (s *Service) GetEvent(id uuid.UUID) (*EventView, error) {
	var ev Event
	if err := s.db.Preload("Society").First(&ev, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &EventView{
		Event:           ev,
		SocietyName:     ev.Society.Name,
		RegisteredCount: len(emailList(ev.Registrations)),
	}, nil
}

func (s *Service) CreateEvent(societyID uuid.UUID, callerEmail string, ev *Event) (*Event, error) {
	if _, err := s.adminSociety(societyID, callerEmail); err != nil {
		return nil, err
	}

	ev.ID = uuid.New()
	ev.SocietyID = societyID
	ev.CreatedBy = callerEmail
	if len(ev.Registrations) == 0 {
		ev.Registrations = emailListJSON(nil)
	}

	if err := s.db.Create(ev).Error; err != nil {
		return nil, err
	}
	return ev, nil
}

func (s *Service) UpdateEvent(id uuid.UUID, callerEmail string, updates map[string]interface{}) (*Event, error) {
	var ev Event
	if err := s.db.First(&ev, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if _, err := s.adminSociety(ev.SocietyID, callerEmail); err != nil {
		return nil, err
	}

	if err := s.db.Model(&ev).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

func (s *Service) DeleteEvent(id uuid.UUID, callerEmail string) error {
	var ev Event
	if err := s.db.First(&ev, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	if _, err := s.adminSociety(ev.SocietyID, callerEmail); err != nil {
		return err
	}
	return s.db.Delete(&ev).Error
}

// RegisterForEvent appends the caller's email to the registration list after
// the duplicate, capacity, and deadline checks pass.
func (s *Service) RegisterForEvent(id uuid.UUID, callerEmail string) (*Event, error) {
	var out *Event
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var ev Event
		if err := tx.First(&ev, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		registrations := emailList(ev.Registrations)
		if containsEmail(registrations, callerEmail) {
			return ErrAlreadyRegistered
		}
		if ev.MaxParticipants > 0 && len(registrations) >= ev.MaxParticipants {
			return ErrEventFull
		}
		if ev.RegistrationDeadline != "" && ev.RegistrationDeadline < time.Now().Format("2006-01-02") {
			return ErrDeadlinePassed
		}

		registrations = append(registrations, callerEmail)
		ev.Registrations = emailListJSON(registrations)
		if err := tx.Model(&ev).Update("registrations", ev.Registrations).Error; err != nil {
			return err
		}
		out = &ev
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
