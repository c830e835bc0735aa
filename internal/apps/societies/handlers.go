package societies

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/ridwankhan/campusconnect/internal/dto"
	"github.com/ridwankhan/campusconnect/internal/session"
	"github.com/ridwankhan/campusconnect/internal/validation"
)

type CreateSocietyRequest struct {
	Name            string         `json:"name" validate:"required,max=150"`
	Logo            string         `json:"logo"`
	CoverPhoto      string         `json:"coverPhoto"`
	Description     string         `json:"description"`
	Category        string         `json:"category" validate:"required,max=50"`
	EstablishedYear int            `json:"establishedYear"`
	ContactEmail    string         `json:"contactEmail" validate:"omitempty,email"`
	Facebook        string         `json:"facebook"`
	Website         string         `json:"website"`
	PanelMembers    datatypes.JSON `json:"panelMembers"`
	Admins          []string       `json:"admins" validate:"dive,email"`
}

type UpdateSocietyRequest struct {
	Logo            *string `json:"logo"`
	CoverPhoto      *string `json:"coverPhoto"`
	Description     *string `json:"description"`
	Category        *string `json:"category"`
	EstablishedYear *int    `json:"establishedYear"`
	ContactEmail    *string `json:"contactEmail" validate:"omitempty,email"`
	Facebook        *string `json:"facebook"`
	Website         *string `json:"website"`
}

type PanelRequest struct {
	PanelMembers datatypes.JSON `json:"panelMembers" validate:"required"`
}

type GalleryRequest struct {
	PastGallery datatypes.JSON `json:"pastGallery" validate:"required"`
}

type CreateEventRequest struct {
	Title                string `json:"title" validate:"required,max=200"`
	Category             string `json:"category" validate:"max=50"`
	Date                 string `json:"date" validate:"required,datetime=2006-01-02"`
	Time                 string `json:"time" validate:"max=20"`
	Venue                string `json:"venue" validate:"max=200"`
	Description          string `json:"description"`
	Image                string `json:"image"`
	MaxParticipants      int    `json:"maxParticipants" validate:"gte=0"`
	RegistrationDeadline string `json:"registrationDeadline" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateEventRequest struct {
	Title                *string `json:"title"`
	Category             *string `json:"category"`
	Date                 *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time                 *string `json:"time"`
	Venue                *string `json:"venue"`
	Description          *string `json:"description"`
	Image                *string `json:"image"`
	MaxParticipants      *int    `json:"maxParticipants" validate:"omitempty,gte=0"`
	RegistrationDeadline *string `json:"registrationDeadline" validate:"omitempty,datetime=2006-01-02"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func societyError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, ErrSocietyNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: "Society not found"})
	case errors.Is(err, ErrEventNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: "Event not found"})
	case errors.Is(err, ErrNotSocietyAdmin):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: true, Message: "You are not an admin of this society"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: fallback})
	}
}

func (h *Handler) ListSocieties(c *fiber.Ctx) error {
	views, err := h.service.ListSocieties(c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch societies"})
	}
	return c.JSON(views)
}

func (h *Handler) GetSociety(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid society ID"})
	}

	callerEmail := ""
	if identity, err := session.Get(c); err == nil {
		callerEmail = identity.Email
	}

	detail, err := h.service.GetSociety(id, callerEmail)
	if err != nil {
		return societyError(c, err, "Failed to fetch society")
	}
	return c.JSON(detail)
}

func (h *Handler) CreateSociety(c *fiber.Ctx) error {
	identity, err := session.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Authentication required"})
	}

	var req CreateSocietyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
	}

	soc := &Society{
		Name:            req.Name,
		Logo:            req.Logo,
		CoverPhoto:      req.CoverPhoto,
		Description:     req.Description,
		Category:        req.Category,
		EstablishedYear: req.EstablishedYear,
		ContactEmail:    req.ContactEmail,
		Facebook:        req.Facebook,
		Website:         req.Website,
		PanelMembers:    req.PanelMembers,
		Admins:          emailListJSON(req.Admins),
	}

	created, err := h.service.CreateSociety(identity.Email, soc)
	if err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: true, Message: "A society with this name already exists"})
		}
		return societyError(c, err, "Failed to create society")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) UpdateSociety(c *fiber.Ctx) error {
	identity, err := session.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Authentication required"})
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid society ID"})
	}

	var req UpdateSocietyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
	}

	updates := map[string]interface{}{}
	if req.Logo != nil {
		updates["logo"] = *req.Logo
	}
	if req.CoverPhoto != nil {
		updates["cover_photo"] = *req.CoverPhoto
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.EstablishedYear != nil {
		updates["established_year"] = *req.EstablishedYear
	}
	if req.ContactEmail != nil {
		updates["contact_email"] = *req.ContactEmail
	}
	if req.Facebook != nil {
		updates["facebook"] = *req.Facebook
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}

	soc, err := h.service.UpdateSociety(id, identity.Email, updates)
	if err != nil {
		return societyError(c, err, "Failed to update society")
	}
	return c.JSON(soc)
}

func (h *Handler) UpdatePanel(c *fiber.Ctx) error {
	identity, err := session.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Authentication required"})
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid society ID"})
	}

	var req PanelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	soc, err := h.service.UpdatePanelMembers(id, identity.Email, req.PanelMembers)
	if err != nil {
		return societyError(c, err, "Failed to update panel members")
	}
	return c.JSON(soc)
}

func (h *Handler) UpdateGallery(c *fiber.Ctx) error {
	identity, err := session.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Authentication required"})
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid society ID"})
	}

	var req GalleryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	soc, err := h.service.UpdateGallery(id, identity.Email, req.PastGallery)
	if err != nil {
		return societyError(c, err, "Failed to update gallery")
	}
	return c.JSON(soc)
}

func (h *Handler) ToggleFollow(c *fiber.Ctx) error {
	identity, err := session.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Authentication required"})
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid society ID"})
	}

	following, err := h.service.ToggleFollow(id, identity.Email)
	if err != nil {
		return societyError(c, err, "Failed to update follow state")
	}

	message := "Society unfollowed"
	if following {
		message = "Society followed"
	}
	return c.JSON(fiber.Map{"message": message, "isFollowing": following})
}

func (h *Handler) ListEvents(c *fiber.Ctx) error {
	filter := EventFilter{
		Category: c.Query("category"),
		Month:    c.Query("month"),
		Upcoming: c.Query("upcoming") == "true",
	}
	if raw := c.Query("societyId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid society ID"})
		}
		filter.SocietyID = id
	}

	views, err := h.service.ListEvents(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch events"})
	}
	return c.JSON(views)
}

func (h *Handler) GetEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid event ID"})
	}

	view, err := h.service.GetEvent(id)
	if err != nil {
		return societyError(c, err, "Failed to fetch event")
	}
	return c.JSON(view)
}

func (h *Handler) CreateEvent(c *fiber.Ctx) error {
	identity, err := session.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Authentication required"})
	}
	societyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid society ID"})
	}

	var req CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
	}

	ev := &Event{
		Title:                req.Title,
		Category:             req.Category,
		Date:                 req.Date,
		Time:                 req.Time,
		Venue:                req.Venue,
		Description:          req.Description,
		Image:                req.Image,
		MaxParticipants:      req.MaxParticipants,
		RegistrationDeadline: req.RegistrationDeadline,
	}

	created, err := h.service.CreateEvent(societyID, identity.Email, ev)
	if err != nil {
		return societyError(c, err, "Failed to create event")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) UpdateEvent(c *fiber.Ctx) error {
	identity, err := session.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Authentication required"})
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid event ID"})
	}

	var req UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Time != nil {
		updates["time"] = *req.Time
	}
	if req.Venue != nil {
		updates["venue"] = *req.Venue
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.MaxParticipants != nil {
		updates["max_participants"] = *req.MaxParticipants
	}
	if req.RegistrationDeadline != nil {
		updates["registration_deadline"] = *req.RegistrationDeadline
	}

	ev, err := h.service.UpdateEvent(id, identity.Email, updates)
	if err != nil {
		return societyError(c, err, "Failed to update event")
	}
	return c.JSON(ev)
}

func (h *Handler) DeleteEvent(c *fiber.Ctx) error {
	identity, err := session.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Authentication required"})
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid event ID"})
	}

	if err := h.service.DeleteEvent(id, identity.Email); err != nil {
		return societyError(c, err, "Failed to delete event")
	}
	return c.JSON(fiber.Map{"message": "Event deleted"})
}

func (h *Handler) RegisterForEvent(c *fiber.Ctx) error {
	identity, err := session.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Authentication required"})
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid event ID"})
	}

	ev, err := h.service.RegisterForEvent(id, identity.Email)
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyRegistered):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: true, Message: "You are already registered for this event"})
		case errors.Is(err, ErrEventFull):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Event has reached maximum participants"})
		case errors.Is(err, ErrDeadlinePassed):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Registration deadline has passed"})
		default:
			return societyError(c, err, "Failed to register for event")
		}
	}
	return c.JSON(fiber.Map{"message": "Registered for event", "event": ev})
}
