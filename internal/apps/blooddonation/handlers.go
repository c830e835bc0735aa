package blooddonation

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ridwankhan/campusconnect/internal/dto"
	"github.com/ridwankhan/campusconnect/internal/session"
	"github.com/ridwankhan/campusconnect/internal/validation"
)

type DonorHandler struct {
	service *DonorService
}

func NewDonorHandler(service *DonorService) *DonorHandler {
	return &DonorHandler{service: service}
}

type RequestHandler struct {
	service *RequestService
}

func NewRequestHandler(service *RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// --- Request DTOs ---

type RegisterDonorRequest struct {
	BloodGroup  string `json:"blood_group" validate:"required"`
	Location    string `json:"location" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	LastDonated string `json:"last_donated"`
}

type UpdateDonorRequest struct {
	BloodGroup  string `json:"blood_group"`
	Location    string `json:"location"`
	PhoneNumber string `json:"phone_number"`
	LastDonated string `json:"last_donated"`
}

type CreateBloodRequestRequest struct {
	BloodGroup string `json:"blood_group" validate:"required"`
	Location   string `json:"location" validate:"required"`
	Deadline   string `json:"deadline" validate:"required"`
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// parseDate returns nil for an empty or unparseable value; the original
// client sends ISO timestamps and bare dates.
func parseDate(s string) *time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// --- Donor handlers ---

func (h *DonorHandler) Register(c *fiber.Ctx) error {
	id, err := session.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	var req RegisterDonorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Missing required fields: blood group, location, and phone number are necessary.",
		})
	}

	record, action, err := h.service.Register(id.UserID, req.BloodGroup, req.Location, req.PhoneNumber, parseDate(req.LastDonated))
	if err != nil {
		if errors.Is(err, ErrAlreadyActive) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: "You are already registered as an active donor. Please use the Deactivate feature if necessary.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Could not process donor registration due to a server error.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Donor registration successful (" + action + ").",
		"donor":   record,
	})
}

func (h *DonorHandler) Toggle(c *fiber.Ctx) error {
	id, err := session.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	isActive, err := h.service.Toggle(id.UserID)
	if err != nil {
		if errors.Is(err, ErrDonorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Donor record not found. Please register first.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Could not process request to toggle donor status due to a server error.",
		})
	}

	status := "deactivated"
	if isActive {
		status = "activated"
	}
	return c.JSON(fiber.Map{
		"message":  "Donor status successfully " + status + ".",
		"isActive": isActive,
	})
}

func (h *DonorHandler) Update(c *fiber.Ctx) error {
	id, err := session.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	var req UpdateDonorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	if err := h.service.UpdateInfo(id.UserID, req.BloodGroup, req.Location, req.PhoneNumber, parseDate(req.LastDonated)); err != nil {
		if errors.Is(err, ErrDonorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Donor record not found. Please register first.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Could not update donor information due to a server error.",
		})
	}

	return c.JSON(fiber.Map{"message": "Donor information successfully updated."})
}

func (h *DonorHandler) List(c *fiber.Ctx) error {
	id, err := session.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	donors, err := h.service.ListDonors(id.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Could not retrieve donor list due to a server error.",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(donors),
		"donors":  donors,
	})
}

// --- Blood request handlers ---

func (h *RequestHandler) Create(c *fiber.Ctx) error {
	id, err := session.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	var req CreateBloodRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Missing required fields: blood group, location, and deadline are necessary.",
		})
	}

	deadline := parseDate(req.Deadline)
	if deadline == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid deadline. The requested time must be a valid date in the future.",
		})
	}

	view, err := h.service.CreateRequest(id.UserID, req.BloodGroup, req.Location, *deadline)
	if err != nil {
		if errors.Is(err, ErrInvalidDeadline) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid deadline. The requested time must be a valid date in the future.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Could not process blood request due to a server error.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Blood request created successfully and is now active.",
		"request": view,
	})
}

func (h *RequestHandler) Cancel(c *fiber.Ctx) error {
	id, err := session.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request ID provided for cancellation.",
		})
	}

	if err := h.service.CancelRequest(id.UserID, requestID); err != nil {
		switch {
		case errors.Is(err, ErrRequestNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Blood request not found.",
			})
		case errors.Is(err, ErrNotRequester):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "You are not authorized to cancel this blood request.",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Could not process cancellation due to a server error.",
			})
		}
	}

	return c.JSON(fiber.Map{"message": "Blood request successfully cancelled."})
}

func (h *RequestHandler) List(c *fiber.Ctx) error {
	requests, err := h.service.ListRequests()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Could not retrieve blood request list due to a server error.",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"count":    len(requests),
		"requests": requests,
	})
}
