package roommate

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ridwankhan/campusconnect/internal/dto"
	"github.com/ridwankhan/campusconnect/internal/session"
	"github.com/ridwankhan/campusconnect/internal/validation"
)

type ListingHandler struct {
	service *ListingService
}

func NewListingHandler(service *ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

type CreateListingRequest struct {
	Area            string   `json:"area" validate:"required"`
	FullAddress     string   `json:"fullAddress" validate:"required"`
	Floor           string   `json:"floor"`
	CurrentStudents int      `json:"currentStudents" validate:"min=0"`
	StudentsInfo    string   `json:"studentsInfo"`
	Rent            int      `json:"rent" validate:"required,gt=0"`
	Facilities      []string `json:"facilities"`
	PhoneNumber     string   `json:"phone_number" validate:"required"`
	IsGirlsOnly     bool     `json:"isGirlsOnly"`
}

func (h *ListingHandler) Create(c *fiber.Ctx) error {
	id, err := session.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	var req CreateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
	}

	listing, err := h.service.CreateListing(id.UserID, req.Area, req.FullAddress, req.Floor,
		req.StudentsInfo, req.PhoneNumber, req.CurrentStudents, req.Rent, req.Facilities, req.IsGirlsOnly)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal Server Error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "listing": listing})
}

func (h *ListingHandler) List(c *fiber.Ctx) error {
	listings, err := h.service.ListListings()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Error fetching listings",
		})
	}

	return c.JSON(fiber.Map{"success": true, "listings": listings})
}

func (h *ListingHandler) Delete(c *fiber.Ctx) error {
	id, err := session.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	listingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid listing ID"})
	}

	if err := h.service.DeleteListing(id.UserID, listingID); err != nil {
		switch {
		case errors.Is(err, ErrListingNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: "Listing not found"})
		case errors.Is(err, ErrNotPoster):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized to delete this ad"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Internal Server Error"})
		}
	}

	return c.JSON(fiber.Map{"success": true, "message": "Listing cancelled successfully"})
}
