package lostfound

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ridwankhan/campusconnect/internal/dto"
	"github.com/ridwankhan/campusconnect/internal/session"
	"github.com/ridwankhan/campusconnect/internal/validation"
)

type ItemHandler struct {
	service *ItemService
}

func NewItemHandler(service *ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

type CreateItemRequest struct {
	Name        string `json:"name" validate:"required,max=150"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date"`
	Location    string `json:"location" validate:"required"`
	PhoneNumber string `json:"phone_number"`
	Image       string `json:"image"`
}

func (h *ItemHandler) Create(c *fiber.Ctx) error {
	id, err := session.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	var req CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
	}

	var date time.Time
	if req.Date != "" {
		if t, perr := time.Parse(time.RFC3339, req.Date); perr == nil {
			date = t
		} else if t, perr := time.Parse("2006-01-02", req.Date); perr == nil {
			date = t
		}
	}

	item, err := h.service.CreateItem(id.UserID, req.Name, req.Description, req.Location, req.PhoneNumber, req.Image, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Lost item reported successfully",
		"item":    item,
	})
}

func (h *ItemHandler) List(c *fiber.Ctx) error {
	items, err := h.service.ListItems()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(fiber.Map{"success": true, "items": items})
}

func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, err := session.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid item ID"})
	}

	if err := h.service.DeleteItem(id.UserID, itemID); err != nil {
		switch {
		case errors.Is(err, ErrItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: "Item not found"})
		case errors.Is(err, ErrNotReporter):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: true, Message: "Not authorized to delete this item"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Internal server error"})
		}
	}

	return c.JSON(fiber.Map{"success": true, "message": "Item removed"})
}
