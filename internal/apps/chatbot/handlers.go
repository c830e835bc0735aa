package chatbot

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ridwankhan/campusconnect/internal/dto"
	"github.com/ridwankhan/campusconnect/internal/validation"
)

type QueryRequest struct {
	Question string `json:"question" validate:"required,max=1000"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Query(c *fiber.Ctx) error {
	var req QueryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
	}

	answer, err := h.service.Ask(req.Question)
	if err != nil {
		if errors.Is(err, ErrUpstream) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Error: true, Message: "The assistant is unavailable right now. Please try again later."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to query the assistant"})
	}

	return c.JSON(answer)
}
