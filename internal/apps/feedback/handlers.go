package feedback

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ridwankhan/campusconnect/internal/dto"
	"github.com/ridwankhan/campusconnect/internal/validation"
)

type CreateFeedbackRequest struct {
	Category string `json:"category" validate:"required,max=50"`
	Title    string `json:"title" validate:"max=150"`
	Message  string `json:"message" validate:"required"`
}

type AddCommentRequest struct {
	Author  string `json:"author" validate:"max=50"`
	Message string `json:"message" validate:"required,min=1,max=500"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
	}

	fb, err := h.service.Create(req.Category, req.Title, req.Message)
	if err != nil {
		if errors.Is(err, ErrMessageTooShort) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Message must be at least 5 characters long"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to submit feedback"})
	}

	return c.Status(fiber.StatusCreated).JSON(fb)
}

func (h *Handler) List(c *fiber.Ctx) error {
	items, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch feedback"})
	}
	return c.JSON(items)
}

func (h *Handler) ListByCategory(c *fiber.Ctx) error {
	items, err := h.service.ListByCategory(c.Params("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch feedback"})
	}
	return c.JSON(items)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid feedback ID"})
	}

	fb, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrFeedbackNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: "Feedback not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch feedback"})
	}
	return c.JSON(fb)
}

func (h *Handler) AddComment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid feedback ID"})
	}

	var req AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
	}

	comment, err := h.service.AddComment(id, req.Author, req.Message)
	if err != nil {
		if errors.Is(err, ErrFeedbackNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: "Feedback not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to add comment"})
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *Handler) DeleteComment(c *fiber.Ctx) error {
	feedbackID, err := uuid.Parse(c.Params("feedbackId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid feedback ID"})
	}
	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid comment ID"})
	}

	if err := h.service.DeleteComment(feedbackID, commentID); err != nil {
		switch {
		case errors.Is(err, ErrFeedbackNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: "Feedback not found"})
		case errors.Is(err, ErrCommentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: "Comment not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to delete comment"})
		}
	}

	return c.JSON(fiber.Map{"message": "Comment deleted"})
}
