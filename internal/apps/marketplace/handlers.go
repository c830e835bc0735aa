package marketplace

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ridwankhan/campusconnect/internal/dto"
	"github.com/ridwankhan/campusconnect/internal/session"
	"github.com/ridwankhan/campusconnect/internal/validation"
)

type PostHandler struct {
	service *PostService
}

func NewPostHandler(service *PostService) *PostHandler {
	return &PostHandler{service: service}
}

type CreatePostRequest struct {
	Title       string   `json:"title" validate:"required,max=150"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Images      []string `json:"images"`
	Location    string   `json:"location" validate:"required"`
	Price       int      `json:"price" validate:"required,gt=0"`
	PhoneNumber string   `json:"phone_number" validate:"required"`
}

func (h *PostHandler) Create(c *fiber.Ctx) error {
	id, err := session.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	var req CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Please provide all required fields",
		})
	}

	post, err := h.service.CreatePost(id.UserID, id.Name, req.Title, req.Category,
		req.Description, req.Location, req.PhoneNumber, req.Price, req.Images)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Server error creating post",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "post": post})
}

func (h *PostHandler) List(c *fiber.Ctx) error {
	posts, err := h.service.ListPosts(c.Query("search"), c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Server error fetching posts",
		})
	}

	return c.JSON(fiber.Map{"success": true, "posts": posts})
}

func (h *PostHandler) MyPosts(c *fiber.Ctx) error {
	id, err := session.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	posts, err := h.service.MyPosts(id.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Server error fetching your posts",
		})
	}

	return c.JSON(fiber.Map{"success": true, "posts": posts})
}

func (h *PostHandler) GetByID(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid post ID"})
	}

	post, err := h.service.GetPost(postID)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: "Post not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Server error fetching post",
		})
	}

	return c.JSON(fiber.Map{"success": true, "post": post})
}

func (h *PostHandler) Delete(c *fiber.Ctx) error {
	id, err := session.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid post ID"})
	}

	if err := h.service.DeletePost(id.UserID, postID); err != nil {
		switch {
		case errors.Is(err, ErrPostNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: "Post not found"})
		case errors.Is(err, ErrNotSeller):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: true, Message: "Not authorized to delete this post"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Server error deleting post"})
		}
	}

	return c.JSON(fiber.Map{"success": true, "message": "Post removed"})
}

func (h *PostHandler) MarkPaymentDone(c *fiber.Ctx) error {
	id, err := session.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid post ID"})
	}

	post, err := h.service.MarkPaymentDone(id.UserID, id.Name, postID)
	if err != nil {
		switch {
		case errors.Is(err, ErrPostNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: "Post not found"})
		case errors.Is(err, ErrOwnItem):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "You cannot buy your own item"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Server error updating payment status"})
		}
	}

	return c.JSON(fiber.Map{"success": true, "post": post})
}

func (h *PostHandler) ConfirmPayment(c *fiber.Ctx) error {
	id, err := session.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid post ID"})
	}

	if err := h.service.ConfirmPayment(id.UserID, postID); err != nil {
		switch {
		case errors.Is(err, ErrPostNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: "Post not found"})
		case errors.Is(err, ErrNotSeller):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: true, Message: "Not authorized to confirm payment for this post"})
		case errors.Is(err, ErrPaymentNotMarked):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Payment must be marked as done by buyer first"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Server error confirming payment"})
		}
	}

	return c.JSON(fiber.Map{"success": true, "message": "Payment confirmed and post removed"})
}
