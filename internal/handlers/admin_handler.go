package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ridwankhan/campusconnect/internal/dto"
	"gorm.io/gorm"
)

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// Overview returns per-feature row counts for the administrator dashboard.
func (h *AdminHandler) Overview(c *fiber.Ctx) error {
	tables := map[string]string{
		"users":             "users",
		"donors":            "donor_records",
		"blood_requests":    "blood_requests",
		"roommate_listings": "roommate_listings",
		"marketplace_posts": "marketplace_posts",
		"lost_items":        "lost_items",
		"feedbacks":         "feedbacks",
		"societies":         "societies",
		"events":            "events",
	}

	counts := make(map[string]int64, len(tables))
	for name, table := range tables {
		var n int64
		if err := h.db.Table(table).Count(&n).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to build overview",
			})
		}
		counts[name] = n
	}

	return c.JSON(fiber.Map{"success": true, "counts": counts})
}
