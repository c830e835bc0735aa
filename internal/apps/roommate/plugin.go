package roommate

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ridwankhan/campusconnect/internal/config"
	"gorm.io/gorm"
)

type RoommatePlugin struct{}

func New() *RoommatePlugin {
	return &RoommatePlugin{}
}

func (p *RoommatePlugin) ID() string { return "roommate" }

func (p *RoommatePlugin) Models() []interface{} {
	return []interface{}{&Listing{}}
}

func (p *RoommatePlugin) RegisterRoutes(_ fiber.Router, protected fiber.Router, db *gorm.DB, _ *config.Config) {
	svc := NewListingService(db)
	h := NewListingHandler(svc)

	protected.Post("/bookRoom/create", h.Create)
	protected.Get("/bookRoom/all", h.List)
	protected.Delete("/bookRoom/delete/:id", h.Delete)
}
