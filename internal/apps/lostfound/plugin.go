package lostfound

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ridwankhan/campusconnect/internal/config"
	"gorm.io/gorm"
)

type LostFoundPlugin struct{}

func New() *LostFoundPlugin {
	return &LostFoundPlugin{}
}

func (p *LostFoundPlugin) ID() string { return "lostfound" }

func (p *LostFoundPlugin) Models() []interface{} {
	return []interface{}{&LostItem{}}
}

func (p *LostFoundPlugin) RegisterRoutes(_ fiber.Router, protected fiber.Router, db *gorm.DB, _ *config.Config) {
	svc := NewItemService(db)
	h := NewItemHandler(svc)

	protected.Post("/lost-items", h.Create)
	protected.Get("/lost-items", h.List)
	protected.Delete("/lost-items/:id", h.Delete)
}
