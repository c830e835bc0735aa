package marketplace

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ridwankhan/campusconnect/internal/config"
	"gorm.io/gorm"
)

type MarketplacePlugin struct{}

func New() *MarketplacePlugin {
	return &MarketplacePlugin{}
}

func (p *MarketplacePlugin) ID() string { return "marketplace" }

func (p *MarketplacePlugin) Models() []interface{} {
	return []interface{}{&Post{}}
}

func (p *MarketplacePlugin) RegisterRoutes(_ fiber.Router, protected fiber.Router, db *gorm.DB, _ *config.Config) {
	svc := NewPostService(db)
	h := NewPostHandler(svc)

	protected.Post("/marketplace", h.Create)
	protected.Get("/marketplace", h.List)
	protected.Get("/marketplace/my-posts", h.MyPosts)
	protected.Get("/marketplace/:id", h.GetByID)
	protected.Delete("/marketplace/:id", h.Delete)
	protected.Put("/marketplace/:id/payment-done", h.MarkPaymentDone)
	protected.Put("/marketplace/:id/confirm-payment", h.ConfirmPayment)
}
