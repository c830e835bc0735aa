package feedback

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ridwankhan/campusconnect/internal/config"
)

type FeedbackPlugin struct{}

func New() *FeedbackPlugin {
	return &FeedbackPlugin{}
}

func (p *FeedbackPlugin) ID() string {
	return "feedback"
}

func (p *FeedbackPlugin) Models() []interface{} {
	return []interface{}{&Feedback{}, &Comment{}}
}

// Feedback is anonymous, so its submission and read routes are public.
func (p *FeedbackPlugin) RegisterRoutes(public fiber.Router, protected fiber.Router, db *gorm.DB, cfg *config.Config) {
	h := NewHandler(NewService(db))

	public.Post("/feedback", h.Create)
	public.Get("/feedback", h.List)
	public.Get("/feedback/category/:category", h.ListByCategory)
	public.Get("/feedback/:id", h.Get)
	public.Post("/feedback/:id/comments", h.AddComment)
}

func (p *FeedbackPlugin) RegisterAdminRoutes(admin fiber.Router, db *gorm.DB, cfg *config.Config) {
	h := NewHandler(NewService(db))

	admin.Delete("/feedback/:feedbackId/comments/:commentId", h.DeleteComment)
}
