package chatbot

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ridwankhan/campusconnect/internal/config"
)

type ChatbotPlugin struct{}

func New() *ChatbotPlugin {
	return &ChatbotPlugin{}
}

func (p *ChatbotPlugin) ID() string {
	return "chatbot"
}

func (p *ChatbotPlugin) Models() []interface{} {
	return nil
}

func (p *ChatbotPlugin) RegisterRoutes(public fiber.Router, protected fiber.Router, db *gorm.DB, cfg *config.Config) {
	h := NewHandler(NewService(cfg.ChatbotURL, cfg.ChatbotTimeout))

	protected.Post("/chatbot/query", h.Query)
}
