package societies

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ridwankhan/campusconnect/internal/config"
	"github.com/ridwankhan/campusconnect/internal/middleware"
)

type SocietiesPlugin struct{}

func New() *SocietiesPlugin {
	return &SocietiesPlugin{}
}

func (p *SocietiesPlugin) ID() string {
	return "societies"
}

func (p *SocietiesPlugin) Models() []interface{} {
	return []interface{}{&Society{}, &Event{}}
}

func (p *SocietiesPlugin) RegisterRoutes(public fiber.Router, protected fiber.Router, db *gorm.DB, cfg *config.Config) {
	h := NewHandler(NewService(db))
	optional := middleware.IdentityOptional(db, cfg)

	// Reads are public; the single-society view personalizes its flags
	// when a session token happens to be present.
	public.Get("/societies", h.ListSocieties)
	public.Get("/events", h.ListEvents)
	public.Get("/events/:id", h.GetEvent)
	public.Get("/societies/:id", optional, h.GetSociety)

	protected.Post("/societies", h.CreateSociety)
	protected.Put("/societies/:id", h.UpdateSociety)
	protected.Put("/societies/:id/panel", h.UpdatePanel)
	protected.Put("/societies/:id/gallery", h.UpdateGallery)
	protected.Post("/societies/:id/follow", h.ToggleFollow)
	protected.Post("/societies/:id/events", h.CreateEvent)
	protected.Put("/events/:id", h.UpdateEvent)
	protected.Delete("/events/:id", h.DeleteEvent)
	protected.Post("/events/:id/register", h.RegisterForEvent)
}
