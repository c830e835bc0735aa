package apps

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ridwankhan/campusconnect/internal/config"
	"gorm.io/gorm"
)

// Plugin defines the interface every portal feature must implement.
type Plugin interface {
	// ID returns the unique feature identifier.
	ID() string

	// Models returns the list of GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts feature routes. public has no session middleware;
	// protected verifies the session token and resolves the caller identity.
	RegisterRoutes(public fiber.Router, protected fiber.Router, db *gorm.DB, cfg *config.Config)
}

// AdminPlugin extends Plugin with administrator-only route registration.
type AdminPlugin interface {
	Plugin

	// RegisterAdminRoutes mounts routes on a group with session and
	// administrator middleware applied.
	RegisterAdminRoutes(admin fiber.Router, db *gorm.DB, cfg *config.Config)
}
