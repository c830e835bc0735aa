package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/ridwankhan/campusconnect/internal/apps"
	"github.com/ridwankhan/campusconnect/internal/config"
	"github.com/ridwankhan/campusconnect/internal/handlers"
	"github.com/ridwankhan/campusconnect/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	adminHandler *handlers.AdminHandler,
	plugins []apps.Plugin,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/google", authHandler.GoogleSignIn)
	auth.Post("/administrator", authHandler.AdministratorSignIn)

	// Session-bound auth endpoints sit outside the stricter limiter.
	jwtGuard := middleware.JWTProtected(cfg)
	identityGuard := middleware.IdentityRequired(db)
	api.Get("/auth/me", jwtGuard, identityGuard, authHandler.Me)
	api.Put("/auth/profile", jwtGuard, identityGuard, authHandler.UpdateProfile)
	api.Post("/auth/logout", jwtGuard, identityGuard, authHandler.Logout)

	admin := api.Group("/admin", jwtGuard, identityGuard, middleware.AdminRequired(db, cfg))
	admin.Get("/overview", adminHandler.Overview)

	// Plugins register public routes on the bare API group and
	// session-guarded routes on the protected group.
	protected := api.Group("", jwtGuard, identityGuard)
	for _, p := range plugins {
		p.RegisterRoutes(api, protected, db, cfg)
		if ap, ok := p.(apps.AdminPlugin); ok {
			ap.RegisterAdminRoutes(admin, db, cfg)
		}
	}
}
