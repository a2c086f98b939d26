package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ficmh/techfest-api/internal/api/http/handlers"
	"github.com/ficmh/techfest-api/internal/auth"
	"github.com/ficmh/techfest-api/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Admins         *handlers.AdminHandler
	Events         *handlers.EventHandler
	Gallery        *handlers.GalleryHandler
	Sponsors       *handlers.SponsorHandler
	Team           *handlers.TeamHandler
	Publications   *handlers.PublicationHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Reads on content resources are public;
// writes require an authenticated admin, and account management beyond
// listing requires the superadmin role.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	adminGroup := app.Group("/admin")
	adminGroup.Post("/login", cfg.Admins.Login)

	adminProtected := adminGroup.Group("", cfg.AuthMiddleware.Handle)
	adminProtected.Get("/getAllAdmins", auth.RequireRole(domain.RoleAdmin, domain.RoleSuperAdmin), cfg.Admins.GetAllAdmins)
	adminProtected.Post("/add-admin", auth.RequireSuperAdmin(), cfg.Admins.AddAdmin)
	adminProtected.Put("/handover-superadmin", auth.RequireSuperAdmin(), cfg.Admins.HandoverSuperAdmin)

	registerContent(app, cfg)
}

func registerContent(app *fiber.App, cfg RouteConfig) {
	editor := func(h fiber.Handler) []fiber.Handler {
		return []fiber.Handler{
			cfg.AuthMiddleware.Handle,
			auth.RequireRole(domain.RoleAdmin, domain.RoleSuperAdmin),
			h,
		}
	}

	events := app.Group("/events")
	events.Get("/", cfg.AuthMiddleware.HandleOptional, cfg.Events.List)
	events.Get("/:id", cfg.Events.Get)
	events.Post("/", editor(cfg.Events.Create)...)
	events.Put("/:id", editor(cfg.Events.Update)...)
	events.Delete("/:id", editor(cfg.Events.Delete)...)

	albums := app.Group("/albums")
	albums.Get("/", cfg.Gallery.List)
	albums.Get("/:id", cfg.Gallery.Get)
	albums.Post("/", editor(cfg.Gallery.Create)...)
	albums.Put("/:id", editor(cfg.Gallery.Update)...)
	albums.Delete("/:id", editor(cfg.Gallery.Delete)...)

	sponsors := app.Group("/sponsors")
	sponsors.Get("/", cfg.Sponsors.List)
	sponsors.Post("/", editor(cfg.Sponsors.Create)...)
	sponsors.Put("/:id", editor(cfg.Sponsors.Update)...)
	sponsors.Delete("/:id", editor(cfg.Sponsors.Delete)...)

	team := app.Group("/team")
	team.Get("/", cfg.Team.List)
	team.Post("/", editor(cfg.Team.Create)...)
	team.Put("/:id", editor(cfg.Team.Update)...)
	team.Delete("/:id", editor(cfg.Team.Delete)...)

	pubs := app.Group("/publications")
	pubs.Get("/", cfg.Publications.List)
	pubs.Get("/:id", cfg.Publications.Get)
	pubs.Post("/", editor(cfg.Publications.Create)...)
	pubs.Put("/:id", editor(cfg.Publications.Update)...)
	pubs.Delete("/:id", editor(cfg.Publications.Delete)...)
}
