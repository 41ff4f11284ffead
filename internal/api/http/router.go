package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/restaurant-service/internal/api/http/handlers"
	"github.com/spec-kit/restaurant-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Categories *handlers.CategoryHandler
	Menu       *handlers.MenuHandler
	Cart       *handlers.CartHandler
	Orders     *handlers.OrderHandler
	Bookings   *handlers.BookingHandler
	Guard      *auth.SessionGuard
}

// RegisterRoutes wires HTTP routes. Every protected endpoint passes
// through exactly one of the two session guards; handlers never touch
// the raw token.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	requireUser := cfg.Guard.RequireUser()
	requireAdmin := cfg.Guard.RequireAdmin()

	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/admin-login", cfg.Auth.AdminLogin)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/profile", requireUser, cfg.Auth.Profile)
	authGroup.Get("/is-auth", requireUser, cfg.Auth.Profile)

	categoryGroup := app.Group("/api/category")
	categoryGroup.Get("/", cfg.Categories.List)
	categoryGroup.Post("/", requireAdmin, cfg.Categories.Create)
	categoryGroup.Delete("/:id", requireAdmin, cfg.Categories.Delete)

	menuGroup := app.Group("/api/menu")
	menuGroup.Get("/", cfg.Menu.List)
	menuGroup.Post("/", requireAdmin, cfg.Menu.Create)
	menuGroup.Get("/:id", cfg.Menu.Get)
	menuGroup.Put("/:id", requireAdmin, cfg.Menu.Update)
	menuGroup.Delete("/:id", requireAdmin, cfg.Menu.Delete)

	cartGroup := app.Group("/api/cart", requireUser)
	cartGroup.Get("/", cfg.Cart.Get)
	cartGroup.Post("/", cfg.Cart.AddItem)
	cartGroup.Put("/", cfg.Cart.UpdateItem)
	cartGroup.Delete("/", cfg.Cart.Clear)

	orderGroup := app.Group("/api/order")
	orderGroup.Get("/all", requireAdmin, cfg.Orders.ListAll)
	orderGroup.Put("/:id/status", requireAdmin, cfg.Orders.UpdateStatus)
	orderGroup.Post("/", requireUser, cfg.Orders.Place)
	orderGroup.Get("/", requireUser, cfg.Orders.List)
	orderGroup.Get("/:id", requireUser, cfg.Orders.Get)

	bookingGroup := app.Group("/api/booking")
	bookingGroup.Get("/all", requireAdmin, cfg.Bookings.ListAll)
	bookingGroup.Put("/:id/status", requireAdmin, cfg.Bookings.UpdateStatus)
	bookingGroup.Post("/", requireUser, cfg.Bookings.Create)
	bookingGroup.Get("/", requireUser, cfg.Bookings.List)
}
