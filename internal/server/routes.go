package server

import (
	"github.com/labstack/echo/v4"

	"hopyfy/internal/config"
	"hopyfy/internal/middleware"
)

func registerRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	api := e.Group("/api")

	// Catalog and review reads are public.
	h.Product.RegisterRoutes(api)
	h.Review.RegisterPublicRoutes(api)

	// Everything else under /api requires a valid access token.
	authed := api.Group("", middleware.AuthJWT(cfg))
	h.Review.RegisterRoutes(authed)
	h.Cart.RegisterRoutes(authed)
	h.Wishlist.RegisterRoutes(authed)
	h.Checkout.RegisterRoutes(authed)
	h.Payment.RegisterRoutes(authed)
	h.Order.RegisterRoutes(authed)

	admin := authed.Group("/admin", middleware.AdminRoleGuard())
	h.AdminOrder.RegisterRoutes(admin)

	auth := e.Group("/auth")
	h.Auth.RegisterRoutes(auth)
}
