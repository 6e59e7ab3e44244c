package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hopyfy/internal/config"
	"hopyfy/internal/handler"
	"hopyfy/internal/middleware"
)

type Handlers struct {
	Product    *handler.ProductHandler
	Review     *handler.ReviewHandler
	Cart       *handler.CartHandler
	Wishlist   *handler.WishlistHandler
	Checkout   *handler.CheckoutHandler
	Payment    *handler.PaymentHandler
	Order      *handler.OrderHandler
	AdminOrder *handler.AdminOrderHandler
	Auth       *handler.AuthHandler
}

func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Clients may call /api/cart/ or /api/cart; both hit the same route.
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.Prometheus())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	registerRoutes(e, cfg, h)

	return e
}

func Start(e *echo.Echo, port string) error {
	return e.Start(":" + port)
}
