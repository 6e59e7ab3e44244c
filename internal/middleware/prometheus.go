package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"hopyfy/internal/metrics"
)

// Prometheus records request counts and latency per route.
func Prometheus() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			metrics.ObserveHTTPRequest(
				c.Request().Method,
				path,
				strconv.Itoa(status),
				time.Since(start).Seconds(),
			)

			return err
		}
	}
}
