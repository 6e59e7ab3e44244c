package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hopyfy/internal/middleware"
	"hopyfy/internal/usecase"
)

type ErrorResponse struct {
	Detail string `json:"detail"`
}

// writeError maps usecase errors to JSON. Anything that is not an
// HTTPError is logged and answered with a generic 500.
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Detail: he.Message})
	}

	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Server error"})
}

func getUserIDFromContext(c echo.Context) (int64, bool) {
	raw := c.Get(middleware.CtxUserIDKey)
	id, ok := raw.(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}
