package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hopyfy/internal/metrics"
	"hopyfy/internal/usecase"
)

type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method"`
}

func (h *CheckoutHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/checkout", h.checkout)
}

func (h *CheckoutHandler) checkout(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: "unauthorized"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid body"})
	}

	out, err := h.uc.Checkout(c.Request().Context(), userID, usecase.CheckoutInput{
		PaymentMethod: req.PaymentMethod,
	})
	metrics.RecordOrderOperation("checkout", err == nil)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
