package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hopyfy/internal/metrics"
	"hopyfy/internal/usecase"
)

type PaymentHandler struct {
	uc *usecase.PaymentUsecase
}

func NewPaymentHandler(uc *usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

type VerifyPaymentRequest struct {
	OrderID           int64  `json:"order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

func (h *PaymentHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/razorpay/order", h.createOrder)
	g.POST("/razorpay/verify-payment", h.verifyPayment)
}

func (h *PaymentHandler) createOrder(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: "unauthorized"})
	}

	out, err := h.uc.CreateGatewayOrder(c.Request().Context(), userID)
	metrics.RecordOrderOperation("gateway_order", err == nil)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *PaymentHandler) verifyPayment(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: "unauthorized"})
	}

	var req VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid body"})
	}

	out, err := h.uc.VerifyPayment(c.Request().Context(), userID, usecase.VerifyPaymentInput{
		OrderID:   req.OrderID,
		PaymentID: req.RazorpayPaymentID,
		Signature: req.RazorpaySignature,
	})
	metrics.RecordOrderOperation("verify_payment", err == nil && out.Success)
	if err != nil {
		if he, ok := usecase.AsHTTPError(err); ok {
			return c.JSON(he.Status, usecase.VerifyPaymentOutput{
				Success: false,
				Detail:  he.Message,
			})
		}
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, usecase.VerifyPaymentOutput{
			Success: false,
			Detail:  "Server error",
		})
	}

	if !out.Success {
		return c.JSON(http.StatusBadRequest, out)
	}
	return c.JSON(http.StatusOK, out)
}
