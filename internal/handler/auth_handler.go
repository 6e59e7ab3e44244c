package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hopyfy/internal/usecase"
)

type AuthHandler struct {
	resetUc *usecase.PasswordResetUsecase
}

func NewAuthHandler(resetUc *usecase.PasswordResetUsecase) *AuthHandler {
	return &AuthHandler{resetUc: resetUc}
}

func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/password-reset", h.requestReset)
	g.POST("/password-reset-confirm", h.confirmReset)
}

type passwordResetRequest struct {
	Email string `json:"email"`
}

func (h *AuthHandler) requestReset(c echo.Context) error {
	var req passwordResetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid request body"})
	}

	if err := h.resetUc.Request(c.Request().Context(), req.Email); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"detail": "If the account exists, a reset code has been sent."})
}

type passwordResetConfirmRequest struct {
	Email    string `json:"email"`
	OTP      string `json:"otp"`
	Password string `json:"password"`
}

func (h *AuthHandler) confirmReset(c echo.Context) error {
	var req passwordResetConfirmRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid request body"})
	}

	err := h.resetUc.Confirm(c.Request().Context(), usecase.ConfirmResetInput{
		Email:    req.Email,
		OTP:      req.OTP,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"detail": "Password has been reset."})
}
