package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"hopyfy/internal/usecase"
)

type ReviewHandler struct {
	uc *usecase.ReviewUsecase
}

func NewReviewHandler(uc *usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

type AddReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Listing is public and registered alongside the catalog routes.
func (h *ReviewHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/products/:id/reviews", h.list)
}

// Creating needs an authenticated user.
func (h *ReviewHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/products/:id/reviews", h.create)
}

func (h *ReviewHandler) list(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid id"})
	}

	out, err := h.uc.ListForProduct(c.Request().Context(), productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReviewHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: "unauthorized"})
	}

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid id"})
	}

	var req AddReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "invalid body"})
	}

	out, err := h.uc.AddReview(c.Request().Context(), userID, productID, usecase.AddReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}
