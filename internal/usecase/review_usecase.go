package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"hopyfy/internal/domain/model"
	repo "hopyfy/internal/repository"
)

// Product reviews. Reading is public; writing requires a signed-in
// user, who becomes the review's author.
type ReviewUsecase struct {
	reviewRepo  repo.ReviewRepository
	productRepo repo.ProductRepository
}

func NewReviewUsecase(reviewRepo repo.ReviewRepository, productRepo repo.ProductRepository) *ReviewUsecase {
	return &ReviewUsecase{reviewRepo: reviewRepo, productRepo: productRepo}
}

type AddReviewInput struct {
	Rating  int
	Comment string
}

func (u *ReviewUsecase) ListForProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	if productID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if _, err := u.activeProduct(ctx, productID); err != nil {
		return nil, err
	}

	reviews, err := u.reviewRepo.ListByProductID(ctx, productID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	return reviews, nil
}

func (u *ReviewUsecase) AddReview(ctx context.Context, userID int64, productID int64, in AddReviewInput) (model.Review, error) {
	if userID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "Rating must be between 1 and 5")
	}

	comment := strings.TrimSpace(in.Comment)
	if comment == "" {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "Comment required")
	}

	if _, err := u.activeProduct(ctx, productID); err != nil {
		return model.Review{}, err
	}

	review, err := u.reviewRepo.Create(ctx, model.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    in.Rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return review, nil
}

// Hidden products hide their reviews too.
func (u *ReviewUsecase) activeProduct(ctx context.Context, productID int64) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return p, nil
}
