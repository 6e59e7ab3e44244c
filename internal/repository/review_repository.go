package repository

import (
	"context"

	"hopyfy/internal/domain/model"
)

type ReviewRepository interface {
	// ListByProductID returns a product's reviews, newest first.
	ListByProductID(ctx context.Context, productID int64) ([]model.Review, error)
	Create(ctx context.Context, review model.Review) (model.Review, error)
}
