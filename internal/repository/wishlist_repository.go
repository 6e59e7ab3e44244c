package repository

import (
	"context"

	"hopyfy/internal/domain/model"
)

type WishlistRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.WishlistItem, error)
	GetOrCreate(ctx context.Context, userID int64, productID int64) (model.WishlistItem, error)

	// DeleteByUserAndProduct returns ErrNotFound when no row exists.
	DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) error
}
