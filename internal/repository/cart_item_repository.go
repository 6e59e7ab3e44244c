package repository

import (
	"context"

	"hopyfy/internal/domain/model"
)

type CartItemRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)

	// Same (user, product) adds to the existing quantity.
	UpsertByUserAndProduct(ctx context.Context, userID int64, productID int64, addQty int64, size string) (model.CartItem, error)

	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error

	// ClearByUserID removes every row for the user and returns how many.
	ClearByUserID(ctx context.Context, userID int64) (int64, error)
}
