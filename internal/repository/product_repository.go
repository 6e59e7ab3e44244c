package repository

import (
	"context"
	"errors"

	"hopyfy/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

type ProductListQuery struct {
	Page     int
	Limit    int
	Category string
}

type ProductRepository interface {
	ListPublic(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	// FindByIDForUpdate locks the product row for the duration of the
	// surrounding transaction. Checkout uses it before touching stock.
	FindByIDForUpdate(ctx context.Context, id int64) (model.Product, error)
}
