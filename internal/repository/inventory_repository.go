package repository

import "context"

type InventoryRepository interface {
	// DecreaseStockIfEnough is a conditional decrement: it only succeeds
	// when stock >= qty, so stock can never go negative.
	DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error)

	// IncreaseStock returns reserved stock (cancellation, failed payment).
	IncreaseStock(ctx context.Context, productID int64, qty int64) error
}
