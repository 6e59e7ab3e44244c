package repository

import "context"

// Repositories bound to one open transaction.
type TxRepos interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	CartItems() CartItemRepository
	Products() ProductRepository
	Inventory() InventoryRepository
	Audit() AuditLogRepository

	// LockUserCheckout takes an advisory lock scoped to the transaction so
	// that two checkouts for the same user never run concurrently.
	LockUserCheckout(ctx context.Context, userID int64) error
}

// Hides begin/commit/rollback from the usecases.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
