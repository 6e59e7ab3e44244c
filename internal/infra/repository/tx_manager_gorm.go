package repository

import (
	"context"

	"gorm.io/gorm"

	repo "hopyfy/internal/repository"
)

type txReposGorm struct {
	tx *gorm.DB

	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	cartItems  repo.CartItemRepository
	products   repo.ProductRepository
	inventory  repo.InventoryRepository
	audit      repo.AuditLogRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository         { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *txReposGorm) CartItems() repo.CartItemRepository   { return r.cartItems }
func (r *txReposGorm) Products() repo.ProductRepository     { return r.products }
func (r *txReposGorm) Inventory() repo.InventoryRepository  { return r.inventory }
func (r *txReposGorm) Audit() repo.AuditLogRepository       { return r.audit }

// Transaction-scoped advisory lock keyed on the user id. Released
// automatically at commit/rollback.
func (r *txReposGorm) LockUserCheckout(ctx context.Context, userID int64) error {
	return r.tx.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?)", userID).Error
}

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := &txReposGorm{
			tx:         tx,
			orders:     NewOrderGormRepository(tx),
			orderItems: NewOrderItemGormRepository(tx),
			cartItems:  NewCartGormRepository(tx),
			products:   NewProductGormRepository(tx),
			inventory:  NewInventoryGormRepository(tx),
			audit:      NewAuditLogGormRepository(tx),
		}
		return fn(r)
	})
}
