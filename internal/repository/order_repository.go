package repository

import (
	"context"
	"time"

	"hopyfy/internal/domain/model"
)

type AdminOrderListFilter struct {
	Page   int
	Limit  int
	Status string
	UserID *int64
	From   *time.Time
	To     *time.Time
}

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	// FindByIDForUpdate locks the order row so that concurrent payment
	// verifications on the same order serialize.
	FindByIDForUpdate(ctx context.Context, orderID int64) (model.Order, error)

	ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Order, int64, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	// SetGatewayPayment persists the verified payment id and signature
	// together with the resulting status.
	SetGatewayPayment(ctx context.Context, orderID int64, paymentID string, signature string, status model.OrderStatus) error

	ListAdmin(ctx context.Context, f AdminOrderListFilter) ([]model.Order, int64, error)
}
