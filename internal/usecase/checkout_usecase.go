package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"hopyfy/internal/domain/model"
	repo "hopyfy/internal/repository"
)

// CheckoutUsecase turns the mutable cart into an immutable order.
// Everything runs in one transaction: either the order, its items, the
// stock decrements and the cart wipe all commit, or none of them do.
type CheckoutUsecase struct {
	tx repo.TransactionManager
}

func NewCheckoutUsecase(tx repo.TransactionManager) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx}
}

type CheckoutInput struct {
	PaymentMethod string
}

func (u *CheckoutUsecase) Checkout(ctx context.Context, userID int64, in CheckoutInput) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	method := model.PaymentMethod(in.PaymentMethod)
	if method == "" {
		method = model.PaymentMethodCOD
	}
	if method != model.PaymentMethodCOD {
		// The gateway path has its own entry point.
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid payment_method")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// One checkout at a time per user; blocks a concurrent
		// double-submission until this transaction ends.
		if err := r.LockUserCheckout(ctx, userID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cartItems, err := r.CartItems().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(cartItems) == 0 {
			return NewHTTPError(http.StatusBadRequest, "Cart empty")
		}

		orderItems, total, err := reserveCartStock(ctx, r, cartItems)
		if err != nil {
			return err
		}

		now := time.Now()
		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:        userID,
			TotalAmount:   total,
			PaymentMethod: method,
			Status:        model.OrderStatusPending,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if _, err := r.CartItems().ClearByUserID(ctx, userID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(model.Order{
			ID:            orderID,
			UserID:        userID,
			TotalAmount:   total,
			PaymentMethod: method,
			Status:        model.OrderStatusPending,
			CreatedAt:     now,
		}, orderItems)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// reserveCartStock prices each cart line against the live product,
// locks the product row and decrements stock. A short product aborts
// the surrounding transaction with a 400 naming it.
func reserveCartStock(ctx context.Context, r repo.TxRepos, cartItems []model.CartItem) ([]model.OrderItem, int64, error) {
	orderItems := make([]model.OrderItem, 0, len(cartItems))
	var total int64 = 0
	now := time.Now()

	for _, ci := range cartItems {
		p, err := r.Products().FindByIDForUpdate(ctx, ci.ProductID)
		if err == repo.ErrNotFound {
			return nil, 0, NewHTTPError(http.StatusBadRequest, "product unavailable")
		}
		if err != nil {
			return nil, 0, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !p.IsActive {
			return nil, 0, NewHTTPError(http.StatusBadRequest, "product unavailable")
		}

		if p.Stock < ci.Quantity {
			return nil, 0, NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("Insufficient stock for %s", p.Name))
		}

		ok, err := r.Inventory().DecreaseStockIfEnough(ctx, ci.ProductID, ci.Quantity)
		if err != nil {
			return nil, 0, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !ok {
			return nil, 0, NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("Insufficient stock for %s", p.Name))
		}

		orderItems = append(orderItems, model.OrderItem{
			ProductID: ci.ProductID,
			Quantity:  ci.Quantity,
			Price:     p.Price, // snapshot of the live price
			Size:      ci.Size,
			CreatedAt: now,
		})

		total += p.Price * ci.Quantity
	}

	return orderItems, total, nil
}
