package usecase

import (
	"context"
	"net/http"
	"time"

	"hopyfy/internal/domain/model"
	repo "hopyfy/internal/repository"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type OrderItemOutput struct {
	ProductID int64  `json:"product"`
	Quantity  int64  `json:"quantity"`
	Price     int64  `json:"price"`
	Size      string `json:"size,omitempty"`
}

type OrderOutput struct {
	ID                int64             `json:"id"`
	UserID            int64             `json:"user"`
	TotalAmount       int64             `json:"total_amount"`
	PaymentMethod     string            `json:"payment_method"`
	Status            string            `json:"status"`
	CreatedAt         time.Time         `json:"created_at"`
	RazorpayOrderID   string            `json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string            `json:"razorpay_payment_id,omitempty"`
	RazorpaySignature string            `json:"razorpay_signature,omitempty"`
	Items             []OrderItemOutput `json:"items"`
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, _, err := r.Orders().ListByUserID(ctx, userID, 1, 50)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

func (u *OrderUsecase) GetMyOrderDetail(ctx context.Context, userID int64, orderID int64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if o.UserID != userID {
			// Other users' orders look nonexistent.
			return NewHTTPError(http.StatusNotFound, "not found")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// Cancel is the user-initiated transition. Allowed only from pending or
// processing; the reserved stock goes back.
func (u *OrderUsecase) Cancel(ctx context.Context, userID int64, orderID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByIDForUpdate(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if o.UserID != userID {
			return NewHTTPError(http.StatusNotFound, "not found")
		}

		if !model.UserCancellableFrom(o.Status) {
			return NewHTTPError(http.StatusBadRequest, "Cannot cancel this order.")
		}

		if err := restockOrderItems(ctx, r, orderID); err != nil {
			return err
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, model.OrderStatusCancelled); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}

func restockOrderItems(ctx context.Context, r repo.TxRepos, orderID int64) error {
	items, err := r.OrderItems().ListByOrderID(ctx, orderID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	for _, it := range items {
		if err := r.Inventory().IncreaseStock(ctx, it.ProductID, it.Quantity); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}
	return nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Size:      it.Size,
		})
	}

	return OrderOutput{
		ID:                o.ID,
		UserID:            o.UserID,
		TotalAmount:       o.TotalAmount,
		PaymentMethod:     string(o.PaymentMethod),
		Status:            string(o.Status),
		CreatedAt:         o.CreatedAt,
		RazorpayOrderID:   o.RazorpayOrderID,
		RazorpayPaymentID: o.RazorpayPaymentID,
		RazorpaySignature: o.RazorpaySignature,
		Items:             outItems,
	}
}
