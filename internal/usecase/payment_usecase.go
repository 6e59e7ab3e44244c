package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"hopyfy/internal/domain/model"
	repo "hopyfy/internal/repository"
)

// GatewayOrder is the payment intent the processor opened for us.
type GatewayOrder struct {
	ID       string
	Amount   int64 // currency subunits (paise)
	Currency string
}

// PaymentGateway is the outbound integration surface. The concrete
// client is built once at startup and injected.
type PaymentGateway interface {
	KeyID() string
	CreateOrder(ctx context.Context, amountPaise int64, receipt string) (GatewayOrder, error)
	VerifySignature(gatewayOrderID string, paymentID string, signature string) bool
}

// PaymentUsecase owns the gateway half of the order pipeline: creating
// a payment intent with stock reserved up front, and reconciling the
// client-submitted confirmation against order state.
type PaymentUsecase struct {
	tx          repo.TransactionManager
	cartRepo    repo.CartItemRepository
	productRepo repo.ProductRepository
	gateway     PaymentGateway
}

func NewPaymentUsecase(
	tx repo.TransactionManager,
	cartRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
	gateway PaymentGateway,
) *PaymentUsecase {
	return &PaymentUsecase{tx: tx, cartRepo: cartRepo, productRepo: productRepo, gateway: gateway}
}

type CreateGatewayOrderOutput struct {
	Key             string `json:"key"`
	RazorpayOrderID string `json:"razorpay_order_id"`
	Amount          int64  `json:"amount"` // paise
	Currency        string `json:"currency"`
	OrderID         int64  `json:"order_id"`
}

// CreateGatewayOrder prices the current cart, opens a payment intent
// for it, then in one transaction reserves stock and materializes the
// local order with its items. The cart survives until the payment is
// verified; a failed verification releases the reservation.
func (u *PaymentUsecase) CreateGatewayOrder(ctx context.Context, userID int64) (CreateGatewayOrderOutput, error) {
	if userID <= 0 {
		return CreateGatewayOrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	// Pre-tx read only to price the intent; the transaction below
	// re-reads the cart under the advisory lock.
	amount, err := u.priceCart(ctx, userID)
	if err != nil {
		return CreateGatewayOrderOutput{}, err
	}

	// The gateway call stays outside the transaction: it is blocking
	// network I/O bounded by the client timeout. An unpaid intent left
	// behind by a later abort simply expires at the processor.
	gw, err := u.gateway.CreateOrder(ctx, amount*100, uuid.NewString())
	if err != nil {
		return CreateGatewayOrderOutput{}, err
	}

	var out CreateGatewayOrderOutput

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.LockUserCheckout(ctx, userID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.CartItems().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(items) == 0 {
			return NewHTTPError(http.StatusBadRequest, "Cart empty")
		}

		orderItems, total, err := reserveCartStock(ctx, r, items)
		if err != nil {
			return err
		}

		// The intent at the gateway was opened for the pre-lock price.
		// If the cart repriced in the gap, abort rather than charge an
		// amount that no longer matches the order.
		if total != amount {
			return NewHTTPError(http.StatusConflict, "Cart changed, restart payment")
		}

		now := time.Now()
		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:          userID,
			TotalAmount:     total,
			PaymentMethod:   model.PaymentMethodRazorpay,
			Status:          model.OrderStatusPending,
			RazorpayOrderID: gw.ID,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = CreateGatewayOrderOutput{
			Key:             u.gateway.KeyID(),
			RazorpayOrderID: gw.ID,
			Amount:          total * 100,
			Currency:        gw.Currency,
			OrderID:         orderID,
		}
		return nil
	})

	if err != nil {
		return CreateGatewayOrderOutput{}, err
	}
	return out, nil
}

type VerifyPaymentInput struct {
	OrderID   int64
	PaymentID string
	Signature string
}

type VerifyPaymentOutput struct {
	Success bool   `json:"success"`
	Detail  string `json:"detail"`
}

// VerifyPayment reconciles the client-submitted confirmation.
// Success: pending -> paid, cart cleared. Signature mismatch:
// pending -> failed, reservation released. Both outcomes commit; any
// other error rolls back and leaves the order untouched.
func (u *PaymentUsecase) VerifyPayment(ctx context.Context, userID int64, in VerifyPaymentInput) (VerifyPaymentOutput, error) {
	if userID <= 0 {
		return VerifyPaymentOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.OrderID <= 0 || in.PaymentID == "" || in.Signature == "" {
		return VerifyPaymentOutput{}, NewHTTPError(http.StatusBadRequest, "Missing payment data")
	}

	var out VerifyPaymentOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByIDForUpdate(ctx, in.OrderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if o.UserID != userID {
			return NewHTTPError(http.StatusNotFound, "Order not found")
		}

		if o.PaymentMethod != model.PaymentMethodRazorpay || o.RazorpayOrderID == "" {
			return NewHTTPError(http.StatusBadRequest, "Order is not a gateway order")
		}
		if o.Status == model.OrderStatusPaid {
			// A confirmation can only be consumed once.
			return NewHTTPError(http.StatusBadRequest, "Order already paid")
		}
		if o.Status != model.OrderStatusPending {
			return NewHTTPError(http.StatusBadRequest, "Order is not payable")
		}

		if !u.gateway.VerifySignature(o.RazorpayOrderID, in.PaymentID, in.Signature) {
			// Tampered or mismatched confirmation: mark failed and
			// release the reservation, then commit.
			if err := r.Orders().UpdateStatus(ctx, o.ID, model.OrderStatusFailed); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if err := restockOrderItems(ctx, r, o.ID); err != nil {
				return err
			}

			out = VerifyPaymentOutput{Success: false, Detail: "Payment verification failed"}
			return nil
		}

		if err := r.Orders().SetGatewayPayment(ctx, o.ID, in.PaymentID, in.Signature, model.OrderStatusPaid); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if _, err := r.CartItems().ClearByUserID(ctx, o.UserID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = VerifyPaymentOutput{Success: true, Detail: "Payment verified"}
		return nil
	})

	if err != nil {
		return VerifyPaymentOutput{}, err
	}
	return out, nil
}

// priceCart computes the cart amount in whole currency units from the
// live product prices. 400 on an empty cart.
func (u *PaymentUsecase) priceCart(ctx context.Context, userID int64) (int64, error) {
	items, err := u.cartRepo.ListByUserID(ctx, userID)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(items) == 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "Cart empty")
	}

	var total int64 = 0
	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if err == repo.ErrNotFound {
			continue
		}
		if err != nil {
			return 0, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		total += p.Price * it.Quantity
	}
	return total, nil
}
