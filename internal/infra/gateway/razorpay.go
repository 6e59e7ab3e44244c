package gateway

import (
	"context"
	"fmt"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"

	"hopyfy/internal/usecase"
)

// RazorpayGateway wraps the razorpay client behind usecase.PaymentGateway.
// Constructed once at startup and injected; the client timeout bounds
// the blocking order-create call.
type RazorpayGateway struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
}

func NewRazorpayGateway(keyID string, keySecret string, timeout time.Duration) *RazorpayGateway {
	client := razorpay.NewClient(keyID, keySecret)
	client.SetTimeout(int16(timeout / time.Second))

	return &RazorpayGateway{
		client:    client,
		keyID:     keyID,
		keySecret: keySecret,
	}
}

func (g *RazorpayGateway) KeyID() string {
	return g.keyID
}

// CreateOrder opens a payment intent for amountPaise (currency subunits).
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amountPaise int64, receipt string) (usecase.GatewayOrder, error) {
	data := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        "INR",
		"receipt":         receipt,
		"payment_capture": 1,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return usecase.GatewayOrder{}, fmt.Errorf("razorpay order create: %w", err)
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return usecase.GatewayOrder{}, fmt.Errorf("razorpay order create: missing id in response")
	}

	return usecase.GatewayOrder{
		ID:       id,
		Amount:   amountPaise,
		Currency: "INR",
	}, nil
}

// VerifySignature checks the HMAC the client submitted after paying.
func (g *RazorpayGateway) VerifySignature(gatewayOrderID string, paymentID string, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   gatewayOrderID,
		"razorpay_payment_id": paymentID,
	}
	return utils.VerifyPaymentSignature(params, signature, g.keySecret)
}
