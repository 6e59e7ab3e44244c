package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"

	// Set only by payment reconciliation, never by admins.
	OrderStatusPaid   OrderStatus = "paid"
	OrderStatusFailed OrderStatus = "failed"
)

type PaymentMethod string

const (
	PaymentMethodCOD      PaymentMethod = "COD"
	PaymentMethodRazorpay PaymentMethod = "RAZORPAY"
)

// AdminAssignableStatus reports whether an admin may set the order to s.
func AdminAssignableStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// UserCancellableFrom reports whether a user may cancel an order in status s.
func UserCancellableFrom(s OrderStatus) bool {
	return s == OrderStatusPending || s == OrderStatusProcessing
}

// Immutable after creation except Status and the razorpay_* fields.
type Order struct {
	ID                int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID            int64         `gorm:"not null;index" json:"user"`
	TotalAmount       int64         `gorm:"not null" json:"total_amount"`
	PaymentMethod     PaymentMethod `gorm:"type:varchar(50);not null;default:'COD'" json:"payment_method"`
	Status            OrderStatus   `gorm:"type:varchar(20);not null;index" json:"status"`
	RazorpayOrderID   string        `gorm:"type:varchar(100)" json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string        `gorm:"type:varchar(100)" json:"razorpay_payment_id,omitempty"`
	RazorpaySignature string        `gorm:"type:varchar(255)" json:"razorpay_signature,omitempty"`
	CreatedAt         time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time     `gorm:"not null;autoUpdateTime" json:"-"`
}
