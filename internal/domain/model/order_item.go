package model

import "time"

// Price is a snapshot of the product price at order creation.
// Later catalog price changes never alter historical orders.
type OrderItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64     `gorm:"not null;index" json:"order_id"`
	ProductID int64     `gorm:"not null;index" json:"product"`
	Quantity  int64     `gorm:"not null;default:1" json:"quantity"`
	Price     int64     `gorm:"not null" json:"price"`
	Size      string    `gorm:"type:varchar(20)" json:"size"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
}
