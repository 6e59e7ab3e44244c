package model

import "time"

// One row per (user, product). Adding the same product again
// increments Quantity. No price snapshot is kept here: checkout
// prices against the live product.
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;index;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID int64     `gorm:"not null;index;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  int64     `gorm:"not null;default:1" json:"quantity"`
	Size      string    `gorm:"type:varchar(20)" json:"size"`
	AddedAt   time.Time `gorm:"not null;autoCreateTime" json:"added_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
