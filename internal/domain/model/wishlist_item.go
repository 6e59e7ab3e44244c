package model

import "time"

type WishlistItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;index;uniqueIndex:idx_wishlist_user_product" json:"user_id"`
	ProductID int64     `gorm:"not null;index;uniqueIndex:idx_wishlist_user_product" json:"product_id"`
	AddedAt   time.Time `gorm:"not null;autoCreateTime" json:"added_at"`
}
