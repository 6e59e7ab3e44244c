package model

import (
	"time"

	"gorm.io/gorm"
)

// Price is stored in whole currency units (rupees). The gateway
// receives price * 100 (paise).
type Product struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"type:varchar(200);not null" json:"name"`
	Brand       string         `gorm:"type:varchar(100)" json:"brand"`
	Description string         `gorm:"type:text" json:"description"`
	Price       int64          `gorm:"not null" json:"price"`
	Stock       int64          `gorm:"not null" json:"stock"`
	IsActive    bool           `gorm:"not null;default:true" json:"is_active"`
	CategoryID  int64          `gorm:"index" json:"category"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime" json:"-"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
