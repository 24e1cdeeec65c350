package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderItem struct {
	ID        uint    `gorm:"primaryKey"`
	OrderID   uint    `gorm:"not null;index"`
	Order     Order   `gorm:"foreignKey:OrderID"`
	ProductID uint    `gorm:"not null;index"`
	Product   Product `gorm:"foreignKey:ProductID"`
	Quantity  int     `gorm:"not null;default:1"`

	// Price snapshot at order time, insulated from later catalog changes.
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	CreatedAt time.Time
}
