package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order captures contact and delivery details for offline fulfillment.
// Orders are immutable after creation except for the IsPaid flag.
type Order struct {
	ID              uint   `gorm:"primaryKey"`
	CustomerName    string `gorm:"size:255;not null"`
	CustomerPhone   string `gorm:"size:50;not null"`
	CustomerEmail   string `gorm:"size:255"`
	CustomerCity    string `gorm:"size:255"`
	CustomerAddress string `gorm:"type:text"`
	CustomerNotes   string `gorm:"type:text"`

	// Persisted exactly as submitted by the client, not recomputed from items.
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);default:0"`
	IsPaid     bool            `gorm:"default:false"`

	OrderItems []OrderItem

	CreatedAt time.Time
}
