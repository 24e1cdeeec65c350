package models

import "time"

// ProductImage stores secondary images uploaded from the admin panel,
// on top of the three image slots on Product itself.
type ProductImage struct {
	ID        uint     `gorm:"primaryKey"`
	ProductID uint     `gorm:"not null;index"`
	Product   *Product `gorm:"foreignKey:ProductID"`
	Path      string   `gorm:"size:255;not null"`
	Alt       string   `gorm:"size:255"`
	CreatedAt time.Time
}
