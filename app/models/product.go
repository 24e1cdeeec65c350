package models

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          uint     `gorm:"primaryKey"`
	CategoryID  uint     `gorm:"index;not null"`
	Category    Category `gorm:"foreignKey:CategoryID"`
	Name        string   `gorm:"size:255;not null"`
	Slug        string   `gorm:"size:255;not null;uniqueIndex"`
	Description string   `gorm:"type:text"`

	Price    decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	OldPrice *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Currency string           `gorm:"size:10;default:'MAD'"`

	// Legacy single size kept for products without ProductSize rows.
	Size string `gorm:"size:10"`

	StockQuantity int  `gorm:"not null;default:0"`
	InStock       bool `gorm:"default:true"`

	Image  string `gorm:"size:255"`
	Image2 string `gorm:"size:255"`
	Image3 string `gorm:"size:255"`

	Sizes       []ProductSize
	ExtraImages []ProductImage

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate derives the slug from the name once. The slug is never
// re-derived on rename.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.Slug != "" {
		return nil
	}

	base := slug.Make(p.Name)
	if base == "" {
		base = "product"
	}

	candidate := base
	for suffix := 1; ; suffix++ {
		var count int64
		if err := tx.Model(&Product{}).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			break
		}
		candidate = fmt.Sprintf("%s-%d", base, suffix)
	}

	p.Slug = candidate
	return nil
}

// BeforeSave forces InStock off when the stock runs out. A manual InStock
// override stays untouched while StockQuantity > 0.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.StockQuantity == 0 {
		p.InStock = false
	}
	return nil
}

// DiscountPercentage returns the integer percent saved against OldPrice,
// or 0 when there is no active discount.
func (p *Product) DiscountPercentage() int {
	if p.OldPrice == nil || !p.OldPrice.GreaterThan(p.Price) {
		return 0
	}
	diff := p.OldPrice.Sub(p.Price)
	return int(diff.Div(*p.OldPrice).Mul(decimal.NewFromInt(100)).IntPart())
}

type ProductSize struct {
	ID        uint     `gorm:"primaryKey"`
	ProductID uint     `gorm:"not null;index;uniqueIndex:idx_product_label"`
	Product   *Product `gorm:"foreignKey:ProductID"`
	Label     string   `gorm:"size:64;not null;uniqueIndex:idx_product_label"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock     int             `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
