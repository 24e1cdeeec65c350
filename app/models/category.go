package models

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null;uniqueIndex"`
	Slug        string `gorm:"size:150;not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	Image       string `gorm:"size:255"`
	Products    []Product
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryWithCount carries a category plus its product count for listing
// pages. Counts are produced by the repository, not stored.
type CategoryWithCount struct {
	Category
	ProductCount int64
}

// BeforeCreate populates the slug when blank. Collisions are resolved with
// the lowest unused numeric suffix (boites, boites-1, boites-2, ...).
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.Slug != "" {
		return nil
	}

	base := slug.Make(c.Name)
	if base == "" {
		base = "category"
	}

	candidate := base
	for suffix := 1; ; suffix++ {
		var count int64
		if err := tx.Model(&Category{}).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			break
		}
		candidate = fmt.Sprintf("%s-%d", base, suffix)
	}

	c.Slug = candidate
	return nil
}
