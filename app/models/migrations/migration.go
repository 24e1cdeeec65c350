package migrations

import (
	"github.com/emballage/storefront/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ProductSize{},
		&models.ProductImage{},
		&models.Order{},
		&models.OrderItem{},
	)
}
