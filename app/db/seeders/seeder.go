package seeders

import (
	"github.com/emballage/storefront/app/db/fakers"
	"gorm.io/gorm"
)

const (
	seedCategories          = 4
	seedProductsPerCategory = 5
)

func DBSeed(db *gorm.DB) error {
	admin := fakers.AdminUserFaker(db)
	if err := db.FirstOrCreate(admin, "email = ?", admin.Email).Error; err != nil {
		return err
	}

	for i := 0; i < seedCategories; i++ {
		category := fakers.CategoryFaker(db)
		if err := db.Create(category).Error; err != nil {
			return err
		}

		for j := 0; j < seedProductsPerCategory; j++ {
			product := fakers.ProductFaker(db, category)
			if err := db.Create(product).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
