package fakers

import (
	"github.com/emballage/storefront/app/helpers"
	"github.com/emballage/storefront/app/models"
	"gorm.io/gorm"
)

// AdminUserFaker returns the default staff account used for local
// development. Change the password before any real deployment.
func AdminUserFaker(db *gorm.DB) *models.User {
	return &models.User{
		Email:    "admin@example.com",
		Password: helpers.HashPassword("admin123"),
		Role:     models.RoleAdmin,
	}
}
