package fakers

import (
	"github.com/emballage/storefront/app/models"
	"github.com/go-faker/faker/v4"
	"gorm.io/gorm"
)

func CategoryFaker(db *gorm.DB) *models.Category {
	return &models.Category{
		Name:        faker.Word() + " " + faker.Word(),
		Description: faker.Sentence(),
	}
}
