package fakers

import (
	"math"
	"math/rand"

	"github.com/emballage/storefront/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func ProductFaker(db *gorm.DB, category *models.Category) *models.Product {
	stock := rand.Intn(20)

	product := &models.Product{
		CategoryID:    category.ID,
		Name:          faker.Word() + " " + faker.Word(),
		Description:   faker.Paragraph(),
		Price:         decimal.NewFromFloat(fakePrice()),
		Currency:      "MAD",
		StockQuantity: stock,
		InStock:       stock > 0,
		Image:         "/uploads/products/sample.jpg",
	}

	if rand.Intn(3) == 0 {
		oldPrice := product.Price.Mul(decimal.NewFromFloat(1.25)).Round(2)
		product.OldPrice = &oldPrice
	}

	return product
}

func fakePrice() float64 {
	return precision(10+rand.Float64()*490, 2)
}

func precision(val float64, pre int) float64 {
	a := math.Pow10(pre)
	return float64(int(val*a)) / a
}
