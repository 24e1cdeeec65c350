package models_test

import (
	"testing"

	"github.com/emballage/storefront/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestProductZeroStockForcesOutOfStock(t *testing.T) {
	db := newTestDB(t)

	category := &models.Category{Name: "Boîtes"}
	require.NoError(t, db.Create(category).Error)

	product := &models.Product{
		CategoryID:    category.ID,
		Name:          "Boîte carton 20x20",
		Price:         decimal.NewFromFloat(12.50),
		StockQuantity: 0,
		InStock:       true,
	}
	require.NoError(t, db.Create(product).Error)

	require.False(t, product.InStock)
}

func TestProductManualInStockOverrideKeptWhileStocked(t *testing.T) {
	db := newTestDB(t)

	category := &models.Category{Name: "Boîtes"}
	require.NoError(t, db.Create(category).Error)

	product := &models.Product{
		CategoryID:    category.ID,
		Name:          "Boîte carton 30x30",
		Price:         decimal.NewFromFloat(19.90),
		StockQuantity: 5,
		InStock:       false,
	}
	require.NoError(t, db.Create(product).Error)

	require.False(t, product.InStock)

	product.InStock = true
	require.NoError(t, db.Save(product).Error)
	require.True(t, product.InStock)
}

func TestProductSlugNotRederivedOnRename(t *testing.T) {
	db := newTestDB(t)

	category := &models.Category{Name: "Boîtes"}
	require.NoError(t, db.Create(category).Error)

	product := &models.Product{
		CategoryID:    category.ID,
		Name:          "Boîte carton",
		Price:         decimal.NewFromFloat(9.99),
		StockQuantity: 3,
	}
	require.NoError(t, db.Create(product).Error)
	require.Equal(t, "boite-carton", product.Slug)

	product.Name = "Boîte carton renforcée"
	require.NoError(t, db.Save(product).Error)

	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	require.Equal(t, "boite-carton", reloaded.Slug)
}

func TestProductDiscountPercentage(t *testing.T) {
	oldPrice := decimal.NewFromInt(100)
	product := &models.Product{
		Price:    decimal.NewFromInt(75),
		OldPrice: &oldPrice,
	}
	require.Equal(t, 25, product.DiscountPercentage())

	product.OldPrice = nil
	require.Equal(t, 0, product.DiscountPercentage())

	lower := decimal.NewFromInt(50)
	product.OldPrice = &lower
	require.Equal(t, 0, product.DiscountPercentage())
}
