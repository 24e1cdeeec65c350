package repositories_test

import (
	"context"
	"testing"

	"github.com/emballage/storefront/app/models"
	"github.com/emballage/storefront/app/models/migrations"
	"github.com/emballage/storefront/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedProduct(t *testing.T, db *gorm.DB, categoryID uint, name string, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID:    categoryID,
		Name:          name,
		Price:         decimal.NewFromFloat(25.00),
		StockQuantity: stock,
		InStock:       stock > 0,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestProductSearchByNameCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewProductRepository(db)
	category := seedCategory(t, db, "Boîtes")
	seedProduct(t, db, category.ID, "Boîte Kraft 20x20", 5)
	seedProduct(t, db, category.ID, "Sac papier", 5)

	results, err := repo.SearchByName(context.Background(), "KRAFT")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "Boîte Kraft 20x20", results[0].Name)
}

func TestProductGetByCategoryID(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewProductRepository(db)
	boxes := seedCategory(t, db, "Boîtes")
	bags := seedCategory(t, db, "Sacs")
	seedProduct(t, db, boxes.ID, "Boîte Kraft", 5)
	seedProduct(t, db, bags.ID, "Sac papier", 5)
	seedProduct(t, db, bags.ID, "Sac tissu", 5)

	results, err := repo.GetByCategoryID(context.Background(), bags.ID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, p := range results {
		require.Equal(t, bags.ID, p.CategoryID)
	}
}

func TestProductGetSimilarExcludesSelf(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewProductRepository(db)
	category := seedCategory(t, db, "Boîtes")
	self := seedProduct(t, db, category.ID, "Boîte A", 5)
	for _, name := range []string{"Boîte B", "Boîte C", "Boîte D", "Boîte E", "Boîte F"} {
		seedProduct(t, db, category.ID, name, 5)
	}

	similar, err := repo.GetSimilar(context.Background(), category.ID, self.ID, 4)
	require.NoError(t, err)
	require.Len(t, similar, 4)
	for _, p := range similar {
		require.NotEqual(t, self.ID, p.ID)
	}
}

func TestProductGetBySlugNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewProductRepository(db)

	_, err := repo.GetBySlug(context.Background(), "no-such-slug")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProductStockAggregates(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewProductRepository(db)
	category := seedCategory(t, db, "Boîtes")
	seedProduct(t, db, category.ID, "Boîte A", 3)
	seedProduct(t, db, category.ID, "Boîte B", 7)
	seedProduct(t, db, category.ID, "Boîte C", 0)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 3, count)

	outOfStock, err := repo.CountOutOfStock(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, outOfStock)

	total, err := repo.SumStock(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 10, total)
}

func TestProductGetLowStockOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewProductRepository(db)
	category := seedCategory(t, db, "Boîtes")
	seedProduct(t, db, category.ID, "Boîte A", 9)
	seedProduct(t, db, category.ID, "Boîte B", 1)
	seedProduct(t, db, category.ID, "Boîte C", 4)

	low, err := repo.GetLowStock(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, low, 2)
	require.Equal(t, "Boîte B", low[0].Name)
	require.Equal(t, "Boîte C", low[1].Name)
}
