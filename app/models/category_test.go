package models_test

import (
	"testing"

	"github.com/emballage/storefront/app/models"
	"github.com/emballage/storefront/app/models/migrations"
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

func TestCategorySlugDerivedFromName(t *testing.T) {
	db := newTestDB(t)

	category := &models.Category{Name: "Boîtes"}
	require.NoError(t, db.Create(category).Error)

	require.Equal(t, "boites", category.Slug)
}

func TestCategorySlugCollisionGetsNumericSuffix(t *testing.T) {
	db := newTestDB(t)

	first := &models.Category{Name: "Boîtes"}
	require.NoError(t, db.Create(first).Error)

	// Different name, same derived slug.
	second := &models.Category{Name: "Boites "}
	require.NoError(t, db.Create(second).Error)

	third := &models.Category{Name: "boites"}
	require.NoError(t, db.Create(third).Error)

	require.Equal(t, "boites", first.Slug)
	require.Equal(t, "boites-1", second.Slug)
	require.Equal(t, "boites-2", third.Slug)
}

func TestCategoryExplicitSlugKept(t *testing.T) {
	db := newTestDB(t)

	category := &models.Category{Name: "Sachets", Slug: "custom-slug"}
	require.NoError(t, db.Create(category).Error)

	require.Equal(t, "custom-slug", category.Slug)
}
