package repositories

import (
	"context"

	"github.com/emballage/storefront/app/models"
	"gorm.io/gorm"
)

type ProductSizeRepositoryImpl interface {
	GetByProductID(ctx context.Context, productID uint) ([]models.ProductSize, error)
	Create(ctx context.Context, size *models.ProductSize) error
}

type productSizeRepository struct {
	db *gorm.DB
}

func NewProductSizeRepository(db *gorm.DB) ProductSizeRepositoryImpl {
	return &productSizeRepository{db}
}

func (r *productSizeRepository) GetByProductID(ctx context.Context, productID uint) ([]models.ProductSize, error) {
	var sizes []models.ProductSize
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("label ASC").
		Find(&sizes).Error
	return sizes, err
}

func (r *productSizeRepository) Create(ctx context.Context, size *models.ProductSize) error {
	return r.db.WithContext(ctx).Create(size).Error
}
