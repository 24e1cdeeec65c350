package repositories

import (
	"context"

	"github.com/emballage/storefront/app/models"
	"gorm.io/gorm"
)

type ProductImageRepositoryImpl interface {
	Create(ctx context.Context, image *models.ProductImage) error
	GetByProductID(ctx context.Context, productID uint) ([]models.ProductImage, error)
	DeleteByProductID(ctx context.Context, productID uint) error
}

type productImageRepository struct {
	db *gorm.DB
}

func NewProductImageRepository(db *gorm.DB) ProductImageRepositoryImpl {
	return &productImageRepository{db}
}

func (r *productImageRepository) Create(ctx context.Context, image *models.ProductImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *productImageRepository) GetByProductID(ctx context.Context, productID uint) ([]models.ProductImage, error) {
	var images []models.ProductImage
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).Find(&images).Error
	return images, err
}

func (r *productImageRepository) DeleteByProductID(ctx context.Context, productID uint) error {
	return r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.ProductImage{}).Error
}
