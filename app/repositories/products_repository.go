package repositories

import (
	"context"
	"strings"

	"github.com/emballage/storefront/app/models"
	"gorm.io/gorm"
)

type ProductRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByCategoryID(ctx context.Context, categoryID uint) ([]models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	GetSimilar(ctx context.Context, categoryID, excludeID uint, limit int) ([]models.Product, error)
	GetFeatured(ctx context.Context, limit int) ([]models.Product, error)
	SearchByName(ctx context.Context, keyword string) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	CountOutOfStock(ctx context.Context) (int64, error)
	SumStock(ctx context.Context) (int64, error)
	GetLowStock(ctx context.Context, limit int) ([]models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetByCategoryID(ctx context.Context, categoryID uint) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Where("category_id = ?", categoryID).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("Sizes", func(db *gorm.DB) *gorm.DB { return db.Order("label ASC") }).
		Preload("ExtraImages").
		Where("slug = ?", slug).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Preload("ExtraImages").
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetSimilar(ctx context.Context, categoryID, excludeID uint, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Where("category_id = ? AND id <> ?", categoryID, excludeID).
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetFeatured(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (p *productRepository) SearchByName(ctx context.Context, keyword string) ([]models.Product, error) {
	var products []models.Product
	searchKeyword := "%" + strings.ToLower(keyword) + "%"
	err := p.db.WithContext(ctx).
		Preload("Category").
		Where("LOWER(name) LIKE ?", searchKeyword).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Save(product).Error
}

func (p *productRepository) Delete(ctx context.Context, id uint) error {
	return p.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}

func (p *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error
	return count, err
}

func (p *productRepository) CountOutOfStock(ctx context.Context) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("in_stock = ?", false).
		Count(&count).Error
	return count, err
}

func (p *productRepository) SumStock(ctx context.Context) (int64, error) {
	var total int64
	err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("COALESCE(SUM(stock_quantity), 0)").
		Scan(&total).Error
	return total, err
}

func (p *productRepository) GetLowStock(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Order("stock_quantity ASC").
		Limit(limit).
		Find(&products).Error
	return products, err
}
