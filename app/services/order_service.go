package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/emballage/storefront/app/models"
	"github.com/emballage/storefront/app/repositories"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderPayload is the JSON body of the order capture endpoint. Line items are
// supplied explicitly by the caller and are independent of the live session
// cart (items reference products by slug, the cart keys by numeric ID).
type OrderPayload struct {
	CustomerName    string          `json:"customer_name" validate:"required"`
	CustomerPhone   string          `json:"customer_phone" validate:"required"`
	CustomerEmail   string          `json:"customer_email" validate:"omitempty,email"`
	CustomerCity    string          `json:"customer_city"`
	CustomerAddress string          `json:"customer_address"`
	CustomerNotes   string          `json:"customer_notes"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Items           []OrderLine     `json:"items"`
}

type OrderLine struct {
	Slug     string          `json:"slug"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type OrderService struct {
	db            *gorm.DB
	productRepo   repositories.ProductRepositoryImpl
	orderRepo     repositories.OrderRepositoryImpl
	orderItemRepo repositories.OrderItemRepositoryImpl
}

func NewOrderService(
	db *gorm.DB,
	productRepo repositories.ProductRepositoryImpl,
	orderRepo repositories.OrderRepositoryImpl,
	orderItemRepo repositories.OrderItemRepositoryImpl,
) *OrderService {
	return &OrderService{
		db:            db,
		productRepo:   productRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
	}
}

// Create persists the order and its resolvable line items as one atomic unit.
// The total is stored exactly as submitted. Lines whose slug no longer
// resolves are skipped: the catalog may have changed between cart population
// and checkout, and order placement must not fail because of it.
func (s *OrderService) Create(ctx context.Context, payload *OrderPayload) (*models.Order, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	order := &models.Order{
		CustomerName:    payload.CustomerName,
		CustomerPhone:   payload.CustomerPhone,
		CustomerEmail:   payload.CustomerEmail,
		CustomerCity:    payload.CustomerCity,
		CustomerAddress: payload.CustomerAddress,
		CustomerNotes:   payload.CustomerNotes,
		TotalPrice:      payload.TotalPrice,
	}

	if err := s.orderRepo.Create(ctx, tx, order); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	var items []models.OrderItem
	for _, line := range payload.Items {
		product, err := s.productRepo.GetBySlug(ctx, line.Slug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("Order %d: skipping unresolvable line item %q", order.ID, line.Slug)
				continue
			}
			tx.Rollback()
			return nil, fmt.Errorf("failed to resolve product %q: %w", line.Slug, err)
		}

		qty := line.Quantity
		if qty <= 0 {
			qty = 1
		}

		items = append(items, models.OrderItem{
			OrderID:   order.ID,
			ProductID: product.ID,
			Quantity:  qty,
			Price:     line.Price,
		})
	}

	if err := s.orderItemRepo.BulkCreate(ctx, tx, items); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	return order, nil
}
