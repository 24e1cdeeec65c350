package services

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/emballage/storefront/app/models"
	"github.com/emballage/storefront/app/repositories"
	"github.com/emballage/storefront/app/utils/sessions"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

// CartService owns the session cart: a map of product ID to quantity and
// price snapshot, stored in the visitor's cookie session. The snapshot taken
// at add time is authoritative for totals; live catalog prices never leak
// into an open cart.
type CartService struct {
	productRepo repositories.ProductRepositoryImpl
	session     sessions.Store
}

func NewCartService(productRepo repositories.ProductRepositoryImpl, session sessions.Store) *CartService {
	return &CartService{productRepo: productRepo, session: session}
}

// CartViewItem is one resolved line of the cart page.
type CartViewItem struct {
	Product  models.Product
	Quantity int
	Price    decimal.Decimal
	Subtotal decimal.Decimal
}

type CartView struct {
	Items []CartViewItem
	Total decimal.Decimal
}

// Add resolves the product by slug and adds qty to the cart. Quantities at or
// below zero are treated as 1. An existing entry accumulates quantity and
// keeps its original price snapshot.
func (s *CartService) Add(ctx context.Context, w http.ResponseWriter, r *http.Request, slug string, qty int) error {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if qty <= 0 {
		qty = 1
	}

	cart := s.session.Cart(r)
	pid := strconv.FormatUint(uint64(product.ID), 10)

	if entry, ok := cart[pid]; ok {
		entry.Quantity += qty
		cart[pid] = entry
	} else {
		cart[pid] = models.CartEntry{
			Name:     product.Name,
			Slug:     product.Slug,
			Price:    product.Price,
			Quantity: qty,
			Image:    product.Image,
		}
	}

	return s.session.SaveCart(w, r, cart)
}

// Update replaces the quantity for productID. A quantity at or below zero
// removes the entry; an unknown productID is a no-op.
func (s *CartService) Update(w http.ResponseWriter, r *http.Request, productID string, qty int) error {
	cart := s.session.Cart(r)

	if entry, ok := cart[productID]; ok {
		if qty <= 0 {
			delete(cart, productID)
		} else {
			entry.Quantity = qty
			cart[productID] = entry
		}
	}

	return s.session.SaveCart(w, r, cart)
}

// Remove deletes the entry if present; otherwise a no-op.
func (s *CartService) Remove(w http.ResponseWriter, r *http.Request, productID string) error {
	cart := s.session.Cart(r)
	delete(cart, productID)
	return s.session.SaveCart(w, r, cart)
}

func (s *CartService) Clear(w http.ResponseWriter, r *http.Request) error {
	return s.session.ClearCart(w, r)
}

// View resolves every entry against the live catalog. Entries whose product
// no longer exists are dropped from the session and excluded from the result,
// so a second view yields the same pruned cart. Subtotals use the stored
// snapshot price, never the live one.
func (s *CartService) View(ctx context.Context, w http.ResponseWriter, r *http.Request) (*CartView, error) {
	cart := s.session.Cart(r)

	view := &CartView{Total: decimal.Zero}
	var toDelete []string

	for pid, entry := range cart {
		id, err := strconv.ParseUint(pid, 10, 64)
		if err != nil {
			toDelete = append(toDelete, pid)
			continue
		}

		product, err := s.productRepo.GetByID(ctx, uint(id))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				toDelete = append(toDelete, pid)
				continue
			}
			return nil, err
		}

		qty := entry.Quantity
		if qty < 0 {
			qty = 0
		}
		subtotal := entry.Price.Mul(decimal.NewFromInt(int64(qty)))

		view.Items = append(view.Items, CartViewItem{
			Product:  *product,
			Quantity: qty,
			Price:    entry.Price,
			Subtotal: subtotal,
		})
		view.Total = view.Total.Add(subtotal)
	}

	if len(toDelete) > 0 {
		for _, pid := range toDelete {
			delete(cart, pid)
		}
		if err := s.session.SaveCart(w, r, cart); err != nil {
			return nil, err
		}
	}

	sort.Slice(view.Items, func(i, j int) bool {
		return view.Items[i].Product.ID < view.Items[j].Product.ID
	})

	return view, nil
}

// Count returns the total quantity held in the session cart.
func (s *CartService) Count(r *http.Request) int {
	return s.session.Cart(r).Count()
}
