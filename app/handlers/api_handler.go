package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/emballage/storefront/app/models"
	"github.com/emballage/storefront/app/repositories"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

type APIHandler struct {
	productRepo repositories.ProductRepositoryImpl
	render      *render.Render
	appURL      string
}

func NewAPIHandler(productRepo repositories.ProductRepositoryImpl, render *render.Render, appURL string) *APIHandler {
	return &APIHandler{productRepo: productRepo, render: render, appURL: appURL}
}

type apiCategory struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type apiProduct struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Image         *string         `json:"image"`
	Price         decimal.Decimal `json:"price"`
	Description   string          `json:"description"`
	Size          string          `json:"size"`
	StockQuantity int             `json:"stock_quantity"`
	InStock       bool            `json:"in_stock"`
	Category      *apiCategory    `json:"category"`
}

// ProductDetail serves GET /api/products/{slug} as JSON.
func (h *APIHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	product, err := h.productRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
			return
		}
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Internal server error."})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, h.serialize(r, product))
}

func (h *APIHandler) serialize(r *http.Request, product *models.Product) apiProduct {
	out := apiProduct{
		ID:            product.ID,
		Name:          product.Name,
		Slug:          product.Slug,
		Price:         product.Price,
		Description:   product.Description,
		Size:          product.Size,
		StockQuantity: product.StockQuantity,
		InStock:       product.InStock,
	}

	if product.Image != "" {
		url := h.absoluteURL(r, product.Image)
		out.Image = &url
	}

	if product.Category.ID != 0 {
		out.Category = &apiCategory{Name: product.Category.Name, Slug: product.Category.Slug}
	}

	return out
}

func (h *APIHandler) absoluteURL(r *http.Request, path string) string {
	base := h.appURL
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s", scheme, r.Host)
	}
	if len(path) > 0 && path[0] != '/' {
		path = "/" + path
	}
	return base + path
}
