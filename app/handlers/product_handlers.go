package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/emballage/storefront/app/helpers"
	"github.com/emballage/storefront/app/models"
	"github.com/emballage/storefront/app/repositories"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

type ProductHandler struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	sizeRepo     repositories.ProductSizeRepositoryImpl
	render       *render.Render
}

func NewProductHandler(
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	sizeRepo repositories.ProductSizeRepositoryImpl,
	render *render.Render,
) *ProductHandler {
	return &ProductHandler{productRepo, categoryRepo, sizeRepo, render}
}

func (h *ProductHandler) Home(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetFeatured(r.Context(), 8)
	if err != nil {
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		http.Error(w, "Failed to load categories", http.StatusInternalServerError)
		return
	}
	if len(categories) > 6 {
		categories = categories[:6]
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "Emballage",
		"Products":   products,
		"Categories": categories,
	})

	_ = h.render.HTML(w, http.StatusOK, "home", data)
}

// Products lists the catalog, optionally filtered by ?category=<slug>.
// An unknown category slug is a 404; categories are always annotated with
// their product counts, including empty ones.
func (h *ProductHandler) Products(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAllWithProductCounts(r.Context())
	if err != nil {
		http.Error(w, "Failed to load categories", http.StatusInternalServerError)
		return
	}

	var (
		products         []models.Product
		selectedCategory *models.Category
	)

	if categorySlug := r.URL.Query().Get("category"); categorySlug != "" {
		selectedCategory, err = h.categoryRepo.GetBySlug(r.Context(), categorySlug)
		if err != nil {
			http.Error(w, "Failed to load category", http.StatusInternalServerError)
			return
		}
		if selectedCategory == nil {
			http.NotFound(w, r)
			return
		}
		products, err = h.productRepo.GetByCategoryID(r.Context(), selectedCategory.ID)
	} else {
		products, err = h.productRepo.GetAll(r.Context())
	}
	if err != nil {
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":            "Products",
		"Products":         products,
		"Categories":       categories,
		"SelectedCategory": selectedCategory,
	})

	_ = h.render.HTML(w, http.StatusOK, "products/list", data)
}

func (h *ProductHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	product, err := h.productRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}

	similar, err := h.productRepo.GetSimilar(r.Context(), product.CategoryID, product.ID, 4)
	if err != nil {
		http.Error(w, "Failed to load similar products", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":           product.Name,
		"Product":         product,
		"SimilarProducts": similar,
		"Sizes":           resolveSizes(product),
	})

	_ = h.render.HTML(w, http.StatusOK, "products/detail", data)
}

func (h *ProductHandler) ProductSizes(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}

	sizes, err := h.sizeRepo.GetByProductID(r.Context(), product.ID)
	if err != nil {
		http.Error(w, "Failed to load sizes", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":   product.Name,
		"Product": product,
		"Sizes":   sizes,
	})

	_ = h.render.HTML(w, http.StatusOK, "products/sizes", data)
}

// resolveSizes prefers ProductSize rows; products without them fall back to
// the legacy single size field rendered as a one-element list.
func resolveSizes(product *models.Product) []models.ProductSize {
	if len(product.Sizes) > 0 {
		return product.Sizes
	}
	if product.Size != "" {
		return []models.ProductSize{{
			ProductID: product.ID,
			Label:     product.Size,
			Price:     product.Price,
			Stock:     product.StockQuantity,
		}}
	}
	return nil
}
