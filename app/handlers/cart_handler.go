package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/emballage/storefront/app/helpers"
	"github.com/emballage/storefront/app/repositories"
	"github.com/emballage/storefront/app/services"
	"github.com/unrolled/render"
)

type CartHandler struct {
	cartSvc     *services.CartService
	productRepo repositories.ProductRepositoryImpl
	render      *render.Render
}

func NewCartHandler(cartSvc *services.CartService, productRepo repositories.ProductRepositoryImpl, render *render.Render) *CartHandler {
	return &CartHandler{cartSvc: cartSvc, productRepo: productRepo, render: render}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.cartSvc.View(r.Context(), w, r)
	if err != nil {
		http.Error(w, "Failed to load cart", http.StatusInternalServerError)
		return
	}

	// A few suggestions under the cart contents.
	suggestions, err := h.productRepo.GetFeatured(r.Context(), 6)
	if err != nil {
		log.Printf("GetCart: failed to load suggestions: %v", err)
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":     "Cart",
		"CartItems": view.Items,
		"CartTotal": view.Total,
		"Products":  suggestions,
	})

	_ = h.render.HTML(w, http.StatusOK, "cart", data)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to read form", http.StatusBadRequest)
		return
	}

	slug := r.FormValue("slug")
	if slug == "" {
		redirectToCart(w, r, "error", "Missing product.")
		return
	}

	// Invalid quantities fall back to 1 rather than erroring.
	qty, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		qty = 1
	}

	if err := h.cartSvc.Add(r.Context(), w, r, slug, qty); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("AddItem: %v", err)
		http.Error(w, "Failed to add item", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to read form", http.StatusBadRequest)
		return
	}

	productID := r.FormValue("product_id")
	qty, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		qty = 0
	}

	if err := h.cartSvc.Update(w, r, productID, qty); err != nil {
		log.Printf("UpdateItem: %v", err)
		http.Error(w, "Failed to update item", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to read form", http.StatusBadRequest)
		return
	}

	if err := h.cartSvc.Remove(w, r, r.FormValue("product_id")); err != nil {
		log.Printf("RemoveItem: %v", err)
		http.Error(w, "Failed to remove item", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cartSvc.Clear(w, r); err != nil {
		log.Printf("ClearCart: %v", err)
		http.Error(w, "Failed to clear cart", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func redirectToCart(w http.ResponseWriter, r *http.Request, status, msg string) {
	http.Redirect(w, r, fmt.Sprintf("/cart?status=%s&message=%s", status, url.QueryEscape(msg)), http.StatusSeeOther)
}
