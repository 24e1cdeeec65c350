package admin

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func (h *AdminHandler) GetOrdersPage(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("GetOrdersPage: %v", err)
	}

	data := h.baseData(r, map[string]interface{}{
		"Title":  "Orders",
		"Orders": orders,
	})

	_ = h.render.HTML(w, http.StatusOK, "admin/orders/index", data)
}

func (h *AdminHandler) OrderDetailPage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	order, err := h.orderRepo.GetByID(r.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Failed to load order", http.StatusInternalServerError)
		return
	}

	data := h.baseData(r, map[string]interface{}{
		"Title": "Order",
		"Order": order,
	})

	_ = h.render.HTML(w, http.StatusOK, "admin/orders/detail", data)
}

// SetOrderPaidPost flips the is_paid flag, the single permitted mutation on
// a persisted order.
func (h *AdminHandler) SetOrderPaidPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin/orders?status=error&message="+url.QueryEscape("Failed to parse form."), http.StatusSeeOther)
		return
	}

	paid := r.FormValue("is_paid") != ""
	if err := h.orderRepo.SetPaid(r.Context(), uint(id), paid); err != nil {
		log.Printf("SetOrderPaidPost: %v", err)
		http.Redirect(w, r, "/admin/orders?status=error&message="+url.QueryEscape("Failed to update order."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/orders?status=success&message="+url.QueryEscape("Order updated."), http.StatusSeeOther)
}
