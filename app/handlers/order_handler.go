package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/emballage/storefront/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	orderSvc  *services.OrderService
	render    *render.Render
	validator *validator.Validate
}

func NewOrderHandler(orderSvc *services.OrderService, render *render.Render) *OrderHandler {
	return &OrderHandler{
		orderSvc:  orderSvc,
		render:    render,
		validator: validator.New(),
	}
}

type orderResponse struct {
	Success bool   `json:"success"`
	OrderID uint   `json:"order_id,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// CreateOrder captures a cart payload before the WhatsApp hand-off. A payload
// that cannot be parsed or fails validation is the only fatal case; line items
// that no longer resolve are dropped inside the service.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var payload services.OrderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, orderResponse{
			Success: false,
			Error:   "invalid request body: " + err.Error(),
		})
		return
	}

	if err := h.validator.Struct(&payload); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, orderResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	order, err := h.orderSvc.Create(r.Context(), &payload)
	if err != nil {
		log.Printf("CreateOrder: %v", err)
		_ = h.render.JSON(w, http.StatusBadRequest, orderResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, orderResponse{
		Success: true,
		OrderID: order.ID,
		Message: "Commande enregistrée avec succès",
	})
}
