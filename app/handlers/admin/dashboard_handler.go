package admin

import (
	"log"
	"net/http"
)

// Dashboard shows catalog aggregates: totals, out-of-stock count, stock sum,
// the lowest-stock products and per-category product counts.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	totalProducts, err := h.productRepo.Count(ctx)
	if err != nil {
		log.Printf("Dashboard: product count failed: %v", err)
	}

	outOfStock, err := h.productRepo.CountOutOfStock(ctx)
	if err != nil {
		log.Printf("Dashboard: out-of-stock count failed: %v", err)
	}

	totalCategories, err := h.categoryRepo.Count(ctx)
	if err != nil {
		log.Printf("Dashboard: category count failed: %v", err)
	}

	totalStock, err := h.productRepo.SumStock(ctx)
	if err != nil {
		log.Printf("Dashboard: stock sum failed: %v", err)
	}

	lowStock, err := h.productRepo.GetLowStock(ctx, 8)
	if err != nil {
		log.Printf("Dashboard: low stock query failed: %v", err)
	}

	categoriesData, err := h.categoryRepo.GetAllWithProductCounts(ctx)
	if err != nil {
		log.Printf("Dashboard: category counts failed: %v", err)
	}

	totalOrders, err := h.orderRepo.Count(ctx)
	if err != nil {
		log.Printf("Dashboard: order count failed: %v", err)
	}

	data := h.baseData(r, map[string]interface{}{
		"Title":           "Dashboard",
		"TotalProducts":   totalProducts,
		"OutOfStock":      outOfStock,
		"TotalCategories": totalCategories,
		"TotalStock":      totalStock,
		"TotalOrders":     totalOrders,
		"TopLowStock":     lowStock,
		"CategoriesData":  categoriesData,
	})

	_ = h.render.HTML(w, http.StatusOK, "admin/dashboard", data)
}
