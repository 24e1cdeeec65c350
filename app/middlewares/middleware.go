package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/emballage/storefront/app/helpers"
	"github.com/emballage/storefront/app/services"
)

// CartCountMiddleware exposes the session cart's total quantity to every
// template through the request context.
func CartCountMiddleware(cartSvc *services.CartService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), helpers.CartCountKey, cartSvc.Count(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// MethodOverrideMiddleware lets HTML forms submit PUT/DELETE via a hidden
// _method field.
func MethodOverrideMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			_ = r.ParseForm()
			if override := r.Form.Get("_method"); override != "" {
				r.Method = strings.ToUpper(override)
			}
		}
		next.ServeHTTP(w, r)
	})
}
