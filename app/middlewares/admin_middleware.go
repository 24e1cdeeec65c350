package middlewares

import (
	"context"
	"log"
	"net/http"
	"net/url"

	"github.com/emballage/storefront/app/helpers"
	"github.com/emballage/storefront/app/repositories"
	"github.com/emballage/storefront/app/utils/sessions"
)

// AdminAuthMiddleware gates the admin area. Unauthenticated or unauthorized
// requests are redirected to the login page with the original path preserved
// in ?next= for the post-login redirect.
func AdminAuthMiddleware(session sessions.Store, userRepo repositories.UserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loginURL := "/admin/login?next=" + url.QueryEscape(r.URL.Path)

			userID := session.UserID(r)
			if userID == 0 {
				http.Redirect(w, r, loginURL, http.StatusFound)
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil || user == nil {
				log.Printf("AdminAuthMiddleware: user %d not found: %v", userID, err)
				http.Redirect(w, r, loginURL, http.StatusFound)
				return
			}

			if !user.IsAdmin() {
				http.Redirect(w, r, loginURL, http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
