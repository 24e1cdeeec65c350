package admin

import (
	"log"
	"net/http"
	"net/url"

	"github.com/emballage/storefront/app/helpers"
)

// LoginPage renders the staff login form. Already-authenticated admins go
// straight to the dashboard.
func (h *AdminHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if userID := h.session.UserID(r); userID != 0 {
		if user, err := h.userRepo.FindByID(r.Context(), userID); err == nil && user != nil && user.IsAdmin() {
			http.Redirect(w, r, "/admin/dashboard", http.StatusFound)
			return
		}
	}

	data := h.baseData(r, map[string]interface{}{
		"Title": "Admin Login",
		"Next":  r.URL.Query().Get("next"),
	})

	_ = h.render.HTML(w, http.StatusOK, "admin/login", data)
}

func (h *AdminHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to read form", http.StatusBadRequest)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := h.userRepo.FindByEmail(r.Context(), email)
	if err != nil {
		log.Printf("LoginPost: lookup failed for %s: %v", email, err)
	}

	if user == nil || !helpers.PasswordCompare(user.Password, []byte(password)) || !user.IsAdmin() {
		data := h.baseData(r, map[string]interface{}{
			"Title": "Admin Login",
			"Error": "Invalid email or password, or not authorized.",
			"Email": email,
			"Next":  r.URL.Query().Get("next"),
		})
		_ = h.render.HTML(w, http.StatusOK, "admin/login", data)
		return
	}

	if err := h.session.SetUserID(w, r, user.ID); err != nil {
		http.Error(w, "Failed to start session", http.StatusInternalServerError)
		return
	}

	next := r.URL.Query().Get("next")
	if next == "" || next[0] != '/' {
		next = "/admin/dashboard"
	}
	http.Redirect(w, r, next, http.StatusFound)
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.session.ClearSession(w, r); err != nil {
		log.Printf("Logout: %v", err)
	}
	http.Redirect(w, r, "/admin/login?status=success&message="+url.QueryEscape("Logged out."), http.StatusFound)
}
