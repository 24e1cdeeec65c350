package helpers

import (
	"net/http"

	"github.com/emballage/storefront/app/models"
)

// GetBaseData merges page data with the fields every template expects:
// cart count, the logged-in staff user, and flash status/message from the
// query string.
func GetBaseData(r *http.Request, pageSpecificData map[string]interface{}) map[string]interface{} {
	if pageSpecificData == nil {
		pageSpecificData = make(map[string]interface{})
	}

	pageSpecificData["CartCount"] = 0
	if cartCountVal := r.Context().Value(CartCountKey); cartCountVal != nil {
		if count, ok := cartCountVal.(int); ok {
			pageSpecificData["CartCount"] = count
		}
	}

	pageSpecificData["IsLoggedIn"] = false
	if userVal := r.Context().Value(ContextKeyUser); userVal != nil {
		if user, ok := userVal.(*models.User); ok && user != nil {
			pageSpecificData["User"] = user
			pageSpecificData["IsLoggedIn"] = true
		}
	}

	pageSpecificData["MessageStatus"] = r.URL.Query().Get("status")
	pageSpecificData["Message"] = r.URL.Query().Get("message")

	return pageSpecificData
}
