package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emballage/storefront/app/middlewares"
	"github.com/emballage/storefront/app/models"
	"github.com/emballage/storefront/app/models/migrations"
	"github.com/emballage/storefront/app/repositories"
	"github.com/emballage/storefront/app/utils/sessions"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func newGuardedHandler(db *gorm.DB, store sessions.Store) http.Handler {
	guard := middlewares.AdminAuthMiddleware(store, repositories.NewUserRepository(db))
	return guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

// loginCookies runs SetUserID through the store and returns the resulting
// session cookies.
func loginCookies(t *testing.T, store sessions.Store, userID uint) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	require.NoError(t, store.SetUserID(w, r, userID))
	return w.Result().Cookies()
}

func TestAdminGuardRedirectsAnonymousWithNext(t *testing.T) {
	db := newTestDB(t)
	store := sessions.NewCookieStore([]byte("test-auth-key"))
	handler := newGuardedHandler(db, store)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/admin/products", nil))

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/login?next=%2Fadmin%2Fproducts", w.Header().Get("Location"))
}

func TestAdminGuardRejectsStaffRole(t *testing.T) {
	db := newTestDB(t)
	store := sessions.NewCookieStore([]byte("test-auth-key"))
	handler := newGuardedHandler(db, store)

	staff := &models.User{Email: "staff@example.com", Password: "x", Role: models.RoleStaff}
	require.NoError(t, db.Create(staff).Error)

	r := httptest.NewRequest("GET", "/admin/dashboard", nil)
	for _, c := range loginCookies(t, store, staff.ID) {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.Equal(t, http.StatusFound, w.Code)
}

func TestAdminGuardAllowsAdmin(t *testing.T) {
	db := newTestDB(t)
	store := sessions.NewCookieStore([]byte("test-auth-key"))
	handler := newGuardedHandler(db, store)

	admin := &models.User{Email: "admin@example.com", Password: "x", Role: models.RoleAdmin}
	require.NoError(t, db.Create(admin).Error)

	r := httptest.NewRequest("GET", "/admin/dashboard", nil)
	for _, c := range loginCookies(t, store, admin.ID) {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestAdminGuardAllowsSuperuser(t *testing.T) {
	db := newTestDB(t)
	store := sessions.NewCookieStore([]byte("test-auth-key"))
	handler := newGuardedHandler(db, store)

	root := &models.User{Email: "root@example.com", Password: "x", Role: models.RoleStaff, IsSuperuser: true}
	require.NoError(t, db.Create(root).Error)

	r := httptest.NewRequest("GET", "/admin/dashboard", nil)
	for _, c := range loginCookies(t, store, root.ID) {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestAdminGuardRedirectsStaleSession(t *testing.T) {
	db := newTestDB(t)
	store := sessions.NewCookieStore([]byte("test-auth-key"))
	handler := newGuardedHandler(db, store)

	r := httptest.NewRequest("GET", "/admin/dashboard", nil)
	for _, c := range loginCookies(t, store, 42) {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.Equal(t, http.StatusFound, w.Code)
}
