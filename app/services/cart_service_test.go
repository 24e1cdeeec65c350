package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/emballage/storefront/app/models"
	"github.com/emballage/storefront/app/models/migrations"
	"github.com/emballage/storefront/app/repositories"
	"github.com/emballage/storefront/app/services"
	"github.com/emballage/storefront/app/utils/sessions"
	"github.com/shopspring/decimal"
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

// sessionClient carries session cookies across requests the way a browser
// would, so cart state survives between service calls.
type sessionClient struct {
	cookies []*http.Cookie
}

func (c *sessionClient) request() *http.Request {
	r := httptest.NewRequest("GET", "/", nil)
	for _, cookie := range c.cookies {
		r.AddCookie(cookie)
	}
	return r
}

func (c *sessionClient) capture(w *httptest.ResponseRecorder) {
	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}
}

func newCartFixture(t *testing.T) (*gorm.DB, *services.CartService, *sessionClient) {
	t.Helper()

	db := newTestDB(t)
	store := sessions.NewCookieStore([]byte("test-auth-key"))
	svc := services.NewCartService(repositories.NewProductRepository(db), store)
	return db, svc, &sessionClient{}
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) *models.Product {
	t.Helper()

	category := &models.Category{}
	require.NoError(t, db.FirstOrCreate(category, models.Category{Name: "Boîtes"}).Error)

	product := &models.Product{
		CategoryID:    category.ID,
		Name:          name,
		Price:         decimal.NewFromFloat(price),
		StockQuantity: 10,
		InStock:       true,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func addToCart(t *testing.T, svc *services.CartService, client *sessionClient, slug string, qty int) {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, svc.Add(context.Background(), w, client.request(), slug, qty))
	client.capture(w)
}

func viewCart(t *testing.T, svc *services.CartService, client *sessionClient) *services.CartView {
	t.Helper()
	w := httptest.NewRecorder()
	view, err := svc.View(context.Background(), w, client.request())
	require.NoError(t, err)
	client.capture(w)
	return view
}

func TestCartAddAccumulatesQuantityWithSnapshotPrice(t *testing.T) {
	db, svc, client := newCartFixture(t)
	product := seedProduct(t, db, "Boîte 20x20", 10.00)

	addToCart(t, svc, client, product.Slug, 2)

	// Catalog price changes mid-session; the snapshot must win.
	require.NoError(t, db.Model(product).Update("price", decimal.NewFromFloat(99.99)).Error)

	addToCart(t, svc, client, product.Slug, 3)

	view := viewCart(t, svc, client)
	require.Len(t, view.Items, 1)
	require.Equal(t, 5, view.Items[0].Quantity)
	require.True(t, view.Items[0].Price.Equal(decimal.NewFromFloat(10.00)))
	require.True(t, view.Total.Equal(decimal.NewFromFloat(50.00)))
}

func TestCartAddUnknownProduct(t *testing.T) {
	_, svc, client := newCartFixture(t)

	w := httptest.NewRecorder()
	err := svc.Add(context.Background(), w, client.request(), "no-such-product", 1)
	require.ErrorIs(t, err, services.ErrProductNotFound)
}

func TestCartAddInvalidQuantityDefaultsToOne(t *testing.T) {
	db, svc, client := newCartFixture(t)
	product := seedProduct(t, db, "Boîte 20x20", 10.00)

	addToCart(t, svc, client, product.Slug, -3)

	view := viewCart(t, svc, client)
	require.Len(t, view.Items, 1)
	require.Equal(t, 1, view.Items[0].Quantity)
}

func TestCartUpdateZeroRemovesEntry(t *testing.T) {
	db, svc, client := newCartFixture(t)
	product := seedProduct(t, db, "Boîte 20x20", 10.00)
	pid := pidOf(product)

	addToCart(t, svc, client, product.Slug, 2)

	w := httptest.NewRecorder()
	require.NoError(t, svc.Update(w, client.request(), pid, 0))
	client.capture(w)

	view := viewCart(t, svc, client)
	require.Empty(t, view.Items)
	require.True(t, view.Total.IsZero())
}

func TestCartUpdateReplacesQuantity(t *testing.T) {
	db, svc, client := newCartFixture(t)
	product := seedProduct(t, db, "Boîte 20x20", 10.00)

	addToCart(t, svc, client, product.Slug, 2)

	w := httptest.NewRecorder()
	require.NoError(t, svc.Update(w, client.request(), pidOf(product), 7))
	client.capture(w)

	view := viewCart(t, svc, client)
	require.Len(t, view.Items, 1)
	require.Equal(t, 7, view.Items[0].Quantity)
}

func TestCartUpdateAbsentProductIsNoOp(t *testing.T) {
	db, svc, client := newCartFixture(t)
	product := seedProduct(t, db, "Boîte 20x20", 10.00)

	addToCart(t, svc, client, product.Slug, 2)

	w := httptest.NewRecorder()
	require.NoError(t, svc.Update(w, client.request(), "999", 4))
	client.capture(w)

	view := viewCart(t, svc, client)
	require.Len(t, view.Items, 1)
	require.Equal(t, 2, view.Items[0].Quantity)
}

func TestCartRemoveAndClear(t *testing.T) {
	db, svc, client := newCartFixture(t)
	first := seedProduct(t, db, "Boîte 20x20", 10.00)
	second := seedProduct(t, db, "Boîte 30x30", 20.00)

	addToCart(t, svc, client, first.Slug, 1)
	addToCart(t, svc, client, second.Slug, 1)

	w := httptest.NewRecorder()
	require.NoError(t, svc.Remove(w, client.request(), pidOf(first)))
	client.capture(w)

	view := viewCart(t, svc, client)
	require.Len(t, view.Items, 1)
	require.Equal(t, second.ID, view.Items[0].Product.ID)

	w = httptest.NewRecorder()
	require.NoError(t, svc.Clear(w, client.request()))
	client.capture(w)

	view = viewCart(t, svc, client)
	require.Empty(t, view.Items)
}

func TestCartViewPrunesDeletedProductsIdempotently(t *testing.T) {
	db, svc, client := newCartFixture(t)
	kept := seedProduct(t, db, "Boîte 20x20", 10.00)
	doomed := seedProduct(t, db, "Boîte 30x30", 20.00)

	addToCart(t, svc, client, kept.Slug, 1)
	addToCart(t, svc, client, doomed.Slug, 2)

	require.NoError(t, db.Delete(&models.Product{}, doomed.ID).Error)

	view := viewCart(t, svc, client)
	require.Len(t, view.Items, 1)
	require.Equal(t, kept.ID, view.Items[0].Product.ID)
	require.True(t, view.Total.Equal(decimal.NewFromFloat(10.00)))

	// Viewing again yields the same pruned cart.
	again := viewCart(t, svc, client)
	require.Len(t, again.Items, 1)
	require.True(t, again.Total.Equal(view.Total))
}

func TestCartViewOrderedByProductID(t *testing.T) {
	db, svc, client := newCartFixture(t)
	first := seedProduct(t, db, "Boîte A", 5.00)
	second := seedProduct(t, db, "Boîte B", 6.00)
	third := seedProduct(t, db, "Boîte C", 7.00)

	addToCart(t, svc, client, third.Slug, 1)
	addToCart(t, svc, client, first.Slug, 1)
	addToCart(t, svc, client, second.Slug, 1)

	view := viewCart(t, svc, client)
	require.Len(t, view.Items, 3)
	require.Equal(t, first.ID, view.Items[0].Product.ID)
	require.Equal(t, second.ID, view.Items[1].Product.ID)
	require.Equal(t, third.ID, view.Items[2].Product.ID)
}

func pidOf(product *models.Product) string {
	return strconv.FormatUint(uint64(product.ID), 10)
}
