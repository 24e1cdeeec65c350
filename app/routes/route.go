package routes

import (
	"net/http"

	"github.com/emballage/storefront/app/configs"
	"github.com/emballage/storefront/app/handlers"
	"github.com/emballage/storefront/app/handlers/admin"
	"github.com/emballage/storefront/app/middlewares"
	"github.com/emballage/storefront/app/repositories"
	"github.com/emballage/storefront/app/services"
	"github.com/emballage/storefront/app/utils/renderer"
	"github.com/emballage/storefront/app/utils/sessions"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV, keys *configs.SessionKeys) *mux.Router {
	render := renderer.New()
	sessionStore := sessions.NewCookieStore(keys.AuthKey, keys.EncKey)

	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	sizeRepo := repositories.NewProductSizeRepository(db)
	imageRepo := repositories.NewProductImageRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	orderItemRepo := repositories.NewOrderItemRepository(db)
	userRepo := repositories.NewUserRepository(db)

	cartSvc := services.NewCartService(productRepo, sessionStore)
	orderSvc := services.NewOrderService(db, productRepo, orderRepo, orderItemRepo)

	productHandler := handlers.NewProductHandler(productRepo, categoryRepo, sizeRepo, render)
	cartHandler := handlers.NewCartHandler(cartSvc, productRepo, render)
	orderHandler := handlers.NewOrderHandler(orderSvc, render)
	apiHandler := handlers.NewAPIHandler(productRepo, render, env.AppURL)
	adminHandler := admin.NewAdminHandler(render, sessionStore, userRepo, productRepo, categoryRepo, imageRepo, orderRepo, env.UploadsDir)

	router := mux.NewRouter()
	router.Use(middlewares.MethodOverrideMiddleware)
	router.Use(middlewares.CartCountMiddleware(cartSvc))

	// Storefront.
	router.HandleFunc("/", productHandler.Home).Methods("GET")
	router.HandleFunc("/products/", productHandler.Products).Methods("GET")
	router.HandleFunc("/products", productHandler.Products).Methods("GET")
	router.HandleFunc("/products/{id:[0-9]+}/sizes", productHandler.ProductSizes).Methods("GET")
	router.HandleFunc("/products/{slug}", productHandler.ProductDetail).Methods("GET")

	// Session cart. Mutations redirect back to the cart view.
	router.HandleFunc("/cart", cartHandler.GetCart).Methods("GET")
	router.HandleFunc("/cart/add", cartHandler.AddItem).Methods("POST")
	router.HandleFunc("/cart/update", cartHandler.UpdateItem).Methods("POST")
	router.HandleFunc("/cart/remove", cartHandler.RemoveItem).Methods("POST")
	router.HandleFunc("/cart/clear", cartHandler.ClearCart).Methods("POST")

	// Order capture (JSON, called before the WhatsApp hand-off).
	router.HandleFunc("/orders/create", orderHandler.CreateOrder).Methods("POST")

	// Read API.
	router.HandleFunc("/api/products/{slug}", apiHandler.ProductDetail).Methods("GET")

	// Uploaded media.
	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(env.UploadsDir))))

	// Admin area. Login is reachable without the guard; everything else is
	// role-gated and CSRF-protected.
	csrfMiddleware := csrf.Protect(keys.AuthKey, csrf.Secure(env.AppEnv == "production"))

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(csrfMiddleware)
	adminRouter.HandleFunc("/login", adminHandler.LoginPage).Methods("GET")
	adminRouter.HandleFunc("/login", adminHandler.LoginPost).Methods("POST")
	adminRouter.HandleFunc("/logout", adminHandler.Logout).Methods("GET", "POST")

	protected := adminRouter.NewRoute().Subrouter()
	protected.Use(middlewares.AdminAuthMiddleware(sessionStore, userRepo))
	protected.HandleFunc("/dashboard", adminHandler.Dashboard).Methods("GET")
	protected.HandleFunc("/products", adminHandler.GetProductsPage).Methods("GET")
	protected.HandleFunc("/products/add", adminHandler.AddProductPage).Methods("GET")
	protected.HandleFunc("/products/add", adminHandler.AddProductPost).Methods("POST")
	protected.HandleFunc("/products/{id:[0-9]+}/edit", adminHandler.EditProductPage).Methods("GET")
	protected.HandleFunc("/products/{id:[0-9]+}/edit", adminHandler.EditProductPost).Methods("POST")
	protected.HandleFunc("/products/{id:[0-9]+}/delete", adminHandler.DeleteProductPage).Methods("GET")
	protected.HandleFunc("/products/{id:[0-9]+}/delete", adminHandler.DeleteProductPost).Methods("POST")
	protected.HandleFunc("/products/{id:[0-9]+}/stock", adminHandler.StockUpdatePost).Methods("POST")
	protected.HandleFunc("/orders", adminHandler.GetOrdersPage).Methods("GET")
	protected.HandleFunc("/orders/{id:[0-9]+}", adminHandler.OrderDetailPage).Methods("GET")
	protected.HandleFunc("/orders/{id:[0-9]+}/paid", adminHandler.SetOrderPaidPost).Methods("POST")

	return router
}
