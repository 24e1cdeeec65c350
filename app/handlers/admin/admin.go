package admin

import (
	"net/http"

	"github.com/emballage/storefront/app/helpers"
	"github.com/emballage/storefront/app/repositories"
	"github.com/emballage/storefront/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/unrolled/render"
)

type AdminHandler struct {
	render       *render.Render
	validator    *validator.Validate
	session      sessions.Store
	userRepo     repositories.UserRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	imageRepo    repositories.ProductImageRepositoryImpl
	orderRepo    repositories.OrderRepositoryImpl
	uploadsDir   string
}

func NewAdminHandler(
	render *render.Render,
	session sessions.Store,
	userRepo repositories.UserRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	imageRepo repositories.ProductImageRepositoryImpl,
	orderRepo repositories.OrderRepositoryImpl,
	uploadsDir string,
) *AdminHandler {
	return &AdminHandler{
		render:       render,
		validator:    validator.New(),
		session:      session,
		userRepo:     userRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		imageRepo:    imageRepo,
		orderRepo:    orderRepo,
		uploadsDir:   uploadsDir,
	}
}

// ProductForm is the add/edit product form. Values arrive as strings and are
// converted after validation.
type ProductForm struct {
	Name          string `validate:"required"`
	Description   string
	Price         string `validate:"required"`
	OldPrice      string
	CategoryID    string `validate:"required"`
	Size          string
	StockQuantity string `validate:"required"`
	InStock       bool
}

func (h *AdminHandler) baseData(r *http.Request, data map[string]interface{}) map[string]interface{} {
	data = helpers.GetBaseData(r, data)
	data["IsAdminPage"] = true
	data[helpers.CSRFTemplateKey] = csrf.TemplateField(r)
	return data
}
