package admin

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/emballage/storefront/app/helpers"
	"github.com/emballage/storefront/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const maxUploadBytes = 32 << 20

// GetProductsPage lists products, filtered by a case-insensitive name
// substring when ?q= is present.
func (h *AdminHandler) GetProductsPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	var (
		products []models.Product
		err      error
	)
	if q != "" {
		products, err = h.productRepo.SearchByName(r.Context(), q)
	} else {
		products, err = h.productRepo.GetAll(r.Context())
	}
	if err != nil {
		log.Printf("GetProductsPage: %v", err)
	}

	data := h.baseData(r, map[string]interface{}{
		"Title":    "Products",
		"Products": products,
		"Query":    q,
	})

	_ = h.render.HTML(w, http.StatusOK, "admin/products/index", data)
}

func (h *AdminHandler) AddProductPage(w http.ResponseWriter, r *http.Request) {
	h.renderProductForm(w, r, "/admin/products/add", &ProductForm{InStock: true}, nil, nil)
}

func (h *AdminHandler) AddProductPost(w http.ResponseWriter, r *http.Request) {
	form, err := h.parseProductForm(r)
	if err != nil {
		http.Redirect(w, r, "/admin/products/add?status=error&message="+url.QueryEscape("Failed to parse form."), http.StatusSeeOther)
		return
	}

	if errs := h.validateProductForm(form); errs != nil {
		h.renderProductForm(w, r, "/admin/products/add", form, nil, errs)
		return
	}

	product, errs := h.productFromForm(r, form)
	if errs != nil {
		h.renderProductForm(w, r, "/admin/products/add", form, nil, errs)
		return
	}

	if err := h.productRepo.Create(r.Context(), product); err != nil {
		log.Printf("AddProductPost: create failed: %v", err)
		h.renderProductForm(w, r, "/admin/products/add", form, nil, map[string]string{"name": "Failed to save product."})
		return
	}

	if err := h.attachUploadedImages(r, product.ID); err != nil {
		log.Printf("AddProductPost: image upload failed: %v", err)
	}

	http.Redirect(w, r, "/admin/products?status=success&message="+url.QueryEscape("Product added."), http.StatusSeeOther)
}

func (h *AdminHandler) EditProductPage(w http.ResponseWriter, r *http.Request) {
	product, ok := h.productFromVars(w, r)
	if !ok {
		return
	}

	form := &ProductForm{
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price.String(),
		CategoryID:    strconv.FormatUint(uint64(product.CategoryID), 10),
		Size:          product.Size,
		StockQuantity: strconv.Itoa(product.StockQuantity),
		InStock:       product.InStock,
	}
	if product.OldPrice != nil {
		form.OldPrice = product.OldPrice.String()
	}

	action := fmt.Sprintf("/admin/products/%d/edit", product.ID)
	h.renderProductForm(w, r, action, form, product, nil)
}

// EditProductPost updates product fields. The slug is never re-derived and
// existing images are preserved; new uploads are appended.
func (h *AdminHandler) EditProductPost(w http.ResponseWriter, r *http.Request) {
	product, ok := h.productFromVars(w, r)
	if !ok {
		return
	}
	action := fmt.Sprintf("/admin/products/%d/edit", product.ID)

	form, err := h.parseProductForm(r)
	if err != nil {
		http.Redirect(w, r, action+"?status=error&message="+url.QueryEscape("Failed to parse form."), http.StatusSeeOther)
		return
	}

	if errs := h.validateProductForm(form); errs != nil {
		h.renderProductForm(w, r, action, form, product, errs)
		return
	}

	updated, errs := h.productFromForm(r, form)
	if errs != nil {
		h.renderProductForm(w, r, action, form, product, errs)
		return
	}

	product.Name = updated.Name
	product.Description = updated.Description
	product.Price = updated.Price
	product.OldPrice = updated.OldPrice
	product.CategoryID = updated.CategoryID
	product.Size = updated.Size
	product.StockQuantity = updated.StockQuantity
	product.InStock = updated.InStock

	if err := h.productRepo.Update(r.Context(), product); err != nil {
		log.Printf("EditProductPost: update failed: %v", err)
		h.renderProductForm(w, r, action, form, product, map[string]string{"name": "Failed to save product."})
		return
	}

	if err := h.attachUploadedImages(r, product.ID); err != nil {
		log.Printf("EditProductPost: image upload failed: %v", err)
	}

	http.Redirect(w, r, "/admin/products?status=success&message="+url.QueryEscape("Product updated."), http.StatusSeeOther)
}

// DeleteProductPage asks for confirmation before the destructive POST.
func (h *AdminHandler) DeleteProductPage(w http.ResponseWriter, r *http.Request) {
	product, ok := h.productFromVars(w, r)
	if !ok {
		return
	}

	data := h.baseData(r, map[string]interface{}{
		"Title":   "Delete product",
		"Product": product,
	})

	_ = h.render.HTML(w, http.StatusOK, "admin/products/confirm_delete", data)
}

func (h *AdminHandler) DeleteProductPost(w http.ResponseWriter, r *http.Request) {
	product, ok := h.productFromVars(w, r)
	if !ok {
		return
	}

	if err := h.imageRepo.DeleteByProductID(r.Context(), product.ID); err != nil {
		log.Printf("DeleteProductPost: image cleanup failed: %v", err)
	}
	if err := h.productRepo.Delete(r.Context(), product.ID); err != nil {
		log.Printf("DeleteProductPost: delete failed: %v", err)
		http.Redirect(w, r, "/admin/products?status=error&message="+url.QueryEscape("Failed to delete product."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/products?status=success&message="+url.QueryEscape("Product deleted."), http.StatusSeeOther)
}

// StockUpdatePost sets the stock quantity and recomputes availability as
// quantity > 0.
func (h *AdminHandler) StockUpdatePost(w http.ResponseWriter, r *http.Request) {
	product, ok := h.productFromVars(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin/products?status=error&message="+url.QueryEscape("Failed to parse form."), http.StatusSeeOther)
		return
	}

	stock, err := strconv.Atoi(r.FormValue("stock"))
	if err != nil || stock < 0 {
		http.Redirect(w, r, "/admin/products?status=error&message="+url.QueryEscape("Invalid stock value."), http.StatusSeeOther)
		return
	}

	product.StockQuantity = stock
	product.InStock = stock > 0

	if err := h.productRepo.Update(r.Context(), product); err != nil {
		log.Printf("StockUpdatePost: %v", err)
		http.Redirect(w, r, "/admin/products?status=error&message="+url.QueryEscape("Failed to update stock."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/products?status=success&message="+url.QueryEscape("Stock updated."), http.StatusSeeOther)
}

func (h *AdminHandler) productFromVars(w http.ResponseWriter, r *http.Request) (*models.Product, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return nil, false
	}

	product, err := h.productRepo.GetByID(r.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.NotFound(w, r)
			return nil, false
		}
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return nil, false
	}
	return product, true
}

func (h *AdminHandler) parseProductForm(r *http.Request) (*ProductForm, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		// Plain form posts without file parts are still accepted.
		if err != http.ErrNotMultipart {
			return nil, err
		}
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
	}

	return &ProductForm{
		Name:          r.PostFormValue("name"),
		Description:   r.PostFormValue("description"),
		Price:         r.PostFormValue("price"),
		OldPrice:      r.PostFormValue("old_price"),
		CategoryID:    r.PostFormValue("category_id"),
		Size:          r.PostFormValue("size"),
		StockQuantity: r.PostFormValue("stock_quantity"),
		InStock:       r.PostFormValue("in_stock") != "",
	}, nil
}

func (h *AdminHandler) validateProductForm(form *ProductForm) map[string]string {
	if err := h.validator.Struct(form); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return helpers.FormatValidationErrors(validationErrors)
		}
		return map[string]string{"name": "Invalid form submission."}
	}
	return nil
}

func (h *AdminHandler) productFromForm(r *http.Request, form *ProductForm) (*models.Product, map[string]string) {
	price, err := decimal.NewFromString(form.Price)
	if err != nil {
		return nil, map[string]string{"price": "Invalid price format."}
	}

	var oldPrice *decimal.Decimal
	if form.OldPrice != "" {
		parsed, err := decimal.NewFromString(form.OldPrice)
		if err != nil {
			return nil, map[string]string{"oldprice": "Invalid old price format."}
		}
		oldPrice = &parsed
	}

	stock, err := strconv.Atoi(form.StockQuantity)
	if err != nil || stock < 0 {
		return nil, map[string]string{"stockquantity": "Invalid stock quantity."}
	}

	categoryID, err := strconv.ParseUint(form.CategoryID, 10, 64)
	if err != nil {
		return nil, map[string]string{"categoryid": "Invalid category."}
	}
	category, err := h.categoryRepo.GetByID(r.Context(), uint(categoryID))
	if err != nil || category == nil {
		return nil, map[string]string{"categoryid": "Category not found."}
	}

	return &models.Product{
		Name:          form.Name,
		Description:   form.Description,
		Price:         price,
		OldPrice:      oldPrice,
		CategoryID:    category.ID,
		Size:          form.Size,
		StockQuantity: stock,
		InStock:       form.InStock,
	}, nil
}

func (h *AdminHandler) renderProductForm(w http.ResponseWriter, r *http.Request, action string, form *ProductForm, product *models.Product, formErrors map[string]string) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("renderProductForm: categories failed: %v", err)
	}

	var images []models.ProductImage
	if product != nil {
		images, err = h.imageRepo.GetByProductID(r.Context(), product.ID)
		if err != nil {
			log.Printf("renderProductForm: images failed: %v", err)
		}
	}

	data := h.baseData(r, map[string]interface{}{
		"Title":      "Product",
		"FormAction": action,
		"Form":       form,
		"Product":    product,
		"Images":     images,
		"Categories": categories,
		"Errors":     formErrors,
		"IsEdit":     product != nil,
	})

	_ = h.render.HTML(w, http.StatusOK, "admin/products/form", data)
}

// attachUploadedImages stores every uploaded "images" file under the uploads
// dir and records it as a secondary product image.
func (h *AdminHandler) attachUploadedImages(r *http.Request, productID uint) error {
	if r.MultipartForm == nil {
		return nil
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		return nil
	}

	dir := filepath.Join(h.uploadsDir, "products")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for _, header := range files {
		path, err := h.saveUpload(header, dir)
		if err != nil {
			return err
		}

		image := &models.ProductImage{
			ProductID: productID,
			Path:      path,
			Alt:       header.Filename,
		}
		if err := h.imageRepo.Create(r.Context(), image); err != nil {
			return err
		}
	}

	return nil
}

func (h *AdminHandler) saveUpload(header *multipart.FileHeader, dir string) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.New().String() + filepath.Ext(header.Filename)
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/" + filepath.ToSlash(dstPath), nil
}
