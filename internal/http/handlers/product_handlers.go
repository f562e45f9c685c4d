package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	models "github.com/lanchepoint/pos-api/internal/models"
	repo "github.com/lanchepoint/pos-api/internal/repo"
)

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} map[string]string
// @Router /api/products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// SearchProductsHandler godoc
// @Summary Search products by name, code or barcode
// @Tags products
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} models.Product
// @Failure 400 {object} map[string]string
// @Router /api/products/search [get]
func SearchProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		errorJSON(w, http.StatusBadRequest, "Query parameter required")
		return
	}

	products, err := productRepo.Search(q)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// LowStockProductsHandler godoc
// @Summary List products at or below their restock threshold
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} map[string]string
// @Router /api/products/low-stock [get]
func LowStockProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetLowStock()
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} models.Product
// @Failure 400 {array} ValidationError
// @Router /api/products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	product := models.Product{
		Name:       req.Name,
		Code:       req.Code,
		Barcode:    req.Barcode,
		Price:      req.Price,
		CategoryID: req.CategoryID,
		MinStock:   5,
		IsActive:   true,
		CreatedAt:  time.Now(),
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.MinStock != nil {
		product.MinStock = *req.MinStock
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	created, err := productRepo.Create(product)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			errorJSON(w, http.StatusBadRequest, "product code already exists")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "could not create product")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// UpdateProductHandler godoc
// @Summary Update a product with a partial payload
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body ProductUpdateRequest true "Fields to change"
// @Success 200 {object} models.Product
// @Failure 400 {array} ValidationError
// @Failure 404 {object} map[string]string
// @Router /api/products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	var req ProductUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	if validationErrors := validateProductUpdate(req); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			errorJSON(w, http.StatusNotFound, "Product not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "could not fetch product")
		return
	}

	// Shallow merge: absent fields keep their prior values.
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Code != nil {
		product.Code = *req.Code
	}
	if req.Barcode != nil {
		product.Barcode = req.Barcode
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.MinStock != nil {
		product.MinStock = *req.MinStock
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	updated, err := productRepo.Update(product)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			errorJSON(w, http.StatusNotFound, "Product not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "could not update product")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	if err := productRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			errorJSON(w, http.StatusNotFound, "Product not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "could not delete product")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AdjustStockHandler godoc
// @Summary Adjust a product's stock by a delta
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param adjustment body StockAdjustmentRequest true "Stock change"
// @Success 200 {object} models.Product
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/products/{id}/adjust [post]
func AdjustStockHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	var req StockAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	product, err := productRepo.AdjustStock(id, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrProductNotFound):
			errorJSON(w, http.StatusNotFound, "Product not found")
		case errors.Is(err, repo.ErrInvalidStockChange):
			errorJSON(w, http.StatusConflict, "stock quantity cannot go negative")
		default:
			errorJSON(w, http.StatusInternalServerError, "could not adjust stock")
		}
		return
	}

	writeJSON(w, http.StatusOK, product)
}
