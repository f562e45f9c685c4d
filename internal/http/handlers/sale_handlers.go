package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	models "github.com/lanchepoint/pos-api/internal/models"
	repo "github.com/lanchepoint/pos-api/internal/repo"
)

// GetSalesHandler godoc
// @Summary List sales, optionally filtered by a date range
// @Tags sales
// @Produce json
// @Param startDate query string false "Range start (RFC 3339 or YYYY-MM-DD)"
// @Param endDate query string false "Range end (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {array} models.Sale
// @Failure 400 {object} map[string]string
// @Router /api/sales [get]
func GetSalesHandler(w http.ResponseWriter, r *http.Request) {
	startParam := r.URL.Query().Get("startDate")
	endParam := r.URL.Query().Get("endDate")

	var (
		sales []models.Sale
		err   error
	)
	if startParam != "" && endParam != "" {
		var start, end time.Time
		if start, err = parseDateParam(startParam); err != nil {
			errorJSON(w, http.StatusBadRequest, "invalid startDate")
			return
		}
		if end, err = parseDateParam(endParam); err != nil {
			errorJSON(w, http.StatusBadRequest, "invalid endDate")
			return
		}
		sales, err = saleRepo.GetByDateRange(start, end)
	} else {
		sales, err = saleRepo.GetAll()
	}
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, sales)
}

// GetSaleItemsHandler godoc
// @Summary List the line items of a sale
// @Tags sales
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {array} models.SaleItem
// @Failure 404 {object} map[string]string
// @Router /api/sales/{id}/items [get]
func GetSaleItemsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid sale ID")
		return
	}

	items, err := saleRepo.GetItems(id)
	if err != nil {
		if errors.Is(err, repo.ErrSaleNotFound) {
			errorJSON(w, http.StatusNotFound, "Sale not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateSaleHandler godoc
// @Summary Record a sale and decrement the stock of every sold product
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body SaleRequest true "Sale header plus line items"
// @Success 201 {object} SaleResult
// @Failure 400 {array} ValidationError
// @Failure 409 {object} map[string]string
// @Router /api/sales [post]
func CreateSaleHandler(w http.ResponseWriter, r *http.Request) {
	var req SaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	if validationErrors := validateSale(req); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	// Every referenced product must exist and carry enough stock for the
	// whole batch before anything is written. Quantities are summed per
	// product so two lines for the same item cannot slip past the check.
	needed := map[int]int{}
	for _, item := range req.Items {
		needed[item.ProductID] += item.Quantity
	}
	for productID, qty := range needed {
		product, err := productRepo.GetByID(productID)
		if err != nil {
			if errors.Is(err, repo.ErrProductNotFound) {
				errorJSON(w, http.StatusBadRequest, "product not found")
				return
			}
			errorJSON(w, http.StatusInternalServerError, "could not verify product")
			return
		}
		if product.StockQuantity < qty {
			errorJSON(w, http.StatusConflict, "insufficient stock for product "+product.Code)
			return
		}
	}

	status := req.Sale.Status
	if status == "" {
		status = models.SaleCompleted
	}
	sale, err := saleRepo.Create(models.Sale{
		CustomerID:    req.Sale.CustomerID,
		TotalAmount:   req.Sale.TotalAmount,
		PaymentMethod: req.Sale.PaymentMethod,
		Status:        status,
		CreatedAt:     time.Now(),
	})
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "could not create sale")
		return
	}

	items := make([]models.SaleItem, 0, len(req.Items))
	for _, item := range req.Items {
		created, err := saleRepo.CreateItem(models.SaleItem{
			SaleID:     sale.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
		if err != nil {
			errorJSON(w, http.StatusInternalServerError, "could not create sale item")
			return
		}
		items = append(items, created)

		if _, err := productRepo.AdjustStock(item.ProductID, -item.Quantity); err != nil {
			// The up-front check makes this a true anomaly, not a user error.
			log.Printf("stock adjustment failed for product %d on sale %d: %v", item.ProductID, sale.ID, err)
		}
	}

	writeJSON(w, http.StatusCreated, SaleResult{Sale: sale, Items: items})
}
