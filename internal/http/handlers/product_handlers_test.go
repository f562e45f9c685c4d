package handlers_test

import (
	"net/http"
	"testing"

	"github.com/lanchepoint/pos-api/internal/http/handlers"
	"github.com/lanchepoint/pos-api/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestCreateProductHandler_Valid(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodPost, "/api/products", handlers.ProductRequest{
		Name:    "X-Burger Completo",
		Code:    "001",
		Barcode: strPtr("7891234567890"),
		Price:   "15.90",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var created models.Product
	decodeBody(t, w, &created)
	if created.ID != 1 {
		t.Errorf("expected id 1, got %d", created.ID)
	}
	if created.Price != "15.90" {
		t.Errorf("expected price 15.90, got %v", created.Price)
	}
	if created.MinStock != 5 {
		t.Errorf("expected default min_stock 5, got %d", created.MinStock)
	}
	if !created.IsActive {
		t.Error("expected product to default to active")
	}
	if created.StockQuantity != 0 {
		t.Errorf("expected default stock 0, got %d", created.StockQuantity)
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	e := newTestEnv(t)

	tests := []struct {
		name           string
		payload        handlers.ProductRequest
		expectedFields []string
	}{
		{
			name:           "empty name and code",
			payload:        handlers.ProductRequest{Price: "10.00"},
			expectedFields: []string{"name", "code"},
		},
		{
			name:           "missing price",
			payload:        handlers.ProductRequest{Name: "Suco", Code: "006"},
			expectedFields: []string{"price"},
		},
		{
			name:           "negative price",
			payload:        handlers.ProductRequest{Name: "Suco", Code: "006", Price: "-7.50"},
			expectedFields: []string{"price"},
		},
		{
			name:           "negative stock",
			payload:        handlers.ProductRequest{Name: "Suco", Code: "006", Price: "7.50", StockQuantity: intPtr(-1)},
			expectedFields: []string{"stock_quantity"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := e.do(t, http.MethodPost, "/api/products", tc.payload)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 Bad Request, got %d", w.Code)
			}
			var errs []handlers.ValidationError
			decodeBody(t, w, &errs)
			for _, field := range tc.expectedFields {
				if !containsField(errs, field) {
					t.Errorf("expected error for field %q, got %v", field, fieldNames(errs))
				}
			}
		})
	}
}

func TestCreateProductHandler_DuplicateCode(t *testing.T) {
	e := newTestEnv(t)
	e.createProduct(t, "X-Burger", "001", "15.90", 25)

	w := e.do(t, http.MethodPost, "/api/products", handlers.ProductRequest{Name: "Outro", Code: "001", Price: "9.90"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestGetProductsHandler(t *testing.T) {
	e := newTestEnv(t)
	e.createProduct(t, "X-Burger", "001", "15.90", 25)
	e.createProduct(t, "Batata Frita", "003", "8.90", 15)

	w := e.do(t, http.MethodGet, "/api/products", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var products []models.Product
	decodeBody(t, w, &products)
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Code != "001" || products[1].Code != "003" {
		t.Errorf("expected id order, got %v then %v", products[0].Code, products[1].Code)
	}
}

func TestSearchProductsHandler(t *testing.T) {
	e := newTestEnv(t)
	e.createProduct(t, "X-Burger Completo", "001", "15.90", 25)
	e.createProduct(t, "Refrigerante Lata", "002", "5.50", 8)

	w := e.do(t, http.MethodGet, "/api/products/search?q=burger", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var products []models.Product
	decodeBody(t, w, &products)
	if len(products) != 1 || products[0].Code != "001" {
		t.Errorf("expected only product 001, got %v", products)
	}

	// No matches is an empty list, not an error.
	w = e.do(t, http.MethodGet, "/api/products/search?q=pizza", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	decodeBody(t, w, &products)
	if len(products) != 0 {
		t.Errorf("expected no products, got %v", products)
	}
}

func TestSearchProductsHandler_MissingQuery(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodGet, "/api/products/search", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestLowStockProductsHandler(t *testing.T) {
	e := newTestEnv(t)
	e.createProduct(t, "X-Burger", "001", "15.90", 25)
	low, err := e.products.Create(models.Product{Name: "Refrigerante", Code: "002", Price: "5.50", StockQuantity: 8, MinStock: 10, IsActive: true})
	if err != nil {
		t.Fatal(err)
	}

	w := e.do(t, http.MethodGet, "/api/products/low-stock", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var products []models.Product
	decodeBody(t, w, &products)
	if len(products) != 1 || products[0].ID != low.ID {
		t.Errorf("expected only the low-stock product, got %v", products)
	}
}

func TestUpdateProductHandler_PartialMerge(t *testing.T) {
	e := newTestEnv(t)
	created := e.createProduct(t, "X-Burger", "001", "15.90", 25)

	w := e.do(t, http.MethodPut, "/api/products/1", handlers.ProductUpdateRequest{
		Price:    strPtr("17.90"),
		IsActive: boolPtr(false),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var updated models.Product
	decodeBody(t, w, &updated)
	if updated.Price != "17.90" {
		t.Errorf("expected price 17.90, got %v", updated.Price)
	}
	if updated.IsActive {
		t.Error("expected product to be deactivated")
	}
	// Untouched fields keep their values.
	if updated.Name != created.Name || updated.StockQuantity != created.StockQuantity {
		t.Errorf("expected untouched fields preserved, got %+v", updated)
	}
}

func TestUpdateProductHandler_NotFound(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodPut, "/api/products/99", handlers.ProductUpdateRequest{Price: strPtr("1.00")})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestDeleteProductHandler(t *testing.T) {
	e := newTestEnv(t)
	e.createProduct(t, "X-Burger", "001", "15.90", 25)

	w := e.do(t, http.MethodDelete, "/api/products/1", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	w = e.do(t, http.MethodDelete, "/api/products/1", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 Not Found on second delete, got %d", w.Code)
	}
}

func TestAdjustStockHandler(t *testing.T) {
	e := newTestEnv(t)
	e.createProduct(t, "X-Burger", "001", "15.90", 10)

	w := e.do(t, http.MethodPost, "/api/products/1/adjust", handlers.StockAdjustmentRequest{Delta: -4})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var product models.Product
	decodeBody(t, w, &product)
	if product.StockQuantity != 6 {
		t.Errorf("expected stock 6, got %d", product.StockQuantity)
	}

	// Going below zero is refused and leaves the stock untouched.
	w = e.do(t, http.MethodPost, "/api/products/1/adjust", handlers.StockAdjustmentRequest{Delta: -7})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 Conflict, got %d", w.Code)
	}
	got, err := e.products.GetByID(1)
	if err != nil {
		t.Fatal(err)
	}
	if got.StockQuantity != 6 {
		t.Errorf("expected stock unchanged at 6, got %d", got.StockQuantity)
	}

	w = e.do(t, http.MethodPost, "/api/products/99/adjust", handlers.StockAdjustmentRequest{Delta: 1})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 Not Found, got %d", w.Code)
	}
}
