package handlers_test

import (
	"net/http"
	"testing"

	"github.com/lanchepoint/pos-api/internal/http/handlers"
	"github.com/lanchepoint/pos-api/internal/models"
)

func TestCreateSaleHandler_Valid(t *testing.T) {
	e := newTestEnv(t)
	burger := e.createProduct(t, "X-Burger", "001", "15.90", 25)
	soda := e.createProduct(t, "Refrigerante", "002", "5.50", 8)

	w := e.do(t, http.MethodPost, "/api/sales", handlers.SaleRequest{
		Sale: handlers.SaleHeaderRequest{TotalAmount: "37.30", PaymentMethod: models.PaymentCash},
		Items: []handlers.SaleItemRequest{
			{ProductID: burger.ID, Quantity: 2, UnitPrice: "15.90", TotalPrice: "31.80"},
			{ProductID: soda.ID, Quantity: 1, UnitPrice: "5.50", TotalPrice: "5.50"},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var result handlers.SaleResult
	decodeBody(t, w, &result)
	if result.Sale.ID != 1 {
		t.Errorf("expected sale id 1, got %d", result.Sale.ID)
	}
	if result.Sale.Status != models.SaleCompleted {
		t.Errorf("expected status completed, got %v", result.Sale.Status)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	if result.Items[0].SaleID != result.Sale.ID {
		t.Errorf("expected items linked to sale %d, got %d", result.Sale.ID, result.Items[0].SaleID)
	}

	// Stock is decremented exactly once per line item.
	gotBurger, _ := e.products.GetByID(burger.ID)
	if gotBurger.StockQuantity != 23 {
		t.Errorf("expected burger stock 23, got %d", gotBurger.StockQuantity)
	}
	gotSoda, _ := e.products.GetByID(soda.ID)
	if gotSoda.StockQuantity != 7 {
		t.Errorf("expected soda stock 7, got %d", gotSoda.StockQuantity)
	}
}

func TestCreateSaleHandler_InsufficientStock(t *testing.T) {
	e := newTestEnv(t)
	soda := e.createProduct(t, "Refrigerante", "002", "5.50", 3)

	w := e.do(t, http.MethodPost, "/api/sales", handlers.SaleRequest{
		Sale: handlers.SaleHeaderRequest{TotalAmount: "22.00", PaymentMethod: models.PaymentCard},
		Items: []handlers.SaleItemRequest{
			{ProductID: soda.ID, Quantity: 4, UnitPrice: "5.50", TotalPrice: "22.00"},
		},
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 Conflict, got %d", w.Code)
	}

	// Nothing was written: no sale, no stock change.
	sales, _ := e.sales.GetAll()
	if len(sales) != 0 {
		t.Errorf("expected no sales, got %d", len(sales))
	}
	got, _ := e.products.GetByID(soda.ID)
	if got.StockQuantity != 3 {
		t.Errorf("expected stock unchanged at 3, got %d", got.StockQuantity)
	}
}

func TestCreateSaleHandler_AggregatesQuantitiesAcrossLines(t *testing.T) {
	e := newTestEnv(t)
	// Two lines of 2 against a stock of 3 must be refused as a whole.
	soda := e.createProduct(t, "Refrigerante", "002", "5.50", 3)

	w := e.do(t, http.MethodPost, "/api/sales", handlers.SaleRequest{
		Sale: handlers.SaleHeaderRequest{TotalAmount: "22.00", PaymentMethod: models.PaymentCash},
		Items: []handlers.SaleItemRequest{
			{ProductID: soda.ID, Quantity: 2, UnitPrice: "5.50", TotalPrice: "11.00"},
			{ProductID: soda.ID, Quantity: 2, UnitPrice: "5.50", TotalPrice: "11.00"},
		},
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 Conflict, got %d", w.Code)
	}
}

func TestCreateSaleHandler_UnknownProduct(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodPost, "/api/sales", handlers.SaleRequest{
		Sale: handlers.SaleHeaderRequest{TotalAmount: "5.50", PaymentMethod: models.PaymentCash},
		Items: []handlers.SaleItemRequest{
			{ProductID: 99, Quantity: 1, UnitPrice: "5.50", TotalPrice: "5.50"},
		},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestCreateSaleHandler_Invalid(t *testing.T) {
	e := newTestEnv(t)
	soda := e.createProduct(t, "Refrigerante", "002", "5.50", 8)

	tests := []struct {
		name          string
		payload       handlers.SaleRequest
		expectedField string
	}{
		{
			name: "no items",
			payload: handlers.SaleRequest{
				Sale: handlers.SaleHeaderRequest{TotalAmount: "0.00", PaymentMethod: models.PaymentCash},
			},
			expectedField: "items",
		},
		{
			name: "bad payment method",
			payload: handlers.SaleRequest{
				Sale: handlers.SaleHeaderRequest{TotalAmount: "5.50", PaymentMethod: "check"},
				Items: []handlers.SaleItemRequest{
					{ProductID: soda.ID, Quantity: 1, UnitPrice: "5.50", TotalPrice: "5.50"},
				},
			},
			expectedField: "payment_method",
		},
		{
			name: "zero quantity",
			payload: handlers.SaleRequest{
				Sale: handlers.SaleHeaderRequest{TotalAmount: "5.50", PaymentMethod: models.PaymentPix},
				Items: []handlers.SaleItemRequest{
					{ProductID: soda.ID, Quantity: 0, UnitPrice: "5.50", TotalPrice: "5.50"},
				},
			},
			expectedField: "items[0].quantity",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := e.do(t, http.MethodPost, "/api/sales", tc.payload)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 Bad Request, got %d", w.Code)
			}
			var errs []handlers.ValidationError
			decodeBody(t, w, &errs)
			if !containsField(errs, tc.expectedField) {
				t.Errorf("expected error for field %q, got %v", tc.expectedField, fieldNames(errs))
			}
		})
	}
}

func TestGetSalesHandler_DateRange(t *testing.T) {
	e := newTestEnv(t)
	soda := e.createProduct(t, "Refrigerante", "002", "5.50", 50)

	for range 3 {
		w := e.do(t, http.MethodPost, "/api/sales", handlers.SaleRequest{
			Sale: handlers.SaleHeaderRequest{TotalAmount: "5.50", PaymentMethod: models.PaymentCash},
			Items: []handlers.SaleItemRequest{
				{ProductID: soda.ID, Quantity: 1, UnitPrice: "5.50", TotalPrice: "5.50"},
			},
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201 Created, got %d", w.Code)
		}
	}

	w := e.do(t, http.MethodGet, "/api/sales", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var sales []models.Sale
	decodeBody(t, w, &sales)
	if len(sales) != 3 {
		t.Fatalf("expected 3 sales, got %d", len(sales))
	}

	// Today's sales fall inside a window covering today.
	today := sales[0].CreatedAt.Format("2006-01-02")
	w = e.do(t, http.MethodGet, "/api/sales?startDate="+today+"&endDate="+today+"T23:59:59Z", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	// A window in the past matches nothing.
	w = e.do(t, http.MethodGet, "/api/sales?startDate=2000-01-01&endDate=2000-01-02", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	decodeBody(t, w, &sales)
	if len(sales) != 0 {
		t.Errorf("expected no sales in past window, got %d", len(sales))
	}

	w = e.do(t, http.MethodGet, "/api/sales?startDate=not-a-date&endDate=2000-01-02", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestGetSaleItemsHandler(t *testing.T) {
	e := newTestEnv(t)
	soda := e.createProduct(t, "Refrigerante", "002", "5.50", 8)

	w := e.do(t, http.MethodPost, "/api/sales", handlers.SaleRequest{
		Sale: handlers.SaleHeaderRequest{TotalAmount: "11.00", PaymentMethod: models.PaymentCard},
		Items: []handlers.SaleItemRequest{
			{ProductID: soda.ID, Quantity: 2, UnitPrice: "5.50", TotalPrice: "11.00"},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	w = e.do(t, http.MethodGet, "/api/sales/1/items", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var items []models.SaleItem
	decodeBody(t, w, &items)
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Errorf("unexpected items: %v", items)
	}
}
