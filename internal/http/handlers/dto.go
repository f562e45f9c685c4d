package handlers

import "github.com/lanchepoint/pos-api/internal/models"

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

type MeResult struct {
	User models.User `json:"user"`
}

// ProductRequest is the create payload. Optional fields are pointers so
// omitted values take their defaults (stock 0, min_stock 5, active true).
type ProductRequest struct {
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	Barcode       *string `json:"barcode"`
	Price         string  `json:"price"`
	CategoryID    *int    `json:"category_id"`
	StockQuantity *int    `json:"stock_quantity"`
	MinStock      *int    `json:"min_stock"`
	IsActive      *bool   `json:"is_active"`
}

// ProductUpdateRequest is the partial update payload; absent fields keep
// their prior values.
type ProductUpdateRequest struct {
	Name          *string `json:"name"`
	Code          *string `json:"code"`
	Barcode       *string `json:"barcode"`
	Price         *string `json:"price"`
	CategoryID    *int    `json:"category_id"`
	StockQuantity *int    `json:"stock_quantity"`
	MinStock      *int    `json:"min_stock"`
	IsActive      *bool   `json:"is_active"`
}

type StockAdjustmentRequest struct {
	Delta int `json:"delta"` // can be positive or negative
}

type CategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type CustomerRequest struct {
	Name  string  `json:"name"`
	CPF   *string `json:"cpf"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

type CustomerUpdateRequest struct {
	Name  *string `json:"name"`
	CPF   *string `json:"cpf"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

type SaleHeaderRequest struct {
	CustomerID    *int   `json:"customer_id"`
	TotalAmount   string `json:"total_amount"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
}

type SaleItemRequest struct {
	ProductID  int    `json:"product_id"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	TotalPrice string `json:"total_price"`
}

type SaleRequest struct {
	Sale  SaleHeaderRequest `json:"sale"`
	Items []SaleItemRequest `json:"items"`
}

type SaleResult struct {
	Sale  models.Sale       `json:"sale"`
	Items []models.SaleItem `json:"items"`
}

type ExpenseRequest struct {
	Description string  `json:"description"`
	Amount      string  `json:"amount"`
	Category    *string `json:"category"`
}
