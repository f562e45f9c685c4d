package models

import "time"

// Payment methods accepted at the till.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
	PaymentPix  = "pix"
)

// Sale statuses.
const (
	SalePending   = "pending"
	SaleCompleted = "completed"
	SaleCancelled = "cancelled"
)

// Sale is a checkout header. TotalAmount is a decimal string; the client
// computes it as the sum of the line items before submission.
type Sale struct {
	ID            int       `json:"id"`
	CustomerID    *int      `json:"customer_id"`
	TotalAmount   string    `json:"total_amount"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// SaleItem is one line of a sale. TotalPrice is expected to equal
// UnitPrice x Quantity but is taken as submitted.
type SaleItem struct {
	ID         int    `json:"id"`
	SaleID     int    `json:"sale_id"`
	ProductID  int    `json:"product_id"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	TotalPrice string `json:"total_price"`
}
