package models

import "time"

// Product represents a sellable item. Price is a decimal string with two
// places so monetary values never pass through binary floating point on the
// wire. Code is the vendor-assigned SKU, distinct from the numeric id.
type Product struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	Barcode       *string   `json:"barcode"`
	Price         string    `json:"price"`
	CategoryID    *int      `json:"category_id"`
	StockQuantity int       `json:"stock_quantity"`
	MinStock      int       `json:"min_stock"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// LowStock reports whether the product is at or below its restock threshold.
func (p Product) LowStock() bool {
	return p.StockQuantity <= p.MinStock
}
