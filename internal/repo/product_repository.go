package repo

import "github.com/lanchepoint/pos-api/internal/models"

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int) error

	// Search matches the query case-insensitively against the name and as a
	// substring against code and barcode.
	Search(query string) ([]models.Product, error)
	// GetLowStock returns products with stock_quantity <= min_stock.
	GetLowStock() ([]models.Product, error)
	// SetStock overwrites the stock quantity with an absolute value.
	SetStock(id int, quantity int) (models.Product, error)
	// AdjustStock applies a delta and fails with ErrInvalidStockChange if the
	// result would be negative. The check and the write happen under the same
	// guard, so concurrent sales cannot oversell.
	AdjustStock(id int, delta int) (models.Product, error)
}
