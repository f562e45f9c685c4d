package repo

import (
	"time"

	"github.com/lanchepoint/pos-api/internal/models"
)

// SaleRepository defines the interface for sale headers and their line
// items. Sales and items are append-only.
type SaleRepository interface {
	Create(sale models.Sale) (models.Sale, error)
	GetAll() ([]models.Sale, error)
	// GetByDateRange returns sales created within [start, end] inclusive.
	GetByDateRange(start, end time.Time) ([]models.Sale, error)
	CreateItem(item models.SaleItem) (models.SaleItem, error)
	GetItems(saleID int) ([]models.SaleItem, error)
	GetAllItems() ([]models.SaleItem, error)
}
