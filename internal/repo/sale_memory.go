package repo

import (
	"sort"
	"sync"
	"time"

	"github.com/lanchepoint/pos-api/internal/models"
)

// InMemorySaleRepository is an in-memory implementation of SaleRepository.
// Sales and items share the lock because the checkout flow writes both.
type InMemorySaleRepository struct {
	mu         sync.RWMutex
	sales      map[int]models.Sale
	items      map[int]models.SaleItem
	nextSaleID int
	nextItemID int
}

// NewInMemorySaleRepository creates a new instance of InMemorySaleRepository.
func NewInMemorySaleRepository() *InMemorySaleRepository {
	return &InMemorySaleRepository{
		sales:      make(map[int]models.Sale),
		items:      make(map[int]models.SaleItem),
		nextSaleID: 1,
		nextItemID: 1,
	}
}

func (r *InMemorySaleRepository) Create(sale models.Sale) (models.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sale.ID = r.nextSaleID
	r.nextSaleID++
	if sale.Status == "" {
		sale.Status = models.SaleCompleted
	}
	r.sales[sale.ID] = sale
	return sale, nil
}

func (r *InMemorySaleRepository) GetAll() ([]models.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filteredLocked(func(models.Sale) bool { return true }), nil
}

// GetByDateRange returns sales created within [start, end] inclusive.
func (r *InMemorySaleRepository) GetByDateRange(start, end time.Time) ([]models.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filteredLocked(func(s models.Sale) bool {
		return !s.CreatedAt.Before(start) && !s.CreatedAt.After(end)
	}), nil
}

func (r *InMemorySaleRepository) CreateItem(item models.SaleItem) (models.SaleItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sales[item.SaleID]; !ok {
		return models.SaleItem{}, ErrSaleNotFound
	}
	item.ID = r.nextItemID
	r.nextItemID++
	r.items[item.ID] = item
	return item, nil
}

func (r *InMemorySaleRepository) GetItems(saleID int) ([]models.SaleItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := []models.SaleItem{}
	for _, item := range r.items {
		if item.SaleID == saleID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *InMemorySaleRepository) GetAllItems() ([]models.SaleItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.SaleItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *InMemorySaleRepository) filteredLocked(match func(models.Sale) bool) []models.Sale {
	sales := []models.Sale{}
	for _, s := range r.sales {
		if match(s) {
			sales = append(sales, s)
		}
	}
	sort.Slice(sales, func(i, j int) bool { return sales[i].ID < sales[j].ID })
	return sales
}
