package repo

import (
	"sort"
	"strings"
	"sync"

	"github.com/lanchepoint/pos-api/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository. The mutex covers every read-modify-write, including the
// stock adjustment used by the checkout flow.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products map[int]models.Product
	nextID   int
}

// NewInMemoryProductRepository creates a new instance of
// InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: make(map[int]models.Product),
		nextID:   1,
	}
}

// Create adds a new product. The code column is unique.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.Code == product.Code {
			return models.Product{}, ErrDuplicatedValueUnique
		}
	}

	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = product
	return product, nil
}

// GetAll retrieves all products ordered by id.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedLocked(func(models.Product) bool { return true }), nil
}

// GetByID retrieves a product by its id.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Update replaces an existing product record.
func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return models.Product{}, ErrProductNotFound
	}
	r.products[product.ID] = product
	return product, nil
}

// Delete removes a product by its id.
func (r *InMemoryProductRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

// Search matches name case-insensitively and code/barcode as substrings.
func (r *InMemoryProductRepository) Search(query string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	return r.sortedLocked(func(p models.Product) bool {
		if strings.Contains(strings.ToLower(p.Name), q) {
			return true
		}
		if strings.Contains(p.Code, query) {
			return true
		}
		return p.Barcode != nil && strings.Contains(*p.Barcode, query)
	}), nil
}

// GetLowStock returns products at or below their restock threshold.
func (r *InMemoryProductRepository) GetLowStock() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedLocked(models.Product.LowStock), nil
}

// SetStock overwrites the stock quantity with an absolute value.
func (r *InMemoryProductRepository) SetStock(id int, quantity int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	p.StockQuantity = quantity
	r.products[id] = p
	return p, nil
}

// AdjustStock applies a delta, refusing changes that would go negative. The
// guard and the write share the lock so two concurrent sales of the last
// unit cannot both succeed.
func (r *InMemoryProductRepository) AdjustStock(id int, delta int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	if p.StockQuantity+delta < 0 {
		return models.Product{}, ErrInvalidStockChange
	}
	p.StockQuantity += delta
	r.products[id] = p
	return p, nil
}

// Clear empties the repository. Used by tests.
func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = make(map[int]models.Product)
}

func (r *InMemoryProductRepository) sortedLocked(match func(models.Product) bool) []models.Product {
	products := []models.Product{}
	for _, p := range r.products {
		if match(p) {
			products = append(products, p)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products
}
