package repo

import (
	"sort"
	"sync"

	"github.com/lanchepoint/pos-api/internal/models"
)

// InMemoryCustomerRepository is an in-memory implementation of
// CustomerRepository.
type InMemoryCustomerRepository struct {
	mu        sync.RWMutex
	customers map[int]models.Customer
	nextID    int
}

// NewInMemoryCustomerRepository creates a new instance of
// InMemoryCustomerRepository.
func NewInMemoryCustomerRepository() *InMemoryCustomerRepository {
	return &InMemoryCustomerRepository{
		customers: make(map[int]models.Customer),
		nextID:    1,
	}
}

func (r *InMemoryCustomerRepository) Create(customer models.Customer) (models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	customer.ID = r.nextID
	r.nextID++
	r.customers[customer.ID] = customer
	return customer, nil
}

func (r *InMemoryCustomerRepository) GetAll() ([]models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]models.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		customers = append(customers, c)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].ID < customers[j].ID })
	return customers, nil
}

func (r *InMemoryCustomerRepository) GetByID(id int) (models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.customers[id]
	if !ok {
		return models.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (r *InMemoryCustomerRepository) Update(customer models.Customer) (models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[customer.ID]; !ok {
		return models.Customer{}, ErrCustomerNotFound
	}
	r.customers[customer.ID] = customer
	return customer, nil
}

func (r *InMemoryCustomerRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[id]; !ok {
		return ErrCustomerNotFound
	}
	delete(r.customers, id)
	return nil
}
