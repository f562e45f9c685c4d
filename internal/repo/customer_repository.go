package repo

import "github.com/lanchepoint/pos-api/internal/models"

// CustomerRepository defines the interface for customer data operations.
type CustomerRepository interface {
	Create(customer models.Customer) (models.Customer, error)
	GetAll() ([]models.Customer, error)
	GetByID(id int) (models.Customer, error)
	Update(customer models.Customer) (models.Customer, error)
	Delete(id int) error
}
