package repo

import "github.com/lanchepoint/pos-api/internal/models"

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	Create(category models.Category) (models.Category, error)
	GetAll() ([]models.Category, error)
}
