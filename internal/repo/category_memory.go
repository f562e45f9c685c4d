package repo

import (
	"sort"
	"sync"

	"github.com/lanchepoint/pos-api/internal/models"
)

// InMemoryCategoryRepository is an in-memory implementation of
// CategoryRepository.
type InMemoryCategoryRepository struct {
	mu         sync.RWMutex
	categories map[int]models.Category
	nextID     int
}

// NewInMemoryCategoryRepository creates a new instance of
// InMemoryCategoryRepository.
func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{
		categories: make(map[int]models.Category),
		nextID:     1,
	}
}

func (r *InMemoryCategoryRepository) Create(category models.Category) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category.ID = r.nextID
	r.nextID++
	r.categories[category.ID] = category
	return category, nil
}

func (r *InMemoryCategoryRepository) GetAll() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}
