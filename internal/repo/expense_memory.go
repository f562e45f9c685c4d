package repo

import (
	"sort"
	"sync"
	"time"

	"github.com/lanchepoint/pos-api/internal/models"
)

// InMemoryExpenseRepository is an in-memory implementation of
// ExpenseRepository.
type InMemoryExpenseRepository struct {
	mu       sync.RWMutex
	expenses map[int]models.Expense
	nextID   int
}

// NewInMemoryExpenseRepository creates a new instance of
// InMemoryExpenseRepository.
func NewInMemoryExpenseRepository() *InMemoryExpenseRepository {
	return &InMemoryExpenseRepository{
		expenses: make(map[int]models.Expense),
		nextID:   1,
	}
}

func (r *InMemoryExpenseRepository) Create(expense models.Expense) (models.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	expense.ID = r.nextID
	r.nextID++
	r.expenses[expense.ID] = expense
	return expense, nil
}

func (r *InMemoryExpenseRepository) GetAll() ([]models.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filteredLocked(func(models.Expense) bool { return true }), nil
}

func (r *InMemoryExpenseRepository) GetByDateRange(start, end time.Time) ([]models.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filteredLocked(func(e models.Expense) bool {
		return !e.CreatedAt.Before(start) && !e.CreatedAt.After(end)
	}), nil
}

func (r *InMemoryExpenseRepository) filteredLocked(match func(models.Expense) bool) []models.Expense {
	expenses := []models.Expense{}
	for _, e := range r.expenses {
		if match(e) {
			expenses = append(expenses, e)
		}
	}
	sort.Slice(expenses, func(i, j int) bool { return expenses[i].ID < expenses[j].ID })
	return expenses
}
