package repo

import (
	"time"

	"github.com/lanchepoint/pos-api/internal/models"
)

// ExpenseRepository defines the interface for expense entries.
type ExpenseRepository interface {
	Create(expense models.Expense) (models.Expense, error)
	GetAll() ([]models.Expense, error)
	GetByDateRange(start, end time.Time) ([]models.Expense, error)
}
