package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/lanchepoint/pos-api/internal/models"
)

// PostgresExpenseRepository is the database-backed ExpenseRepository.
type PostgresExpenseRepository struct {
	db *sql.DB
}

// NewPostgresExpenseRepository creates a new PostgresExpenseRepository.
func NewPostgresExpenseRepository(db *sql.DB) *PostgresExpenseRepository {
	return &PostgresExpenseRepository{db: db}
}

func (r *PostgresExpenseRepository) Create(e models.Expense) (models.Expense, error) {
	query := `INSERT INTO expenses (description, amount, category, created_at)
		VALUES ($1, $2, $3, $4) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, e.Description, e.Amount, e.Category, e.CreatedAt).Scan(&e.ID)
	return e, err
}

func (r *PostgresExpenseRepository) GetAll() ([]models.Expense, error) {
	return r.queryExpenses(`SELECT id, description, amount, category, created_at FROM expenses ORDER BY id`)
}

func (r *PostgresExpenseRepository) GetByDateRange(start, end time.Time) ([]models.Expense, error) {
	query := `SELECT id, description, amount, category, created_at
		FROM expenses WHERE created_at >= $1 AND created_at <= $2 ORDER BY id`
	return r.queryExpenses(query, start, end)
}

func (r *PostgresExpenseRepository) queryExpenses(query string, args ...any) ([]models.Expense, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.Category, &e.CreatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}
