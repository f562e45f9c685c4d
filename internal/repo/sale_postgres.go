package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/lanchepoint/pos-api/internal/models"
)

// PostgresSaleRepository is the database-backed SaleRepository.
type PostgresSaleRepository struct {
	db *sql.DB
}

// NewPostgresSaleRepository creates a new PostgresSaleRepository.
func NewPostgresSaleRepository(db *sql.DB) *PostgresSaleRepository {
	return &PostgresSaleRepository{db: db}
}

func (r *PostgresSaleRepository) Create(s models.Sale) (models.Sale, error) {
	query := `INSERT INTO sales (customer_id, total_amount, payment_method, status, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if s.Status == "" {
		s.Status = models.SaleCompleted
	}
	err := r.db.QueryRowContext(ctx, query, s.CustomerID, s.TotalAmount, s.PaymentMethod, s.Status, s.CreatedAt).Scan(&s.ID)
	return s, err
}

func (r *PostgresSaleRepository) GetAll() ([]models.Sale, error) {
	return r.querySales(`SELECT id, customer_id, total_amount, payment_method, status, created_at FROM sales ORDER BY id`)
}

func (r *PostgresSaleRepository) GetByDateRange(start, end time.Time) ([]models.Sale, error) {
	query := `SELECT id, customer_id, total_amount, payment_method, status, created_at
		FROM sales WHERE created_at >= $1 AND created_at <= $2 ORDER BY id`
	return r.querySales(query, start, end)
}

func (r *PostgresSaleRepository) CreateItem(item models.SaleItem) (models.SaleItem, error) {
	query := `INSERT INTO sale_items (sale_id, product_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, item.SaleID, item.ProductID, item.Quantity, item.UnitPrice, item.TotalPrice).Scan(&item.ID)
	return item, err
}

func (r *PostgresSaleRepository) GetItems(saleID int) ([]models.SaleItem, error) {
	query := `SELECT id, sale_id, product_id, quantity, unit_price, total_price
		FROM sale_items WHERE sale_id = $1 ORDER BY id`
	return r.queryItems(query, saleID)
}

func (r *PostgresSaleRepository) GetAllItems() ([]models.SaleItem, error) {
	return r.queryItems(`SELECT id, sale_id, product_id, quantity, unit_price, total_price FROM sale_items ORDER BY id`)
}

func (r *PostgresSaleRepository) querySales(query string, args ...any) ([]models.Sale, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := []models.Sale{}
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(&s.ID, &s.CustomerID, &s.TotalAmount, &s.PaymentMethod, &s.Status, &s.CreatedAt); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (r *PostgresSaleRepository) queryItems(query string, args ...any) ([]models.SaleItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.SaleItem{}
	for rows.Next() {
		var item models.SaleItem
		if err := rows.Scan(&item.ID, &item.SaleID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.TotalPrice); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
