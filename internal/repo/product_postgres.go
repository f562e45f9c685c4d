package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/lanchepoint/pos-api/internal/models"
)

// PostgresProductRepository is the database-backed ProductRepository.
type PostgresProductRepository struct {
	db *sql.DB
}

// NewPostgresProductRepository creates a new PostgresProductRepository.
func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

const productColumns = `id, name, code, barcode, price, category_id, stock_quantity, min_stock, is_active, created_at`

func scanProduct(row interface{ Scan(...any) error }) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Code, &p.Barcode, &p.Price, &p.CategoryID,
		&p.StockQuantity, &p.MinStock, &p.IsActive, &p.CreatedAt)
	return p, err
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	query := `INSERT INTO products (name, code, barcode, price, category_id, stock_quantity, min_stock, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, p.Name, p.Code, p.Barcode, p.Price, p.CategoryID,
		p.StockQuantity, p.MinStock, p.IsActive, p.CreatedAt).Scan(&p.ID)
	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return models.Product{}, ErrDuplicatedValueUnique
	}
	return p, err
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	return r.queryProducts(`SELECT ` + productColumns + ` FROM products ORDER BY id`)
}

func (r *PostgresProductRepository) GetByID(id int) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Update(p models.Product) (models.Product, error) {
	query := `UPDATE products SET name = $1, code = $2, barcode = $3, price = $4, category_id = $5,
		stock_quantity = $6, min_stock = $7, is_active = $8 WHERE id = $9`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, p.Name, p.Code, p.Barcode, p.Price, p.CategoryID,
		p.StockQuantity, p.MinStock, p.IsActive, p.ID)
	if err != nil {
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *PostgresProductRepository) Delete(id int) error {
	query := `DELETE FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *PostgresProductRepository) Search(query string) ([]models.Product, error) {
	q := `SELECT ` + productColumns + ` FROM products
		WHERE name ILIKE $1 OR code LIKE $2 OR barcode LIKE $2 ORDER BY id`
	return r.queryProducts(q, "%"+query+"%", "%"+query+"%")
}

func (r *PostgresProductRepository) GetLowStock() ([]models.Product, error) {
	return r.queryProducts(`SELECT ` + productColumns + ` FROM products WHERE stock_quantity <= min_stock ORDER BY id`)
}

func (r *PostgresProductRepository) SetStock(id int, quantity int) (models.Product, error) {
	query := `UPDATE products SET stock_quantity = $1 WHERE id = $2 RETURNING ` + productColumns
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, quantity, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

// AdjustStock runs the guard and the write in a single conditional UPDATE so
// concurrent checkouts serialize on the row.
func (r *PostgresProductRepository) AdjustStock(id int, delta int) (models.Product, error) {
	query := `UPDATE products SET stock_quantity = stock_quantity + $1
		WHERE id = $2 AND stock_quantity + $1 >= 0 RETURNING ` + productColumns
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, delta, id))
	if errors.Is(err, sql.ErrNoRows) {
		if _, getErr := r.GetByID(id); errors.Is(getErr, ErrProductNotFound) {
			return models.Product{}, ErrProductNotFound
		}
		return models.Product{}, ErrInvalidStockChange
	}
	return p, err
}

func (r *PostgresProductRepository) queryProducts(query string, args ...any) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
