package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/lanchepoint/pos-api/internal/models"
)

// PostgresAnalyticsRepository pushes the rollups down to SQL instead of
// scanning in process.
type PostgresAnalyticsRepository struct {
	db *sql.DB
}

// NewPostgresAnalyticsRepository creates a new PostgresAnalyticsRepository.
func NewPostgresAnalyticsRepository(db *sql.DB) *PostgresAnalyticsRepository {
	return &PostgresAnalyticsRepository{db: db}
}

func (r *PostgresAnalyticsRepository) GetDailySales(date time.Time) (DailySalesSummary, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)

	query := `SELECT payment_method, COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM sales WHERE created_at >= $1 AND created_at <= $2 GROUP BY payment_method`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return DailySalesSummary{}, err
	}
	defer rows.Close()

	summary := DailySalesSummary{PaymentMethods: map[string]float64{}}
	for rows.Next() {
		var method string
		var count int
		var amount float64
		if err := rows.Scan(&method, &count, &amount); err != nil {
			return DailySalesSummary{}, err
		}
		summary.Count += count
		summary.Total += amount
		summary.PaymentMethods[method] = round2(amount)
	}
	summary.Total = round2(summary.Total)
	return summary, rows.Err()
}

func (r *PostgresAnalyticsRepository) GetTopProducts(limit int) ([]ProductSales, error) {
	query := `SELECT p.id, p.name, p.code, p.barcode, p.price, p.category_id,
			p.stock_quantity, p.min_stock, p.is_active, p.created_at,
			SUM(si.quantity) AS total_sold, SUM(si.total_price) AS revenue
		FROM sale_items si
		JOIN products p ON p.id = si.product_id
		GROUP BY p.id
		ORDER BY total_sold DESC, p.id
		LIMIT $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []ProductSales{}
	for rows.Next() {
		var p models.Product
		var row ProductSales
		var revenue float64
		if err := rows.Scan(&p.ID, &p.Name, &p.Code, &p.Barcode, &p.Price, &p.CategoryID,
			&p.StockQuantity, &p.MinStock, &p.IsActive, &p.CreatedAt,
			&row.TotalSold, &revenue); err != nil {
			return nil, err
		}
		row.Product = p
		row.Revenue = round2(revenue)
		results = append(results, row)
	}
	return results, rows.Err()
}
