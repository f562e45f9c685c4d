package repo

import (
	"time"

	"github.com/lanchepoint/pos-api/internal/models"
)

// DailySalesSummary aggregates the sales of one calendar day.
type DailySalesSummary struct {
	Total          float64            `json:"total"`
	Count          int                `json:"count"`
	PaymentMethods map[string]float64 `json:"payment_methods"`
}

// ProductSales is one row of the top-products ranking.
type ProductSales struct {
	Product   models.Product `json:"product"`
	TotalSold int            `json:"total_sold"`
	Revenue   float64        `json:"revenue"`
}

// AnalyticsRepository defines the aggregate queries behind the reports
// screens.
type AnalyticsRepository interface {
	// GetDailySales summarizes the sales of the local calendar day of date.
	GetDailySales(date time.Time) (DailySalesSummary, error)
	// GetTopProducts ranks products by units sold, descending, truncated to
	// limit. Ties are broken by ascending product id.
	GetTopProducts(limit int) ([]ProductSales, error)
}
