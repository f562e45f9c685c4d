package repo

import (
	"sort"
	"time"
)

// InMemoryAnalyticsRepository computes aggregates by scanning the sale and
// product repositories it is composed over.
type InMemoryAnalyticsRepository struct {
	sales    SaleRepository
	products ProductRepository
}

// NewInMemoryAnalyticsRepository creates a new instance of
// InMemoryAnalyticsRepository.
func NewInMemoryAnalyticsRepository(sales SaleRepository, products ProductRepository) *InMemoryAnalyticsRepository {
	return &InMemoryAnalyticsRepository{sales: sales, products: products}
}

// GetDailySales summarizes the sales of the local calendar day of date.
func (r *InMemoryAnalyticsRepository) GetDailySales(date time.Time) (DailySalesSummary, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)

	sales, err := r.sales.GetByDateRange(start, end)
	if err != nil {
		return DailySalesSummary{}, err
	}

	summary := DailySalesSummary{PaymentMethods: map[string]float64{}}
	for _, s := range sales {
		amount := parseAmount(s.TotalAmount)
		summary.Total += amount
		summary.Count++
		summary.PaymentMethods[s.PaymentMethod] += amount
	}

	summary.Total = round2(summary.Total)
	for method, amount := range summary.PaymentMethods {
		summary.PaymentMethods[method] = round2(amount)
	}
	return summary, nil
}

// GetTopProducts ranks products by units sold across all sale items.
func (r *InMemoryAnalyticsRepository) GetTopProducts(limit int) ([]ProductSales, error) {
	items, err := r.sales.GetAllItems()
	if err != nil {
		return nil, err
	}

	type stats struct {
		sold    int
		revenue float64
	}
	perProduct := make(map[int]stats)
	for _, item := range items {
		s := perProduct[item.ProductID]
		s.sold += item.Quantity
		s.revenue += parseAmount(item.TotalPrice)
		perProduct[item.ProductID] = s
	}

	results := []ProductSales{}
	for productID, s := range perProduct {
		// Items pointing at a deleted product are skipped, as the original
		// ranking did.
		product, err := r.products.GetByID(productID)
		if err != nil {
			continue
		}
		results = append(results, ProductSales{
			Product:   product,
			TotalSold: s.sold,
			Revenue:   round2(s.revenue),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].TotalSold != results[j].TotalSold {
			return results[i].TotalSold > results[j].TotalSold
		}
		return results[i].Product.ID < results[j].Product.ID
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
