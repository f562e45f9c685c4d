package jobs

import (
	"log"

	"github.com/lanchepoint/pos-api/internal/repo"
	"github.com/robfig/cron/v3"
)

// StartLowStockReporter schedules a daily end-of-shift report listing
// products at or below their restock threshold.
func StartLowStockReporter(products repo.ProductRepository) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("0 18 * * *", func() {
		low, err := products.GetLowStock()
		if err != nil {
			log.Printf("low-stock report failed: %v", err)
			return
		}
		if len(low) == 0 {
			log.Println("low-stock report: all products above threshold")
			return
		}
		log.Printf("low-stock report: %d product(s) need restocking", len(low))
		for _, p := range low {
			log.Printf("  [%s] %s: %d left (min %d)", p.Code, p.Name, p.StockQuantity, p.MinStock)
		}
	})
	if err != nil {
		log.Printf("could not schedule low-stock report: %v", err)
		return c
	}
	c.Start()
	return c
}
