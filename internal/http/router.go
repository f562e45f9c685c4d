package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lanchepoint/pos-api/internal/http/handlers"
	rl "github.com/lanchepoint/pos-api/internal/http/rate_limiter"
	"github.com/lanchepoint/pos-api/internal/metrics"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter wires the REST surface. Paths match the original client exactly.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(metrics.Middleware)

	r.Route("/api", func(api chi.Router) {
		api.With(rl.Middleware).Post("/auth/login", handlers.LoginHandler)
		api.With(AuthMiddleware).Get("/auth/me", handlers.MeHandler)

		api.Get("/products", handlers.GetProductsHandler)
		api.Get("/products/search", handlers.SearchProductsHandler)
		api.Get("/products/low-stock", handlers.LowStockProductsHandler)
		api.Post("/products", handlers.CreateProductHandler)
		api.Put("/products/{id}", handlers.UpdateProductHandler)
		api.Delete("/products/{id}", handlers.DeleteProductHandler)
		api.Post("/products/{id}/adjust", handlers.AdjustStockHandler)

		api.Get("/categories", handlers.GetCategoriesHandler)
		api.Post("/categories", handlers.CreateCategoryHandler)

		api.Get("/customers", handlers.GetCustomersHandler)
		api.Post("/customers", handlers.CreateCustomerHandler)
		api.Patch("/customers/{id}", handlers.UpdateCustomerHandler)
		api.Delete("/customers/{id}", handlers.DeleteCustomerHandler)

		api.Get("/sales", handlers.GetSalesHandler)
		api.Post("/sales", handlers.CreateSaleHandler)
		api.Get("/sales/{id}/items", handlers.GetSaleItemsHandler)

		api.Get("/expenses", handlers.GetExpensesHandler)
		api.Post("/expenses", handlers.CreateExpenseHandler)

		api.Get("/analytics/daily-sales", handlers.DailySalesHandler)
		api.Get("/analytics/top-products", handlers.TopProductsHandler)
	})

	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
