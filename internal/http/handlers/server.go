package handlers

import (
	"github.com/lanchepoint/pos-api/internal/redissvc"
	repo "github.com/lanchepoint/pos-api/internal/repo"
)

var (
	userRepo      repo.UserRepository
	categoryRepo  repo.CategoryRepository
	productRepo   repo.ProductRepository
	customerRepo  repo.CustomerRepository
	saleRepo      repo.SaleRepository
	expenseRepo   repo.ExpenseRepository
	analyticsRepo repo.AnalyticsRepository

	// cache is nil when Redis is not configured; redissvc treats a nil
	// receiver as a miss.
	cache *redissvc.RedisService
)

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetCategoryRepo(r repo.CategoryRepository) {
	categoryRepo = r
}

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetCustomerRepo(r repo.CustomerRepository) {
	customerRepo = r
}

func SetSaleRepo(r repo.SaleRepository) {
	saleRepo = r
}

func SetExpenseRepo(r repo.ExpenseRepository) {
	expenseRepo = r
}

func SetAnalyticsRepo(r repo.AnalyticsRepository) {
	analyticsRepo = r
}

func SetCache(c *redissvc.RedisService) {
	cache = c
}
