package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/lanchepoint/pos-api/internal/auth"
	"github.com/lanchepoint/pos-api/internal/config"
	"github.com/lanchepoint/pos-api/internal/db"
	api "github.com/lanchepoint/pos-api/internal/http"
	"github.com/lanchepoint/pos-api/internal/http/handlers"
	rl "github.com/lanchepoint/pos-api/internal/http/rate_limiter"
	"github.com/lanchepoint/pos-api/internal/jobs"
	"github.com/lanchepoint/pos-api/internal/redissvc"
	"github.com/lanchepoint/pos-api/internal/repo"
)

// @title Lanche Point POS API
// @version 1.0
// @description REST API for the point-of-sale: catalog, customers, checkout and daily reports.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.JWTSecret != "" {
		auth.SetSecret(cfg.JWTSecret)
	}

	var (
		userRepo      repo.UserRepository
		categoryRepo  repo.CategoryRepository
		productRepo   repo.ProductRepository
		customerRepo  repo.CustomerRepository
		saleRepo      repo.SaleRepository
		expenseRepo   repo.ExpenseRepository
		analyticsRepo repo.AnalyticsRepository
	)

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("could not connect to database: ", err)
		}
		defer database.Close()

		userRepo = repo.NewPostgresUserRepository(database)
		categoryRepo = repo.NewPostgresCategoryRepository(database)
		productRepo = repo.NewPostgresProductRepository(database)
		customerRepo = repo.NewPostgresCustomerRepository(database)
		saleRepo = repo.NewPostgresSaleRepository(database)
		expenseRepo = repo.NewPostgresExpenseRepository(database)
		analyticsRepo = repo.NewPostgresAnalyticsRepository(database)
		log.Println("storage: postgres")
	} else {
		users := repo.NewInMemoryUserRepository()
		categories := repo.NewInMemoryCategoryRepository()
		products := repo.NewInMemoryProductRepository()
		customers := repo.NewInMemoryCustomerRepository()
		sales := repo.NewInMemorySaleRepository()

		if err := repo.Seed(users, categories, products, customers); err != nil {
			log.Fatal("could not seed demo data: ", err)
		}

		userRepo = users
		categoryRepo = categories
		productRepo = products
		customerRepo = customers
		saleRepo = sales
		expenseRepo = repo.NewInMemoryExpenseRepository()
		analyticsRepo = repo.NewInMemoryAnalyticsRepository(sales, products)
		log.Println("storage: in-memory with demo seed data")
	}

	handlers.SetUserRepo(userRepo)
	handlers.SetCategoryRepo(categoryRepo)
	handlers.SetProductRepo(productRepo)
	handlers.SetCustomerRepo(customerRepo)
	handlers.SetSaleRepo(saleRepo)
	handlers.SetExpenseRepo(expenseRepo)
	handlers.SetAnalyticsRepo(analyticsRepo)

	if cfg.RedisAddr != "" {
		ctx := context.Background()
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("redis unavailable, analytics cache disabled: %v", err)
		} else {
			defer rdb.Close()
			handlers.SetCache(redissvc.NewRedisService(rdb, ctx))
			log.Println("analytics cache: redis at", cfg.RedisAddr)
		}
	}

	reporter := jobs.StartLowStockReporter(productRepo)
	defer reporter.Stop()
	go rl.StartVisitorCleanupLoop()

	r := api.NewRouter()
	log.Println("server running on :" + cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
