package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	api "github.com/lanchepoint/pos-api/internal/http"
	"github.com/lanchepoint/pos-api/internal/http/handlers"
	rl "github.com/lanchepoint/pos-api/internal/http/rate_limiter"
	"github.com/lanchepoint/pos-api/internal/models"
	repo "github.com/lanchepoint/pos-api/internal/repo"
)

// env wires fresh in-memory repositories into the handlers package and keeps
// direct references so tests can inspect state behind the API's back.
type env struct {
	router     http.Handler
	users      *repo.InMemoryUserRepository
	categories *repo.InMemoryCategoryRepository
	products   *repo.InMemoryProductRepository
	customers  *repo.InMemoryCustomerRepository
	sales      *repo.InMemorySaleRepository
	expenses   *repo.InMemoryExpenseRepository
}

func newTestEnv(t *testing.T) *env {
	t.Helper()
	rl.CleanupAllVisitors()

	e := &env{
		users:      repo.NewInMemoryUserRepository(),
		categories: repo.NewInMemoryCategoryRepository(),
		products:   repo.NewInMemoryProductRepository(),
		customers:  repo.NewInMemoryCustomerRepository(),
		sales:      repo.NewInMemorySaleRepository(),
		expenses:   repo.NewInMemoryExpenseRepository(),
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing test password: %v", err)
	}
	if _, err := e.users.CreateUser(models.User{Username: "admin", PasswordHash: string(hash), Role: "owner"}); err != nil {
		t.Fatalf("creating test user: %v", err)
	}

	handlers.SetUserRepo(e.users)
	handlers.SetCategoryRepo(e.categories)
	handlers.SetProductRepo(e.products)
	handlers.SetCustomerRepo(e.customers)
	handlers.SetSaleRepo(e.sales)
	handlers.SetExpenseRepo(e.expenses)
	handlers.SetAnalyticsRepo(repo.NewInMemoryAnalyticsRepository(e.sales, e.products))
	handlers.SetCache(nil)

	e.router = api.NewRouter()
	return e
}

func (e *env) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, path, reader)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(dest); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
}

func (e *env) createProduct(t *testing.T, name, code, price string, stock int) models.Product {
	t.Helper()
	product, err := e.products.Create(models.Product{
		Name:          name,
		Code:          code,
		Price:         price,
		StockQuantity: stock,
		MinStock:      5,
		IsActive:      true,
	})
	if err != nil {
		t.Fatalf("creating product %q: %v", code, err)
	}
	return product
}

func fieldNames(errs []handlers.ValidationError) []string {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}

func containsField(errs []handlers.ValidationError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}
