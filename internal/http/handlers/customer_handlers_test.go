package handlers_test

import (
	"net/http"
	"testing"

	"github.com/lanchepoint/pos-api/internal/http/handlers"
	"github.com/lanchepoint/pos-api/internal/models"
)

func TestCreateCustomerHandler(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodPost, "/api/customers", handlers.CustomerRequest{
		Name:  "João Silva",
		CPF:   strPtr("123.456.789-00"),
		Phone: strPtr("(11) 99999-9999"),
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var created models.Customer
	decodeBody(t, w, &created)
	if created.ID != 1 {
		t.Errorf("expected id 1, got %d", created.ID)
	}
	if created.Email != nil {
		t.Errorf("expected nil email, got %v", *created.Email)
	}
	if created.CPF == nil || *created.CPF != "123.456.789-00" {
		t.Errorf("expected cpf preserved, got %v", created.CPF)
	}
}

func TestCreateCustomerHandler_MissingName(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodPost, "/api/customers", handlers.CustomerRequest{Phone: strPtr("(11) 99999-9999")})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}
	var errs []handlers.ValidationError
	decodeBody(t, w, &errs)
	if !containsField(errs, "name") {
		t.Errorf("expected error for field name, got %v", fieldNames(errs))
	}
}

func TestUpdateCustomerHandler_PartialMerge(t *testing.T) {
	e := newTestEnv(t)
	created, err := e.customers.Create(models.Customer{Name: "Maria Santos", CPF: strPtr("987.654.321-00")})
	if err != nil {
		t.Fatal(err)
	}

	w := e.do(t, http.MethodPatch, "/api/customers/1", handlers.CustomerUpdateRequest{
		Phone: strPtr("(11) 88888-8888"),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var updated models.Customer
	decodeBody(t, w, &updated)
	if updated.Phone == nil || *updated.Phone != "(11) 88888-8888" {
		t.Errorf("expected phone set, got %v", updated.Phone)
	}
	if updated.Name != created.Name {
		t.Errorf("expected name preserved, got %v", updated.Name)
	}
	if updated.CPF == nil || *updated.CPF != *created.CPF {
		t.Errorf("expected cpf preserved, got %v", updated.CPF)
	}
}

func TestUpdateCustomerHandler_NotFound(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodPatch, "/api/customers/99", handlers.CustomerUpdateRequest{Name: strPtr("Alguém")})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestDeleteCustomerHandler(t *testing.T) {
	e := newTestEnv(t)
	if _, err := e.customers.Create(models.Customer{Name: "Pedro Costa"}); err != nil {
		t.Fatal(err)
	}

	w := e.do(t, http.MethodDelete, "/api/customers/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp map[string]string
	decodeBody(t, w, &resp)
	if resp["message"] != "Customer deleted successfully" {
		t.Errorf("unexpected message: %v", resp["message"])
	}

	w = e.do(t, http.MethodDelete, "/api/customers/1", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 Not Found on second delete, got %d", w.Code)
	}
}

func TestGetCustomersHandler(t *testing.T) {
	e := newTestEnv(t)
	for _, name := range []string{"João Silva", "Maria Santos"} {
		if _, err := e.customers.Create(models.Customer{Name: name}); err != nil {
			t.Fatal(err)
		}
	}

	w := e.do(t, http.MethodGet, "/api/customers", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var customers []models.Customer
	decodeBody(t, w, &customers)
	if len(customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(customers))
	}
}
