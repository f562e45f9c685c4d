package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	models "github.com/lanchepoint/pos-api/internal/models"
	repo "github.com/lanchepoint/pos-api/internal/repo"
)

// GetCustomersHandler godoc
// @Summary List all customers
// @Tags customers
// @Produce json
// @Success 200 {array} models.Customer
// @Failure 500 {object} map[string]string
// @Router /api/customers [get]
func GetCustomersHandler(w http.ResponseWriter, r *http.Request) {
	customers, err := customerRepo.GetAll()
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

// CreateCustomerHandler godoc
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body CustomerRequest true "Customer to add"
// @Success 201 {object} models.Customer
// @Failure 400 {array} ValidationError
// @Router /api/customers [post]
func CreateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	if validationErrors := validateCustomer(req.Name); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	customer := models.Customer{
		Name:      req.Name,
		CPF:       req.CPF,
		Phone:     req.Phone,
		Email:     req.Email,
		CreatedAt: time.Now(),
	}
	created, err := customerRepo.Create(customer)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "could not create customer")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateCustomerHandler godoc
// @Summary Update a customer with a partial payload
// @Tags customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param customer body CustomerUpdateRequest true "Fields to change"
// @Success 200 {object} models.Customer
// @Failure 400 {array} ValidationError
// @Failure 404 {object} map[string]string
// @Router /api/customers/{id} [patch]
func UpdateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid customer ID")
		return
	}

	var req CustomerUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	if req.Name != nil {
		if validationErrors := validateCustomer(*req.Name); len(validationErrors) > 0 {
			writeJSON(w, http.StatusBadRequest, validationErrors)
			return
		}
	}

	customer, err := customerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrCustomerNotFound) {
			errorJSON(w, http.StatusNotFound, "Customer not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "could not fetch customer")
		return
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.CPF != nil {
		customer.CPF = req.CPF
	}
	if req.Phone != nil {
		customer.Phone = req.Phone
	}
	if req.Email != nil {
		customer.Email = req.Email
	}

	updated, err := customerRepo.Update(customer)
	if err != nil {
		if errors.Is(err, repo.ErrCustomerNotFound) {
			errorJSON(w, http.StatusNotFound, "Customer not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "could not update customer")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteCustomerHandler godoc
// @Summary Delete a customer
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/customers/{id} [delete]
func DeleteCustomerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid customer ID")
		return
	}

	if err := customerRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrCustomerNotFound) {
			errorJSON(w, http.StatusNotFound, "Customer not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "could not delete customer")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Customer deleted successfully"})
}
