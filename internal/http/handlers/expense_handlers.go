package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	models "github.com/lanchepoint/pos-api/internal/models"
)

// GetExpensesHandler godoc
// @Summary List expenses, optionally filtered by a date range
// @Tags expenses
// @Produce json
// @Param startDate query string false "Range start (RFC 3339 or YYYY-MM-DD)"
// @Param endDate query string false "Range end (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {array} models.Expense
// @Failure 400 {object} map[string]string
// @Router /api/expenses [get]
func GetExpensesHandler(w http.ResponseWriter, r *http.Request) {
	startParam := r.URL.Query().Get("startDate")
	endParam := r.URL.Query().Get("endDate")

	var (
		expenses []models.Expense
		err      error
	)
	if startParam != "" && endParam != "" {
		var start, end time.Time
		if start, err = parseDateParam(startParam); err != nil {
			errorJSON(w, http.StatusBadRequest, "invalid startDate")
			return
		}
		if end, err = parseDateParam(endParam); err != nil {
			errorJSON(w, http.StatusBadRequest, "invalid endDate")
			return
		}
		expenses, err = expenseRepo.GetByDateRange(start, end)
	} else {
		expenses, err = expenseRepo.GetAll()
	}
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

// CreateExpenseHandler godoc
// @Summary Record an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body ExpenseRequest true "Expense to add"
// @Success 201 {object} models.Expense
// @Failure 400 {array} ValidationError
// @Router /api/expenses [post]
func CreateExpenseHandler(w http.ResponseWriter, r *http.Request) {
	var req ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	if validationErrors := validateExpense(req); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := expenseRepo.Create(models.Expense{
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "could not create expense")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
