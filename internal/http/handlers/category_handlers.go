package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	models "github.com/lanchepoint/pos-api/internal/models"
)

// GetCategoriesHandler godoc
// @Summary List all categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} map[string]string
// @Router /api/categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := categoryRepo.GetAll()
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// CreateCategoryHandler godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body CategoryRequest true "Category to add"
// @Success 201 {object} models.Category
// @Failure 400 {array} ValidationError
// @Router /api/categories [post]
func CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeJSON(w, http.StatusBadRequest, []ValidationError{{Field: "name", Description: "Name is required"}})
		return
	}

	created, err := categoryRepo.Create(models.Category{Name: req.Name, Description: req.Description})
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "could not create category")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
