package handlers

import (
	"net/http"
	"strconv"
	"time"

	repo "github.com/lanchepoint/pos-api/internal/repo"
)

const analyticsCacheTTL = 60 * time.Second

// DailySalesHandler godoc
// @Summary Summarize one calendar day of sales
// @Tags analytics
// @Produce json
// @Param date query string false "Day to summarize (RFC 3339 or YYYY-MM-DD), defaults to today"
// @Success 200 {object} repo.DailySalesSummary
// @Failure 400 {object} map[string]string
// @Router /api/analytics/daily-sales [get]
func DailySalesHandler(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if param := r.URL.Query().Get("date"); param != "" {
		parsed, err := parseDateParam(param)
		if err != nil {
			errorJSON(w, http.StatusBadRequest, "invalid date")
			return
		}
		date = parsed
	}

	cacheKey := "analytics:daily-sales:" + date.Format("2006-01-02")
	var summary repo.DailySalesSummary
	if cache.GetJSON(cacheKey, &summary) {
		writeJSON(w, http.StatusOK, summary)
		return
	}

	summary, err := analyticsRepo.GetDailySales(date)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	cache.SetJSON(cacheKey, summary, analyticsCacheTTL)
	writeJSON(w, http.StatusOK, summary)
}

// TopProductsHandler godoc
// @Summary Rank products by units sold
// @Tags analytics
// @Produce json
// @Param limit query int false "Maximum rows to return, defaults to 10"
// @Success 200 {array} repo.ProductSales
// @Failure 400 {object} map[string]string
// @Router /api/analytics/top-products [get]
func TopProductsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if param := r.URL.Query().Get("limit"); param != "" {
		parsed, err := strconv.Atoi(param)
		if err != nil || parsed <= 0 {
			errorJSON(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	cacheKey := "analytics:top-products:" + strconv.Itoa(limit)
	var ranking []repo.ProductSales
	if cache.GetJSON(cacheKey, &ranking) {
		writeJSON(w, http.StatusOK, ranking)
		return
	}

	ranking, err := analyticsRepo.GetTopProducts(limit)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	cache.SetJSON(cacheKey, ranking, analyticsCacheTTL)
	writeJSON(w, http.StatusOK, ranking)
}
