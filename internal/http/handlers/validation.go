package handlers

import (
	"strconv"
	"strings"

	"github.com/lanchepoint/pos-api/internal/models"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func isDecimal(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return s != "" && err == nil
}

func isPositiveDecimal(s string) bool {
	v, err := strconv.ParseFloat(s, 64)
	return s != "" && err == nil && v > 0
}

func validateProduct(p ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Description: "Name is required"})
	}
	if strings.TrimSpace(p.Code) == "" {
		errs = append(errs, ValidationError{Field: "code", Description: "Code is required"})
	}
	if !isPositiveDecimal(p.Price) {
		errs = append(errs, ValidationError{Field: "price", Description: "Price must be a positive decimal"})
	}
	if p.StockQuantity != nil && *p.StockQuantity < 0 {
		errs = append(errs, ValidationError{Field: "stock_quantity", Description: "Stock quantity cannot be negative"})
	}
	if p.MinStock != nil && *p.MinStock < 0 {
		errs = append(errs, ValidationError{Field: "min_stock", Description: "Minimum stock cannot be negative"})
	}
	return errs
}

func validateProductUpdate(p ProductUpdateRequest) []ValidationError {
	errs := []ValidationError{}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Description: "Name cannot be empty"})
	}
	if p.Code != nil && strings.TrimSpace(*p.Code) == "" {
		errs = append(errs, ValidationError{Field: "code", Description: "Code cannot be empty"})
	}
	if p.Price != nil && !isPositiveDecimal(*p.Price) {
		errs = append(errs, ValidationError{Field: "price", Description: "Price must be a positive decimal"})
	}
	if p.StockQuantity != nil && *p.StockQuantity < 0 {
		errs = append(errs, ValidationError{Field: "stock_quantity", Description: "Stock quantity cannot be negative"})
	}
	if p.MinStock != nil && *p.MinStock < 0 {
		errs = append(errs, ValidationError{Field: "min_stock", Description: "Minimum stock cannot be negative"})
	}
	return errs
}

func validateCustomer(name string) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(name) == "" {
		errs = append(errs, ValidationError{Field: "name", Description: "Name is required"})
	}
	return errs
}

func validPaymentMethod(m string) bool {
	return m == models.PaymentCash || m == models.PaymentCard || m == models.PaymentPix
}

func validSaleStatus(s string) bool {
	return s == "" || s == models.SalePending || s == models.SaleCompleted || s == models.SaleCancelled
}

// validateSale checks the header and every line item before anything is
// written, so a bad item can never leave a half-created sale behind.
func validateSale(req SaleRequest) []ValidationError {
	errs := []ValidationError{}
	if !isDecimal(req.Sale.TotalAmount) {
		errs = append(errs, ValidationError{Field: "total_amount", Description: "Total amount must be a decimal"})
	}
	if !validPaymentMethod(req.Sale.PaymentMethod) {
		errs = append(errs, ValidationError{Field: "payment_method", Description: "Payment method must be cash, card or pix"})
	}
	if !validSaleStatus(req.Sale.Status) {
		errs = append(errs, ValidationError{Field: "status", Description: "Status must be pending, completed or cancelled"})
	}
	if len(req.Items) == 0 {
		errs = append(errs, ValidationError{Field: "items", Description: "At least one item is required"})
	}
	for i, item := range req.Items {
		prefix := "items[" + strconv.Itoa(i) + "]."
		if item.ProductID <= 0 {
			errs = append(errs, ValidationError{Field: prefix + "product_id", Description: "Product id is required"})
		}
		if item.Quantity <= 0 {
			errs = append(errs, ValidationError{Field: prefix + "quantity", Description: "Quantity must be greater than zero"})
		}
		if !isDecimal(item.UnitPrice) {
			errs = append(errs, ValidationError{Field: prefix + "unit_price", Description: "Unit price must be a decimal"})
		}
		if !isDecimal(item.TotalPrice) {
			errs = append(errs, ValidationError{Field: prefix + "total_price", Description: "Total price must be a decimal"})
		}
	}
	return errs
}

func validateExpense(e ExpenseRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(e.Description) == "" {
		errs = append(errs, ValidationError{Field: "description", Description: "Description is required"})
	}
	if !isDecimal(e.Amount) {
		errs = append(errs, ValidationError{Field: "amount", Description: "Amount must be a decimal"})
	}
	return errs
}
