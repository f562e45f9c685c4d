package repo

import "errors"

var (
	// ErrProductNotFound is returned when a product id has no entry.
	ErrProductNotFound = errors.New("product not found")
	// ErrCustomerNotFound is returned when a customer id has no entry.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrUserNotFound is returned when a user lookup misses.
	ErrUserNotFound = errors.New("user not found")
	// ErrSaleNotFound is returned when a sale id has no entry.
	ErrSaleNotFound = errors.New("sale not found")
	// ErrInvalidStockChange is returned when an adjustment would take a
	// product's stock below zero.
	ErrInvalidStockChange = errors.New("stock quantity cannot go negative")
	// ErrDuplicatedValueUnique is returned when an insert violates a unique
	// column (product code, username).
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique column")
)
