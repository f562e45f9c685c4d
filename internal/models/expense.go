package models

import "time"

// Expense is an outgoing cost entry kept for the reports screen.
type Expense struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Category    *string   `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}
