package models

import "time"

// Customer is a registry entry; cpf, phone and email are all optional.
type Customer struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CPF       *string   `json:"cpf"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
