package repo

import (
	"fmt"
	"time"

	"github.com/lanchepoint/pos-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// Seed loads the demo dataset a fresh in-memory store starts with: one owner
// account, three categories, six products and three customers.
func Seed(users UserRepository, categories CategoryRepository, products ProductRepository, customers CustomerRepository) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing demo password: %w", err)
	}
	if _, err := users.CreateUser(models.User{
		Username:     "demo@cashboxfood.com",
		PasswordHash: string(hash),
		Role:         "owner",
	}); err != nil {
		return fmt.Errorf("seeding user: %w", err)
	}

	seedCategories := []models.Category{
		{Name: "Lanches", Description: strPtr("Hambúrgueres e sanduíches")},
		{Name: "Bebidas", Description: strPtr("Refrigerantes, sucos e águas")},
		{Name: "Acompanhamentos", Description: strPtr("Batatas e porções")},
	}
	categoryIDs := make([]int, 0, len(seedCategories))
	for _, c := range seedCategories {
		created, err := categories.Create(c)
		if err != nil {
			return fmt.Errorf("seeding category %q: %w", c.Name, err)
		}
		categoryIDs = append(categoryIDs, created.ID)
	}

	now := time.Now()
	seedProducts := []models.Product{
		{Name: "X-Burger Completo", Code: "001", Barcode: strPtr("7891234567890"), Price: "15.90", CategoryID: &categoryIDs[0], StockQuantity: 25, MinStock: 5},
		{Name: "Refrigerante Lata", Code: "002", Barcode: strPtr("7891234567891"), Price: "5.50", CategoryID: &categoryIDs[1], StockQuantity: 8, MinStock: 10},
		{Name: "Batata Frita", Code: "003", Barcode: strPtr("7891234567892"), Price: "8.90", CategoryID: &categoryIDs[2], StockQuantity: 15, MinStock: 5},
		{Name: "Água 500ml", Code: "004", Barcode: strPtr("7891234567893"), Price: "3.00", CategoryID: &categoryIDs[1], StockQuantity: 20, MinStock: 10},
		{Name: "X-Salada", Code: "005", Barcode: strPtr("7891234567894"), Price: "12.90", CategoryID: &categoryIDs[0], StockQuantity: 18, MinStock: 5},
		{Name: "Suco Natural", Code: "006", Barcode: strPtr("7891234567895"), Price: "7.50", CategoryID: &categoryIDs[1], StockQuantity: 12, MinStock: 5},
	}
	for _, p := range seedProducts {
		p.IsActive = true
		p.CreatedAt = now
		if _, err := products.Create(p); err != nil {
			return fmt.Errorf("seeding product %q: %w", p.Code, err)
		}
	}

	seedCustomers := []models.Customer{
		{Name: "João Silva", CPF: strPtr("123.456.789-00"), Phone: strPtr("(11) 99999-9999")},
		{Name: "Maria Santos", CPF: strPtr("987.654.321-00"), Phone: strPtr("(11) 88888-8888")},
		{Name: "Pedro Costa", Phone: strPtr("(11) 77777-7777")},
	}
	for _, c := range seedCustomers {
		c.CreatedAt = now
		if _, err := customers.Create(c); err != nil {
			return fmt.Errorf("seeding customer %q: %w", c.Name, err)
		}
	}

	return nil
}
