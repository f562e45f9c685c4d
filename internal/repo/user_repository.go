package repo

import "github.com/lanchepoint/pos-api/internal/models"

// UserRepository defines the interface for user data operations. Users are
// create/read-only; there is no update or delete.
type UserRepository interface {
	CreateUser(user models.User) (models.User, error)
	GetByID(id int) (models.User, error)
	GetByUsername(username string) (models.User, error)
}
