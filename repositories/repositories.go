package repositories

import (
	"github.com/securelog/securelog/database"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Audit AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Audit: NewAuditRepository(db),
	}
}
