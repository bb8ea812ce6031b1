package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the owner of requests, artifacts and history. Accounts are managed
// elsewhere; this service only reads them.
type User struct {
	ID                    uuid.UUID
	Email                 string
	Name                  string
	GeneratedBrandContext *string
	IsActive              bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// BrandContext returns the generated brand context or an empty string.
func (u *User) BrandContext() string {
	if u.GeneratedBrandContext == nil {
		return ""
	}
	return *u.GeneratedBrandContext
}
