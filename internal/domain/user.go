package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
// PasswordHash is a credential secret: it must never leave the auth
// layer. Anything returned to clients goes through Owner().
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Owner is the sanitized projection of a User attached to enriched
// articles. It has no secret fields by construction; building one is
// the only supported way to expose a user through the article API.
type Owner struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// Owner returns the sanitized projection of the user.
func (u *User) Owner() Owner {
	return Owner{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
