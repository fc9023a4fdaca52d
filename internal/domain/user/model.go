package user

import (
	"context"
	"time"
)

// User is an account row. Never mutated after signup; deletion cascades to
// every owned media record.
type User struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Credentials is the username/password-hash pair consumed by the WebDAV
// adapter when seeding its user list.
type Credentials struct {
	Username     string
	PasswordHash string
}

// Repository defines account persistence.
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Delete(ctx context.Context, id uint) error
	ListCredentials(ctx context.Context) ([]Credentials, error)
}
