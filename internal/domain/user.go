package domain

import (
	"context"
	"time"
)

// User represents a registered account.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepository defines persistence operations for users.
// Implementations must be safe for concurrent use.
type UserRepository interface {
	// Create inserts the user, filling in ID, Name, and CreatedAt when
	// unset. It fails with ErrAlreadyExists if the email or a provided
	// ID collides with an existing record.
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	Exists(ctx context.Context, email string) (bool, error)
	// ListAll returns users in insertion order.
	ListAll(ctx context.Context) ([]User, error)
	// Clear removes every record and reports how many were removed.
	Clear(ctx context.Context) (int, error)
}
