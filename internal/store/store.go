package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// User represents a registered account. Only credentials live in the
// store; rooms and board state are transient and never persisted.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserStore provides user persistence operations.
type UserStore interface {
	// CreateUser creates a new user with the given email and password hash.
	CreateUser(ctx context.Context, email, passwordHash string) (*User, error)
	// GetUserByEmail retrieves a user by email, ErrNotFound if absent.
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	// GetUserByID retrieves a user by ID, ErrNotFound if absent.
	GetUserByID(ctx context.Context, id int64) (*User, error)
}

// Store is the full persistence interface used by the application.
type Store interface {
	UserStore

	// Close releases underlying resources.
	Close() error
}
