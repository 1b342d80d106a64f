package ports

import (
	"context"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	// Fails when the email address is already registered.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user aggregate by login email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
