// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"bookstore/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BookRepoFactory provides access to the book repository within a transaction.
	BookRepoFactory interface {
		BookRepository() ports.BookRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// ReviewRepoFactory provides access to the review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// BookUoW manages transactions for catalog-only operations.
	BookUoW interface {
		TxManager
		BookRepoFactory
	}

	// BookUoWFactory creates new catalog unit of work instances.
	BookUoWFactory interface {
		Create() BookUoW
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands do not touch the catalog.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UserUoW manages transactions for account operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new account unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// ReviewUoW manages transactions for review operations.
	// Review commands also read the catalog to verify the book exists.
	ReviewUoW interface {
		TxManager
		ReviewRepoFactory
		BookRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}

	// UoW manages transactions across the catalog and order aggregates.
	// Order placement and cancellation mutate both in one transaction:
	// either the order lands and stock is decremented, or neither holds.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   bookRepo := uow.BookRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		BookRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// PasswordHasher derives a storable hash from a plaintext password.
// Implemented by the auth package using bcrypt.
type PasswordHasher interface {
	Hash(password string) (string, error)
}
