package ports

import (
	"context"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored together with their line items; every method that
// returns an order returns it fully loaded.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Items are append-only; status and total changes are saved in place.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByUser retrieves all orders placed by the given user,
	// most recent first.
	GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)

	// GetAll retrieves every order, most recent first.
	// Used for order administration.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllPendingOlderThan retrieves orders still in Pending status
	// that were placed before the cutoff. Used by the stale order job.
	GetAllPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// Delete removes an order and its items from storage.
	// Deletion is an administrative purge and does not touch stock.
	Delete(ctx context.Context, id kernel.UUID) error
}
