package ports

import (
	"context"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for review aggregates.
type ReviewRepository interface {
	// Add persists a new review aggregate to storage.
	Add(ctx context.Context, aggregate *review.Review) error

	// Get retrieves a review aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*review.Review, error)

	// GetAllByBook retrieves all reviews for the given book,
	// most recent first.
	GetAllByBook(ctx context.Context, bookID kernel.UUID) ([]*review.Review, error)

	// Delete removes a review from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
