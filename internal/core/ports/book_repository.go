package ports

import (
	"context"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
)

// BookRepository defines the persistence contract for book aggregates.
//
// Stock mutations deserve a note: DecrementStock is a conditional,
// atomic operation so that two orders racing for the last copies cannot
// both succeed. It fails without side effects when the remaining stock
// is insufficient.
type BookRepository interface {
	// Add persists a new book aggregate to storage.
	Add(ctx context.Context, aggregate *book.Book) error

	// Update persists changes to an existing book aggregate.
	Update(ctx context.Context, aggregate *book.Book) error

	// Get retrieves a book aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*book.Book, error)

	// GetAll retrieves the whole catalog.
	GetAll(ctx context.Context) ([]*book.Book, error)

	// DecrementStock atomically subtracts quantity from the book's stock,
	// but only if enough stock remains. Returns an error wrapping
	// book.ErrInsufficientStock when the condition fails and the stock
	// is left untouched.
	DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error

	// IncrementStock adds quantity back to the book's stock.
	// Used when a cancelled order returns its items.
	IncrementStock(ctx context.Context, id kernel.UUID, quantity int) error

	// Delete removes a book from the catalog.
	Delete(ctx context.Context, id kernel.UUID) error
}
