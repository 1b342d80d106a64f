package queries

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var ErrGetAllBooksQueryIsNotConstructed = errors.New(
	"GetAllBooksQuery must be created via NewGetAllBooksQuery constructor",
)

// GetAllBooksQuery retrieves the book catalog, optionally filtered by
// category. An empty category means the whole catalog.
type GetAllBooksQuery struct {
	category string

	guard guard.ConstructorGuard
}

// NewGetAllBooksQuery creates a query to list the catalog.
// Pass an empty category for an unfiltered listing.
func NewGetAllBooksQuery(category string) GetAllBooksQuery {
	return GetAllBooksQuery{
		category: category,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAllBooksQuery) Validate() error {
	return q.guard.Validate(ErrGetAllBooksQueryIsNotConstructed)
}

// Category returns the requested category filter, empty for none.
func (q GetAllBooksQuery) Category() string {
	return q.category
}

// BookResponse represents a catalog entry in the read model.
type BookResponse struct {
	ID            kernel.UUID
	Title         string
	Author        string
	Description   string
	Price         float64
	StockQuantity int
	Category      string
	CoverImage    string
}
