package queries

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var ErrGetBookQueryIsNotConstructed = errors.New(
	"GetBookQuery must be created via NewGetBookQuery constructor",
)

// GetBookQuery retrieves a single catalog entry.
type GetBookQuery struct {
	bookID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBookQuery creates a query to retrieve one book by identifier.
func NewGetBookQuery(bookID kernel.UUID) (GetBookQuery, error) {
	if err := bookID.Validate(); err != nil {
		return GetBookQuery{}, err
	}

	return GetBookQuery{
		bookID: bookID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBookQuery) Validate() error {
	return q.guard.Validate(ErrGetBookQueryIsNotConstructed)
}

// BookID returns the identifier of the requested book.
func (q GetBookQuery) BookID() kernel.UUID {
	return q.bookID
}
