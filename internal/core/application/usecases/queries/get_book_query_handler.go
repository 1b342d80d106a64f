package queries

import (
	"context"
	"database/sql"
	"errors"

	"bookstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetBookQueryHandler retrieves a single catalog entry from the database.
type GetBookQueryHandler struct {
	db *gorm.DB
}

// NewGetBookQueryHandler creates a handler for single book retrieval.
func NewGetBookQueryHandler(db *gorm.DB) GetBookQueryHandler {
	return GetBookQueryHandler{db: db}
}

// Handle executes the query to retrieve one book.
// Returns an ObjectNotFoundError when the book does not exist.
func (h GetBookQueryHandler) Handle(ctx context.Context, query GetBookQuery) (BookResponse, error) {
	if err := query.Validate(); err != nil {
		return BookResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			author,
			description,
			price,
			stock_quantity,
			category,
			cover_image
		FROM books
		WHERE id = ?
	`, query.BookID().Bytes()).Row()

	response, err := scanBookRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BookResponse{}, errs.NewObjectNotFoundError("bookId", query.BookID().String())
		}
		return BookResponse{}, err
	}

	return response, nil
}
