package queries

import (
	"context"

	"bookstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllBooksQueryHandler retrieves the book catalog from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllBooksQueryHandler struct {
	db *gorm.DB
}

// NewGetAllBooksQueryHandler creates a handler for catalog listing queries.
func NewGetAllBooksQueryHandler(db *gorm.DB) GetAllBooksQueryHandler {
	return GetAllBooksQueryHandler{db: db}
}

// Handle executes the query to list catalog entries sorted by title.
func (h GetAllBooksQueryHandler) Handle(
	ctx context.Context,
	query GetAllBooksQuery,
) ([]BookResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
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
	`
	args := make([]any, 0, 1)
	if query.Category() != "" {
		sql += ` WHERE category = ?`
		args = append(args, query.Category())
	}
	sql += ` ORDER BY title`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := make([]BookResponse, 0)
	for rows.Next() {
		response, scanErr := scanBookRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		books = append(books, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return books, nil
}

func scanBookRow(row rowScanner) (BookResponse, error) {
	var response BookResponse
	var id uuid.UUID

	err := row.Scan(
		&id,
		&response.Title,
		&response.Author,
		&response.Description,
		&response.Price,
		&response.StockQuantity,
		&response.Category,
		&response.CoverImage,
	)
	if err != nil {
		return BookResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return BookResponse{}, err
	}

	return response, nil
}
