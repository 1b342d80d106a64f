package queries

import (
	"context"

	"bookstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetReviewsQueryHandler retrieves reviews with author names.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetReviewsQueryHandler creates a handler for review listing queries.
func NewGetReviewsQueryHandler(db *gorm.DB) GetReviewsQueryHandler {
	return GetReviewsQueryHandler{db: db}
}

// Handle executes the query to list reviews, most recent first.
func (h GetReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetReviewsQuery,
) ([]ReviewResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			r.id,
			r.book_id,
			r.user_id,
			u.user_name,
			r.review_text,
			r.rating,
			r.review_date
		FROM reviews r
		JOIN users u ON u.id = r.user_id
	`
	args := make([]any, 0, 1)
	switch {
	case query.BookID().Validate() == nil:
		sql += " WHERE r.book_id = ?"
		args = append(args, query.BookID().Bytes())
	case query.UserID().Validate() == nil:
		sql += " WHERE r.user_id = ?"
		args = append(args, query.UserID().Bytes())
	}
	sql += " ORDER BY r.review_date DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]ReviewResponse, 0)
	for rows.Next() {
		var response ReviewResponse
		var id, bookID, userID uuid.UUID

		err = rows.Scan(
			&id,
			&bookID,
			&userID,
			&response.UserName,
			&response.ReviewText,
			&response.Rating,
			&response.ReviewDate,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.BookID, err = kernel.UUIDFromBytes(bookID[:]); err != nil {
			return nil, err
		}
		if response.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}

		reviews = append(reviews, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
