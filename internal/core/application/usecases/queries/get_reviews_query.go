package queries

import (
	"errors"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrGetReviewsQueryIsNotConstructed = errors.New(
	"GetReviewsQuery must be created via a NewGetReviews*Query constructor",
)

// GetReviewsQuery retrieves reviews, most recent first. It lists either
// one book's reviews, one user's reviews, or every review, depending on
// which constructor built it.
type GetReviewsQuery struct {
	bookID kernel.UUID
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetReviewsByBookQuery creates a query for a book's reviews.
func NewGetReviewsByBookQuery(bookID kernel.UUID) (GetReviewsQuery, error) {
	if err := bookID.Validate(); err != nil {
		return GetReviewsQuery{}, errs.NewValueIsRequiredErrorWithCause("bookId", err)
	}

	return GetReviewsQuery{
		bookID: bookID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewGetReviewsByUserQuery creates a query for a user's reviews.
func NewGetReviewsByUserQuery(userID kernel.UUID) (GetReviewsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetReviewsQuery{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	return GetReviewsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewGetAllReviewsQuery creates an unfiltered listing query.
func NewGetAllReviewsQuery() GetReviewsQuery {
	return GetReviewsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through a constructor.
func (q GetReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetReviewsQueryIsNotConstructed)
}

// BookID returns the book filter, zero-valued when not filtering by book.
func (q GetReviewsQuery) BookID() kernel.UUID {
	return q.bookID
}

// UserID returns the user filter, zero-valued when not filtering by user.
func (q GetReviewsQuery) UserID() kernel.UUID {
	return q.userID
}

// ReviewResponse represents a review in the read model, joined with the
// author's display name for listing.
type ReviewResponse struct {
	ID         kernel.UUID
	BookID     kernel.UUID
	UserID     kernel.UUID
	UserName   string
	ReviewText string
	Rating     int
	ReviewDate time.Time
}
