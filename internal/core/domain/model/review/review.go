package review

import (
	"errors"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
)

// ErrReviewIsNotConstructed is returned when a Review instance was not created
// through the NewReview or RestoreReview factory methods.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview or RestoreReview constructor")

const (
	// MinRating is the lowest accepted star rating.
	MinRating = 1

	// MaxRating is the highest accepted star rating.
	MaxRating = 5
)

// Review is a customer's rating and commentary on a book. Each review
// belongs to one user and one book; reviews carry their own identity so
// a user may review the same book more than once.
type Review struct {
	id         kernel.UUID
	bookID     kernel.UUID
	userID     kernel.UUID
	reviewText string
	rating     int
	reviewDate time.Time

	isConstructed bool
}

// NewReview creates a review with validation. The rating must fall in
// [MinRating, MaxRating] and the review text must be non-empty.
func NewReview(id, bookID, userID kernel.UUID, reviewText string, rating int, reviewDate time.Time) (*Review, error) {
	r := &Review{
		reviewDate:    reviewDate,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setBookID(bookID),
		r.setUserID(userID),
		r.setReviewText(reviewText),
		r.setRating(rating),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReview reconstructs a Review from persistence.
func RestoreReview(id, bookID, userID kernel.UUID, reviewText string, rating int, reviewDate time.Time) (*Review, error) {
	return NewReview(id, bookID, userID, reviewText, rating, reviewDate)
}

// Validate ensures the Review instance was properly constructed through a constructor.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

// IsEqual compares two reviews by their unique identifiers.
func (r *Review) IsEqual(other *Review) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// BookID returns the reviewed book's identifier.
func (r *Review) BookID() kernel.UUID {
	return r.bookID
}

// UserID returns the author's identifier.
func (r *Review) UserID() kernel.UUID {
	return r.userID
}

// ReviewText returns the review body.
func (r *Review) ReviewText() string {
	return r.reviewText
}

// Rating returns the star rating in [MinRating, MaxRating].
func (r *Review) Rating() int {
	return r.rating
}

// ReviewDate returns the submission timestamp.
func (r *Review) ReviewDate() time.Time {
	return r.reviewDate
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setBookID(bookID kernel.UUID) error {
	if err := bookID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("bookId", err)
	}
	r.bookID = bookID
	return nil
}

func (r *Review) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	r.userID = userID
	return nil
}

func (r *Review) setReviewText(reviewText string) error {
	if reviewText == "" {
		return errs.NewValueIsRequiredError("reviewText")
	}
	r.reviewText = reviewText
	return nil
}

func (r *Review) setRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	r.rating = rating
	return nil
}
