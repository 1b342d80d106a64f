package commands

import (
	"errors"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/review"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrAddReviewCommandIsNotConstructed = errors.New(
	"AddReviewCommand must be created via NewAddReviewCommand constructor",
)

// AddReviewCommand represents a request to attach a review to a book.
type AddReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID   kernel.UUID
	bookID     kernel.UUID
	userID     kernel.UUID
	reviewText string
	rating     int
	reviewDate time.Time

	guard guard.ConstructorGuard
}

// NewAddReviewCommand creates a command to submit a book review.
// The rating must fall within the review package's accepted range.
func NewAddReviewCommand(reviewID, bookID, userID kernel.UUID, reviewText string, rating int) (AddReviewCommand, error) {
	cmd := AddReviewCommand{
		reviewDate: time.Now().UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReviewID(reviewID),
		cmd.setBookID(bookID),
		cmd.setUserID(userID),
		cmd.setReviewText(reviewText),
		cmd.setRating(rating),
	); err != nil {
		return AddReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddReviewCommand) Validate() error {
	return c.guard.Validate(ErrAddReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier assigned to the new review.
func (c AddReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// BookID returns the reviewed book's identifier.
func (c AddReviewCommand) BookID() kernel.UUID {
	return c.bookID
}

// UserID returns the author's identifier.
func (c AddReviewCommand) UserID() kernel.UUID {
	return c.userID
}

// ReviewText returns the review body.
func (c AddReviewCommand) ReviewText() string {
	return c.reviewText
}

// Rating returns the star rating.
func (c AddReviewCommand) Rating() int {
	return c.rating
}

// ReviewDate returns the submission timestamp captured at command creation.
func (c AddReviewCommand) ReviewDate() time.Time {
	return c.reviewDate
}

func (c *AddReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *AddReviewCommand) setBookID(bookID kernel.UUID) error {
	if err := bookID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("bookId", err)
	}

	c.bookID = bookID
	return nil
}

func (c *AddReviewCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	c.userID = userID
	return nil
}

func (c *AddReviewCommand) setReviewText(reviewText string) error {
	if reviewText == "" {
		return errs.NewValueIsRequiredError("reviewText")
	}

	c.reviewText = reviewText
	return nil
}

func (c *AddReviewCommand) setRating(rating int) error {
	if rating < review.MinRating || rating > review.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, review.MinRating, review.MaxRating)
	}

	c.rating = rating
	return nil
}
