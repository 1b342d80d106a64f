package commands

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var ErrDeleteReviewCommandIsNotConstructed = errors.New(
	"DeleteReviewCommand must be created via NewDeleteReviewCommand constructor",
)

// DeleteReviewCommand represents a request to remove a review.
type DeleteReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteReviewCommand creates a command to remove a review.
func NewDeleteReviewCommand(reviewID kernel.UUID) (DeleteReviewCommand, error) {
	cmd := DeleteReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setReviewID(reviewID); err != nil {
		return DeleteReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteReviewCommand) Validate() error {
	return c.guard.Validate(ErrDeleteReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier of the review to remove.
func (c DeleteReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

func (c *DeleteReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}
