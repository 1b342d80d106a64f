package commands

import (
	"context"

	"bookstore/internal/core/domain/model/review"
)

// AddReviewCommandHandler handles review submission.
// Verifies the reviewed book exists before the review is stored.
type AddReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewAddReviewCommandHandler creates a handler for review submission.
func NewAddReviewCommandHandler(uowFactory ReviewUoWFactory) AddReviewCommandHandler {
	return AddReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review submission command.
func (h *AddReviewCommandHandler) Handle(ctx context.Context, cmd AddReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.BookRepository().Get(ctx, cmd.BookID()); err != nil {
		return err
	}

	aggregate, err := review.NewReview(
		cmd.ReviewID(),
		cmd.BookID(),
		cmd.UserID(),
		cmd.ReviewText(),
		cmd.Rating(),
		cmd.ReviewDate(),
	)
	if err != nil {
		return err
	}

	if err = uow.ReviewRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
