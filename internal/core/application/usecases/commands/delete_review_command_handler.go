package commands

import (
	"context"
)

// DeleteReviewCommandHandler handles review removal.
type DeleteReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewDeleteReviewCommandHandler creates a handler for review removal.
func NewDeleteReviewCommandHandler(uowFactory ReviewUoWFactory) DeleteReviewCommandHandler {
	return DeleteReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review deletion command.
func (h *DeleteReviewCommandHandler) Handle(ctx context.Context, cmd DeleteReviewCommand) error {
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

	reviewRepo := uow.ReviewRepository()

	if _, err := reviewRepo.Get(ctx, cmd.ReviewID()); err != nil {
		return err
	}

	if err := reviewRepo.Delete(ctx, cmd.ReviewID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
