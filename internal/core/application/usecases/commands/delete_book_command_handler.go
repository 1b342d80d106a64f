package commands

import (
	"context"
)

// DeleteBookCommandHandler handles catalog removals.
type DeleteBookCommandHandler struct {
	uowFactory BookUoWFactory
}

// NewDeleteBookCommandHandler creates a handler for catalog removals.
func NewDeleteBookCommandHandler(uowFactory BookUoWFactory) DeleteBookCommandHandler {
	return DeleteBookCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the book deletion command.
func (h *DeleteBookCommandHandler) Handle(ctx context.Context, cmd DeleteBookCommand) error {
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

	bookRepo := uow.BookRepository()

	if _, err := bookRepo.Get(ctx, cmd.BookID()); err != nil {
		return err
	}

	if err := bookRepo.Delete(ctx, cmd.BookID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
