package commands

import (
	"context"
)

// UpdateBookCommandHandler handles catalog detail updates.
type UpdateBookCommandHandler struct {
	uowFactory BookUoWFactory
}

// NewUpdateBookCommandHandler creates a handler for catalog updates.
func NewUpdateBookCommandHandler(uowFactory BookUoWFactory) UpdateBookCommandHandler {
	return UpdateBookCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the book update command.
// Loads the aggregate, applies the new details through the domain model,
// and persists the result.
func (h *UpdateBookCommandHandler) Handle(ctx context.Context, cmd UpdateBookCommand) error {
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

	aggregate, err := bookRepo.Get(ctx, cmd.BookID())
	if err != nil {
		return err
	}

	if err = aggregate.Update(
		cmd.Title(),
		cmd.Author(),
		cmd.Description(),
		cmd.Price(),
		cmd.StockQuantity(),
		cmd.Category(),
		cmd.CoverImage(),
	); err != nil {
		return err
	}

	if err = bookRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
