package commands

import (
	"context"

	"bookstore/internal/core/domain/model/book"
)

// CreateBookCommandHandler handles adding new books to the catalog.
type CreateBookCommandHandler struct {
	uowFactory BookUoWFactory
}

// NewCreateBookCommandHandler creates a handler for catalog additions.
func NewCreateBookCommandHandler(uowFactory BookUoWFactory) CreateBookCommandHandler {
	return CreateBookCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the book creation command.
func (h *CreateBookCommandHandler) Handle(ctx context.Context, cmd CreateBookCommand) error {
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

	aggregate, err := book.NewBook(
		cmd.BookID(),
		cmd.Title(),
		cmd.Author(),
		cmd.Description(),
		cmd.Price(),
		cmd.StockQuantity(),
		cmd.Category(),
		cmd.CoverImage(),
	)
	if err != nil {
		return err
	}

	if err = uow.BookRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
