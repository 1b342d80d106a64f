package commands

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/guard"
)

var ErrDeleteBookCommandIsNotConstructed = errors.New(
	"DeleteBookCommand must be created via NewDeleteBookCommand constructor",
)

// DeleteBookCommand represents a request to remove a book from the catalog.
type DeleteBookCommand struct { //nolint:recvcheck //using for validation
	bookID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteBookCommand creates a command to remove a catalog entry.
func NewDeleteBookCommand(bookID kernel.UUID) (DeleteBookCommand, error) {
	cmd := DeleteBookCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBookID(bookID); err != nil {
		return DeleteBookCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteBookCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBookCommandIsNotConstructed)
}

// BookID returns the identifier of the book to remove.
func (c DeleteBookCommand) BookID() kernel.UUID {
	return c.bookID
}

func (c *DeleteBookCommand) setBookID(bookID kernel.UUID) error {
	if err := bookID.Validate(); err != nil {
		return err
	}

	c.bookID = bookID
	return nil
}
