package commands

import (
	"errors"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrUpdateBookCommandIsNotConstructed = errors.New(
	"UpdateBookCommand must be created via NewUpdateBookCommand constructor",
)

// UpdateBookCommand represents a request to replace a book's catalog details.
type UpdateBookCommand struct { //nolint:recvcheck //using for validation
	bookID        kernel.UUID
	title         string
	author        string
	description   string
	price         float64
	stockQuantity int
	category      book.Category
	coverImage    string

	guard guard.ConstructorGuard
}

// NewUpdateBookCommand creates a command to update a catalog entry.
// The same validation rules as NewCreateBookCommand apply.
func NewUpdateBookCommand(
	bookID kernel.UUID,
	title, author, description string,
	price float64,
	stockQuantity int,
	category book.Category,
	coverImage string,
) (UpdateBookCommand, error) {
	cmd := UpdateBookCommand{
		description: description,
		coverImage:  coverImage,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookID(bookID),
		cmd.setTitle(title),
		cmd.setAuthor(author),
		cmd.setPrice(price),
		cmd.setStockQuantity(stockQuantity),
		cmd.setCategory(category),
	); err != nil {
		return UpdateBookCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBookCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBookCommandIsNotConstructed)
}

// BookID returns the identifier of the book to update.
func (c UpdateBookCommand) BookID() kernel.UUID {
	return c.bookID
}

// Title returns the new title.
func (c UpdateBookCommand) Title() string {
	return c.title
}

// Author returns the new author.
func (c UpdateBookCommand) Author() string {
	return c.author
}

// Description returns the new description.
func (c UpdateBookCommand) Description() string {
	return c.description
}

// Price returns the new unit price.
func (c UpdateBookCommand) Price() float64 {
	return c.price
}

// StockQuantity returns the new stock level.
func (c UpdateBookCommand) StockQuantity() int {
	return c.stockQuantity
}

// Category returns the new category.
func (c UpdateBookCommand) Category() book.Category {
	return c.category
}

// CoverImage returns the new cover image reference.
func (c UpdateBookCommand) CoverImage() string {
	return c.coverImage
}

func (c *UpdateBookCommand) setBookID(bookID kernel.UUID) error {
	if err := bookID.Validate(); err != nil {
		return err
	}

	c.bookID = bookID
	return nil
}

func (c *UpdateBookCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *UpdateBookCommand) setAuthor(author string) error {
	if author == "" {
		return errs.NewValueIsRequiredError("author")
	}

	c.author = author
	return nil
}

func (c *UpdateBookCommand) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}

func (c *UpdateBookCommand) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsInvalidError("stockQuantity")
	}

	c.stockQuantity = stockQuantity
	return nil
}

func (c *UpdateBookCommand) setCategory(category book.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}
