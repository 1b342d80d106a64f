package commands

import (
	"errors"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrCreateBookCommandIsNotConstructed = errors.New(
	"CreateBookCommand must be created via NewCreateBookCommand constructor",
)

// CreateBookCommand represents a request to add a new book to the catalog.
type CreateBookCommand struct { //nolint:recvcheck //using for validation
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

// NewCreateBookCommand creates a command to add a book to the catalog.
// Validates the identifier, that title and author are present, the price
// is non-negative, the stock is non-negative, and the category is known.
func NewCreateBookCommand(
	bookID kernel.UUID,
	title, author, description string,
	price float64,
	stockQuantity int,
	category book.Category,
	coverImage string,
) (CreateBookCommand, error) {
	cmd := CreateBookCommand{
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
		return CreateBookCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBookCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookCommandIsNotConstructed)
}

// BookID returns the identifier assigned to the new book.
func (c CreateBookCommand) BookID() kernel.UUID {
	return c.bookID
}

// Title returns the book title.
func (c CreateBookCommand) Title() string {
	return c.title
}

// Author returns the book author.
func (c CreateBookCommand) Author() string {
	return c.author
}

// Description returns the catalog description.
func (c CreateBookCommand) Description() string {
	return c.description
}

// Price returns the unit price.
func (c CreateBookCommand) Price() float64 {
	return c.price
}

// StockQuantity returns the initial stock level.
func (c CreateBookCommand) StockQuantity() int {
	return c.stockQuantity
}

// Category returns the book category.
func (c CreateBookCommand) Category() book.Category {
	return c.category
}

// CoverImage returns the cover image reference.
func (c CreateBookCommand) CoverImage() string {
	return c.coverImage
}

func (c *CreateBookCommand) setBookID(bookID kernel.UUID) error {
	if err := bookID.Validate(); err != nil {
		return err
	}

	c.bookID = bookID
	return nil
}

func (c *CreateBookCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *CreateBookCommand) setAuthor(author string) error {
	if author == "" {
		return errs.NewValueIsRequiredError("author")
	}

	c.author = author
	return nil
}

func (c *CreateBookCommand) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}

func (c *CreateBookCommand) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsInvalidError("stockQuantity")
	}

	c.stockQuantity = stockQuantity
	return nil
}

func (c *CreateBookCommand) setCategory(category book.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}
