package book

import (
	"errors"
	"fmt"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
)

var (
	// ErrBookIsNotConstructed is returned when a Book instance was not created through
	// the NewBook or RestoreBook factory methods.
	ErrBookIsNotConstructed = errors.New("Book must be created via NewBook or RestoreBook constructor")

	// ErrInsufficientStock is the sentinel for all InsufficientStockError instances.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports that a stock removal would drive a book's
// stock quantity below zero. It carries the book title so callers can build
// a user-facing message naming the offending book.
type InsufficientStockError struct {
	BookTitle string
	Requested int
	Available int
}

func NewInsufficientStockError(title string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{BookTitle: title, Requested: requested, Available: available}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for book %s: requested %d, available %d",
		e.BookTitle, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Book is the catalog aggregate that owns the per-book stock count.
// It is the only shared resource mutated by more than one workflow:
// order assembly removes stock, order cancellation restores it.
// RemoveStock/AddStock state the rule that stock never goes negative;
// the concurrent production paths enforce the same rule in the
// repository's conditional DecrementStock/IncrementStock updates so two
// simultaneous orders cannot oversell.
//
// Book follows these invariants:
//   - Must have a valid unique identifier
//   - Title, author, description, and cover image must be non-empty
//   - Price must be non-negative
//   - Stock quantity must be non-negative
//   - Category must be one of the known catalog categories
type Book struct {
	id            kernel.UUID
	title         string
	author        string
	description   string
	price         float64
	stockQuantity int
	category      Category
	coverImage    string

	isConstructed bool
}

// NewBook creates a new Book with validation. This is the only way to create
// a valid Book besides RestoreBook, ensuring all invariants are maintained.
func NewBook(
	id kernel.UUID,
	title, author, description string,
	price float64,
	stockQuantity int,
	category Category,
	coverImage string,
) (*Book, error) {
	b := &Book{isConstructed: true}

	if err := errors.Join(
		b.setID(id),
		b.setDetails(title, author, description, price, category, coverImage),
		b.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBook reconstructs a Book from persistence. The same validation
// rules as NewBook apply, so corrupt rows are rejected on load.
func RestoreBook(
	id kernel.UUID,
	title, author, description string,
	price float64,
	stockQuantity int,
	category Category,
	coverImage string,
) (*Book, error) {
	return NewBook(id, title, author, description, price, stockQuantity, category, coverImage)
}

// Validate ensures the Book instance was properly constructed.
func (b *Book) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBookIsNotConstructed
	}
	return nil
}

// IsEqual compares two books by their unique identifiers.
func (b *Book) IsEqual(other *Book) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the book's unique identifier.
func (b *Book) ID() kernel.UUID {
	return b.id
}

// Title returns the book's title.
func (b *Book) Title() string {
	return b.title
}

// Author returns the book's author.
func (b *Book) Author() string {
	return b.author
}

// Description returns the book's description.
func (b *Book) Description() string {
	return b.description
}

// Price returns the current catalog price. Order items snapshot this value
// at order time, so later price changes never affect past orders.
func (b *Book) Price() float64 {
	return b.price
}

// StockQuantity returns the number of units currently in stock.
func (b *Book) StockQuantity() int {
	return b.stockQuantity
}

// Category returns the book's catalog category.
func (b *Book) Category() Category {
	return b.category
}

// CoverImage returns the path to the book's cover image.
func (b *Book) CoverImage() string {
	return b.coverImage
}

// RemoveStock decreases the in-memory stock count by quantity. Order
// assembly decrements through the repository's conditional update
// instead, which applies this same rule atomically.
//
// Returns an InsufficientStockError naming the book when the removal would
// leave negative stock, keeping the stock-never-negative invariant intact.
// Quantity must be at least 1.
func (b *Book) RemoveStock(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	if b.stockQuantity < quantity {
		return NewInsufficientStockError(b.title, quantity, b.stockQuantity)
	}

	b.stockQuantity -= quantity
	return nil
}

// AddStock increases the in-memory stock count by quantity; cancellation
// restores stock through the repository's IncrementStock update, which
// mirrors it. No upper bound is enforced. Quantity must be at least 1.
func (b *Book) AddStock(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	b.stockQuantity += quantity
	return nil
}

// Update replaces the book's catalog details. The stock quantity is replaced
// as well; this is catalog management, not a ledger operation.
func (b *Book) Update(
	title, author, description string,
	price float64,
	stockQuantity int,
	category Category,
	coverImage string,
) error {
	return errors.Join(
		b.setDetails(title, author, description, price, category, coverImage),
		b.setStockQuantity(stockQuantity),
	)
}

func (b *Book) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Book) setDetails(title, author, description string, price float64, category Category, coverImage string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if author == "" {
		return errs.NewValueIsRequiredError("author")
	}
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	if coverImage == "" {
		return errs.NewValueIsRequiredError("coverImage")
	}
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", price))
	}
	if err := category.Validate(); err != nil {
		return err
	}

	b.title = title
	b.author = author
	b.description = description
	b.price = price
	b.category = category
	b.coverImage = coverImage
	return nil
}

func (b *Book) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stockQuantity",
			fmt.Errorf("%d is negative", stockQuantity))
	}
	b.stockQuantity = stockQuantity
	return nil
}
