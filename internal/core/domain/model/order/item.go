package order

import (
	"errors"
	"fmt"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// Item is a line item within an order. It is immutable after creation:
// the price it carries is a snapshot of the book's price at order time,
// not a live reference, so later catalog price changes do not
// retroactively affect past orders.
type Item struct {
	id       kernel.UUID
	bookID   kernel.UUID
	quantity int
	price    float64

	isConstructed bool
}

// NewItem creates an order line item with validation.
// Quantity must be at least 1 and price must be non-negative.
func NewItem(id, bookID kernel.UUID, quantity int, price float64) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setBookID(bookID),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistence with the same
// validation rules as NewItem.
func RestoreItem(id, bookID kernel.UUID, quantity int, price float64) (Item, error) {
	return NewItem(id, bookID, quantity, price)
}

// Validate ensures the Item instance was properly constructed.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// BookID returns the identifier of the ordered book.
func (i Item) BookID() kernel.UUID {
	return i.bookID
}

// Quantity returns the number of ordered units.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price captured when the order was placed.
func (i Item) Price() float64 {
	return i.price
}

// Subtotal returns price multiplied by quantity.
func (i Item) Subtotal() float64 {
	return i.price * float64(i.quantity)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setBookID(bookID kernel.UUID) error {
	if err := bookID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("bookId", err)
	}
	i.bookID = bookID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", price))
	}
	i.price = price
	return nil
}
