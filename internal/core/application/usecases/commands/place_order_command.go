package commands

import (
	"errors"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// OrderLine is a requested book and quantity within a PlaceOrderCommand.
// Prices are not part of the request: the unit price is snapshotted from
// the catalog at placement time.
type OrderLine struct {
	BookID   kernel.UUID
	Quantity int
}

// PlaceOrderCommand represents a request to place a new order.
// Encapsulates the customer, the destination addresses, and the
// requested book quantities.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	lines := []OrderLine{{BookID: bookID, Quantity: 2}}
//	cmd, err := NewPlaceOrderCommand(orderID, userID, "12 Elm St", "12 Elm St", lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	userID          kernel.UUID
	shippingAddress string
	billingAddress  string
	lines           []OrderLine
	orderDate       time.Time

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that the identifiers are valid, both addresses are present,
// and at least one line with a positive quantity is requested.
func NewPlaceOrderCommand(
	orderID, userID kernel.UUID,
	shippingAddress, billingAddress string,
	lines []OrderLine,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		orderDate: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setAddresses(shippingAddress, billingAddress),
		cmd.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the ordering customer.
func (c PlaceOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// ShippingAddress returns the delivery address.
func (c PlaceOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

// BillingAddress returns the billing address.
func (c PlaceOrderCommand) BillingAddress() string {
	return c.billingAddress
}

// Lines returns the requested books and quantities.
func (c PlaceOrderCommand) Lines() []OrderLine {
	return c.lines
}

// OrderDate returns the placement timestamp captured at command creation.
func (c PlaceOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	c.userID = userID
	return nil
}

func (c *PlaceOrderCommand) setAddresses(shippingAddress, billingAddress string) error {
	if shippingAddress == "" {
		return errs.NewValueIsRequiredError("shippingAddress")
	}
	if billingAddress == "" {
		return errs.NewValueIsRequiredError("billingAddress")
	}

	c.shippingAddress = shippingAddress
	c.billingAddress = billingAddress
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, line := range lines {
		if err := line.BookID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("bookId", err)
		}
		if line.Quantity < 1 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}

	c.lines = lines
	return nil
}
