package order

import (
	"errors"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a customer order. It is the aggregate root that manages
// the order lifecycle from placement through fulfillment to delivery or
// cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owner
//   - Shipping and billing addresses must be non-empty
//   - Once finalized, totalAmount equals the sum of item subtotals
//     (unit price snapshot times quantity)
//   - Status transitions follow the rules encoded in Status
//   - Cancelled is terminal: a cancelled order never mutates again
//
// An order is created as a shell: Pending status, zero total, no items.
// Order assembly appends validated line items one by one, each appending
// keeping the running total consistent, so the total invariant holds at
// every step rather than only at finalization.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID references the customer who placed the order
	userID kernel.UUID

	// orderDate is the placement timestamp
	orderDate time.Time

	// status represents the current state in the order lifecycle
	status Status

	shippingAddress string
	billingAddress  string

	// totalAmount is the running sum of item subtotals
	totalAmount float64

	// items are the order's line items, in the sequence they were added
	items []Item

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new order shell: Pending status, zero total, no items.
// Line items are added afterwards via AddItem during order assembly.
//
// Returns a validation error if the identifiers are invalid or either
// address is empty.
func NewOrder(id, userID kernel.UUID, shippingAddress, billingAddress string, orderDate time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		orderDate:     orderDate,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setAddresses(shippingAddress, billingAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status,
// total, and line items. The items must individually be valid; the stored
// total is trusted as-is since it was computed under the aggregate's rules.
func RestoreOrder(
	id, userID kernel.UUID,
	orderDate time.Time,
	status Status,
	shippingAddress, billingAddress string,
	totalAmount float64,
	items []Item,
) (*Order, error) {
	o := &Order{
		orderDate:     orderDate,
		totalAmount:   totalAmount,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setAddresses(shippingAddress, billingAddress),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	o.items = items

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the customer who placed the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// OrderDate returns the placement timestamp.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// ShippingAddress returns the delivery address.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// BillingAddress returns the billing address.
func (o *Order) BillingAddress() string {
	return o.billingAddress
}

// TotalAmount returns the running sum of item subtotals.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Items returns the order's line items in the sequence they were added.
func (o *Order) Items() []Item {
	return o.items
}

// IsCancelled reports whether the order is in the terminal Cancelled status.
func (o *Order) IsCancelled() bool {
	return o.status == Cancelled
}

// AddItem appends a line item and adds its subtotal to the order total,
// keeping the total invariant intact at every step of assembly.
//
// Items can only be added while the order is Pending; an order that has
// entered fulfillment or been cancelled is closed for assembly.
func (o *Order) AddItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if o.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause("orderStatus",
			NewInvalidStatusTransitionError(o.status, Pending))
	}

	o.items = append(o.items, item)
	o.totalAmount += item.Subtotal()
	return nil
}

// ChangeStatus moves the order to the requested status.
//
// The transition rules are enforced by Status.CanTransitionTo: cancelled
// orders reject every change (ErrOrderAlreadyCancelled), fulfillment
// states only move forward, and any non-cancelled order may be cancelled.
// Re-requesting the current status is a no-op; in particular, cancelling
// an already-cancelled order succeeds without effect, which is what lets
// callers guarantee stock is never restored twice.
func (o *Order) ChangeStatus(target Status) error {
	if err := o.status.CanTransitionTo(target); err != nil {
		return err
	}

	o.status = target
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setAddresses(shippingAddress, billingAddress string) error {
	if shippingAddress == "" {
		return errs.NewValueIsRequiredError("shippingAddress")
	}
	if billingAddress == "" {
		return errs.NewValueIsRequiredError("billingAddress")
	}
	o.shippingAddress = shippingAddress
	o.billingAddress = billingAddress
	return nil
}
