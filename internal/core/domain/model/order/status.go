package order

import (
	"errors"
	"fmt"

	"bookstore/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so the terminal
// cancellation rule and the forward-only fulfillment rule are
// machine-checkable rather than encoded in ad hoc string comparisons.
//
// State transitions:
//
//	Pending ──> Processing ──> Shipped ──> Delivered
//	   │             │            │            │
//	   └─────────────┴────────────┴────────────┴──> Cancelled
//
// Fulfillment states may be skipped (Pending -> Shipped is allowed) but
// never revisited. Cancelled is terminal: once entered, no transition
// out of it is permitted, and stock restoration happens exactly once.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first placed.
	Pending

	// Processing indicates the order has been picked up for fulfillment.
	Processing

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order has reached the customer.
	Delivered

	// Cancelled is the terminal status. Entering it restores the order's
	// items to stock; once set it can never change again.
	Cancelled
)

var (
	// ErrOrderAlreadyCancelled is returned on any attempt to move a
	// cancelled order to another status.
	ErrOrderAlreadyCancelled = errors.New("cancelled orders cannot be reactivated")

	// ErrInvalidStatusTransition is the sentinel for all
	// InvalidStatusTransitionError instances.
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// InvalidStatusTransitionError reports a forbidden move in the order
// lifecycle, carrying both endpoints for diagnostics.
type InvalidStatusTransitionError struct {
	From Status
	To   Status
}

func NewInvalidStatusTransitionError(from, to Status) *InvalidStatusTransitionError {
	return &InvalidStatusTransitionError{From: from, To: to}
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

func (e *InvalidStatusTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// StatusFromString parses a status name into a Status.
// Returns an error when the name does not match a valid status;
// "Unknown" is rejected.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Processing, Shipped, Delivered, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are permitted
// from this status.
func (s Status) IsTerminal() bool {
	return s == Cancelled
}

// CanTransitionTo checks whether moving from s to target is permitted,
// without performing the transition.
//
// Rules:
//   - Cancelled -> Cancelled is permitted (callers treat it as a no-op)
//   - Cancelled -> anything else fails with ErrOrderAlreadyCancelled
//   - anything -> Cancelled is permitted
//   - fulfillment states move forward only: target must not precede the
//     current status in Pending -> Processing -> Shipped -> Delivered
//     (re-requesting the current status is permitted and is a no-op)
func (s Status) CanTransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if s == Cancelled {
		if target == Cancelled {
			return nil
		}
		return ErrOrderAlreadyCancelled
	}

	if target == Cancelled {
		return nil
	}

	if target < s {
		return NewInvalidStatusTransitionError(s, target)
	}

	return nil
}
