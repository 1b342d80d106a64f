// Package order provides domain entities and business logic for order management
// in the bookstore. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items, and lifecycle
//   - Item: An immutable line item carrying a point-in-time unit price snapshot
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier, owner, and both addresses
//   - The order total always equals the sum of item subtotals
//   - Fulfillment proceeds forward only: Pending -> Processing -> Shipped -> Delivered
//   - Cancelled is reachable from any non-cancelled status and is terminal
//   - Re-cancelling a cancelled order is a no-op, so stock is never restored twice
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
