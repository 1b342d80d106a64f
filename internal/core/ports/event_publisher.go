package ports

import (
	"context"

	"bookstore/internal/core/domain/model/order"
)

// OrderEventPublisher notifies downstream systems about order lifecycle
// changes. Publishing happens after the owning transaction commits and
// is best effort: a failed publish is logged, never surfaced to the
// customer.
type OrderEventPublisher interface {
	// PublishOrderPlaced announces a newly placed order.
	PublishOrderPlaced(ctx context.Context, aggregate *order.Order) error

	// PublishOrderStatusChanged announces a status transition.
	PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order) error

	// Close flushes buffered messages and releases the connection.
	Close() error
}
