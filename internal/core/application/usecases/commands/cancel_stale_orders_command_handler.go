package commands

import (
	"context"
	"log/slog"
	"time"

	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/ports"
)

// CancelStaleOrdersCommandHandler cancels pending orders that were never
// taken into fulfillment. Each cancellation restores the order's items to
// stock under the same rules as a customer cancellation.
type CancelStaleOrdersCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale order sweep.
// The publisher may be nil; events are then skipped.
func NewCancelStaleOrdersCommandHandler(uowFactory UoWFactory, publisher ports.OrderEventPublisher) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the sweep command. All stale orders are cancelled in
// one transaction so a crash mid-sweep leaves no half-restored stock.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	bookRepo := uow.BookRepository()

	cutoff := time.Now().UTC().Add(-cmd.MaxAge())
	staleOrders, err := orderRepo.GetAllPendingOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, aggregate := range staleOrders {
		if err = aggregate.ChangeStatus(order.Cancelled); err != nil {
			return err
		}

		for _, item := range aggregate.Items() {
			if err = bookRepo.IncrementStock(ctx, item.BookID(), item.Quantity()); err != nil {
				return err
			}
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, aggregate := range staleOrders {
		h.publishCancelled(ctx, aggregate)
	}
	return nil
}

func (h *CancelStaleOrdersCommandHandler) publishCancelled(ctx context.Context, aggregate *order.Order) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.PublishOrderStatusChanged(ctx, aggregate); err != nil {
		slog.Warn("failed to publish order status changed event",
			slog.String("orderId", aggregate.ID().String()),
			slog.Any("error", err))
	}
}
