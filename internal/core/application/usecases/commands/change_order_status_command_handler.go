package commands

import (
	"context"
	"log/slog"

	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/ports"
)

// ChangeOrderStatusCommandHandler handles order status transitions,
// including cancellation with stock restoration.
//
// The transition rules live on the Order aggregate. The handler's job is
// the transactional choreography: when a transition enters Cancelled,
// every line item's quantity goes back to the catalog in the same
// transaction as the status change. Because a cancelled order rejects
// further transitions and re-cancelling is a no-op, stock can never be
// restored twice for the same order.
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
// The publisher may be nil; events are then skipped.
func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory, publisher ports.OrderEventPublisher) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status change command.
//
// Re-requesting the order's current status commits without writing and
// publishes nothing. Any other permitted transition updates the order;
// entering Cancelled additionally restores stock for every line item.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if previous == aggregate.Status() {
		return uow.Commit(ctx)
	}

	if aggregate.IsCancelled() {
		bookRepo := uow.BookRepository()
		for _, item := range aggregate.Items() {
			if err = bookRepo.IncrementStock(ctx, item.BookID(), item.Quantity()); err != nil {
				return err
			}
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publishStatusChanged(ctx, aggregate)
	return nil
}

func (h *ChangeOrderStatusCommandHandler) publishStatusChanged(ctx context.Context, aggregate *order.Order) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.PublishOrderStatusChanged(ctx, aggregate); err != nil {
		slog.Warn("failed to publish order status changed event",
			slog.String("orderId", aggregate.ID().String()),
			slog.String("status", aggregate.Status().String()),
			slog.Any("error", err))
	}
}
