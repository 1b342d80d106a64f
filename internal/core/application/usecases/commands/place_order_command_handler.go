package commands

import (
	"context"
	"log/slog"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
//
// Placement runs as a single transaction: the order shell is assembled
// line by line, and for each line the book's stock is decremented with an
// atomic conditional update before the line item is attached with the
// catalog price snapshot. If any line fails, the whole order rolls back
// and every prior decrement is undone with it.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// The publisher may be nil; events are then skipped.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory, publisher ports.OrderEventPublisher) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order placement command.
//
// For each requested line it loads the book, performs the conditional
// stock decrement, and attaches a line item carrying the current catalog
// price. The order and all stock changes commit together. After a
// successful commit an order placed event is published best effort.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	bookRepo := uow.BookRepository()
	orderRepo := uow.OrderRepository()

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.UserID(),
		cmd.ShippingAddress(),
		cmd.BillingAddress(),
		cmd.OrderDate(),
	)
	if err != nil {
		return err
	}

	for _, line := range cmd.Lines() {
		aggregate, err := bookRepo.Get(ctx, line.BookID)
		if err != nil {
			return err
		}

		if err = bookRepo.DecrementStock(ctx, aggregate.ID(), line.Quantity); err != nil {
			return err
		}

		item, err := order.NewItem(kernel.NewUUID(), aggregate.ID(), line.Quantity, aggregate.Price())
		if err != nil {
			return err
		}

		if err = newOrder.AddItem(item); err != nil {
			return err
		}
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publishPlaced(ctx, newOrder)
	return nil
}

func (h *PlaceOrderCommandHandler) publishPlaced(ctx context.Context, aggregate *order.Order) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.PublishOrderPlaced(ctx, aggregate); err != nil {
		slog.Warn("failed to publish order placed event",
			slog.String("orderId", aggregate.ID().String()),
			slog.Any("error", err))
	}
}
