package commands_test

import (
	"testing"
	"time"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, items ...order.Item) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "12 Elm St", "12 Elm St", time.Now().UTC())
	require.NoError(t, err)
	for _, item := range items {
		require.NoError(t, o.AddItem(item))
	}

	return o
}

func newTestItem(t *testing.T, bookID kernel.UUID, quantity int, price float64) order.Item {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), bookID, quantity, price)
	require.NoError(t, err)

	return item
}

func TestChangeOrderStatusCommandHandler_Handle_ForwardTransition(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t)
	cmd, err := commands.NewChangeOrderStatusCommand(testOrder.ID(), order.Processing)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockOrderEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("PublishOrderStatusChanged", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Processing, testOrder.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_CancellationRestoresStock(t *testing.T) {
	ctx := t.Context()

	firstBookID := kernel.NewUUID()
	secondBookID := kernel.NewUUID()
	testOrder := newTestOrder(t,
		newTestItem(t, firstBookID, 2, 100),
		newTestItem(t, secondBookID, 1, 50),
	)

	cmd, err := commands.NewChangeOrderStatusCommand(testOrder.ID(), order.Cancelled)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	bookRepo := new(MockBookRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("BookRepository").Return(bookRepo).Once(),
		bookRepo.On("IncrementStock", ctx, firstBookID, 2).Return(nil).Once(),
		bookRepo.On("IncrementStock", ctx, secondBookID, 1).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, testOrder.IsCancelled())
	bookRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_RecancelIsNoOp(t *testing.T) {
	ctx := t.Context()

	bookID := kernel.NewUUID()
	testOrder := newTestOrder(t, newTestItem(t, bookID, 2, 100))
	require.NoError(t, testOrder.ChangeStatus(order.Cancelled))

	cmd, err := commands.NewChangeOrderStatusCommand(testOrder.ID(), order.Cancelled)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	bookRepo := new(MockBookRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	bookRepo.AssertNotCalled(t, "IncrementStock", mock.Anything, mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_ReactivationRejected(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t)
	require.NoError(t, testOrder.ChangeStatus(order.Cancelled))

	cmd, err := commands.NewChangeOrderStatusCommand(testOrder.ID(), order.Shipped)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrOrderAlreadyCancelled)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_RegressionRejected(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestOrder(t)
	require.NoError(t, testOrder.ChangeStatus(order.Delivered))

	cmd, err := commands.NewChangeOrderStatusCommand(testOrder.ID(), order.Pending)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
}
