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

func TestNewCancelStaleOrdersCommand(t *testing.T) {
	cmd, err := commands.NewCancelStaleOrdersCommand(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cmd.MaxAge())

	_, err = commands.NewCancelStaleOrdersCommand(0)
	require.Error(t, err)
}

func TestCancelStaleOrdersCommandHandler_Handle_SweepsPendingOrders(t *testing.T) {
	ctx := t.Context()

	bookID := kernel.NewUUID()
	staleOrder := newTestOrder(t, newTestItem(t, bookID, 2, 30))

	cmd, err := commands.NewCancelStaleOrdersCommand(24 * time.Hour)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	bookRepo := new(MockBookRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("BookRepository").Return(bookRepo).Once(),
		orderRepo.On("GetAllPendingOlderThan", ctx, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{staleOrder}, nil).Once(),
		bookRepo.On("IncrementStock", ctx, bookID, 2).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelStaleOrdersCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, staleOrder.IsCancelled())
	orderRepo.AssertExpectations(t)
	bookRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelStaleOrdersCommandHandler_Handle_NothingToSweep(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCancelStaleOrdersCommand(time.Hour)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	bookRepo := new(MockBookRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("BookRepository").Return(bookRepo).Once(),
		orderRepo.On("GetAllPendingOlderThan", ctx, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelStaleOrdersCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
