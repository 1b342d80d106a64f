package commands_test

import (
	"testing"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestBook(t *testing.T, id kernel.UUID, price float64, stock int) *book.Book {
	t.Helper()

	b, err := book.NewBook(id, "The Go Programming Language", "Donovan & Kernighan",
		"The definitive guide", price, stock, book.Science, "gopl.jpg")
	require.NoError(t, err)

	return b
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	firstBookID := kernel.NewUUID()
	secondBookID := kernel.NewUUID()
	firstBook := newTestBook(t, firstBookID, 100, 10)
	secondBook := newTestBook(t, secondBookID, 50, 5)

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "12 Elm St", "12 Elm St",
		[]commands.OrderLine{
			{BookID: firstBookID, Quantity: 2},
			{BookID: secondBookID, Quantity: 1},
		})
	require.NoError(t, err)

	bookRepo := new(MockBookRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockOrderEventPublisher)

	var placed *order.Order
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookRepository").Return(bookRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		bookRepo.On("Get", ctx, firstBookID).Return(firstBook, nil).Once(),
		bookRepo.On("DecrementStock", ctx, firstBookID, 2).Return(nil).Once(),
		bookRepo.On("Get", ctx, secondBookID).Return(secondBook, nil).Once(),
		bookRepo.On("DecrementStock", ctx, secondBookID, 1).Return(nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Run(func(args mock.Arguments) {
			placed = args.Get(1).(*order.Order)
		}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("PublishOrderPlaced", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, placed)
	assert.Equal(t, order.Pending, placed.Status())
	assert.Len(t, placed.Items(), 2)
	assert.InDelta(t, 250.0, placed.TotalAmount(), 1e-9)

	bookRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockUoWFactory)
	handler := commands.NewPlaceOrderCommandHandler(factory, nil)
	err := handler.Handle(ctx, commands.PlaceOrderCommand{})

	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()

	bookID := kernel.NewUUID()
	testBook := newTestBook(t, bookID, 100, 1)

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "a", "b",
		[]commands.OrderLine{{BookID: bookID, Quantity: 3}})
	require.NoError(t, err)

	bookRepo := new(MockBookRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	stockErr := book.NewInsufficientStockError(testBook.Title(), 3, 1)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookRepository").Return(bookRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		bookRepo.On("Get", ctx, bookID).Return(testBook, nil).Once(),
		bookRepo.On("DecrementStock", ctx, bookID, 3).Return(stockErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, book.ErrInsufficientStock)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_PublishFailureDoesNotFailOrder(t *testing.T) {
	ctx := t.Context()

	bookID := kernel.NewUUID()
	testBook := newTestBook(t, bookID, 20, 10)

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "a", "b",
		[]commands.OrderLine{{BookID: bookID, Quantity: 1}})
	require.NoError(t, err)

	bookRepo := new(MockBookRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockOrderEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookRepository").Return(bookRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		bookRepo.On("Get", ctx, bookID).Return(testBook, nil).Once(),
		bookRepo.On("DecrementStock", ctx, bookID, 1).Return(nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("PublishOrderPlaced", ctx, mock.AnythingOfType("*order.Order")).
		Return(assert.AnError).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	publisher.AssertExpectations(t)
}
