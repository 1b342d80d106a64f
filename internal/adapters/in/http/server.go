package http

import (
	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// Server exposes the application's use cases over HTTP. It coordinates
// between echo handlers and the command/query handlers.
type Server struct {
	tokens auth.TokenService
	hasher auth.PasswordHasher

	// Command handlers
	registerUserHandler      commands.RegisterUserCommandHandler
	createBookHandler        commands.CreateBookCommandHandler
	updateBookHandler        commands.UpdateBookCommandHandler
	deleteBookHandler        commands.DeleteBookCommandHandler
	placeOrderHandler        commands.PlaceOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	addReviewHandler         commands.AddReviewCommandHandler
	deleteReviewHandler      commands.DeleteReviewCommandHandler

	// Query handlers
	getUserByEmailHandler  queries.GetUserByEmailQueryHandler
	getAllBooksHandler     queries.GetAllBooksQueryHandler
	getBookHandler         queries.GetBookQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
	getOrdersByUserHandler queries.GetOrdersByUserQueryHandler
	getAllOrdersHandler    queries.GetAllOrdersQueryHandler
	getReviewsHandler      queries.GetReviewsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	tokens auth.TokenService,
	hasher auth.PasswordHasher,
	registerUserHandler commands.RegisterUserCommandHandler,
	createBookHandler commands.CreateBookCommandHandler,
	updateBookHandler commands.UpdateBookCommandHandler,
	deleteBookHandler commands.DeleteBookCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	addReviewHandler commands.AddReviewCommandHandler,
	deleteReviewHandler commands.DeleteReviewCommandHandler,
	getUserByEmailHandler queries.GetUserByEmailQueryHandler,
	getAllBooksHandler queries.GetAllBooksQueryHandler,
	getBookHandler queries.GetBookQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersByUserHandler queries.GetOrdersByUserQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getReviewsHandler queries.GetReviewsQueryHandler,
) *Server {
	return &Server{
		tokens:                   tokens,
		hasher:                   hasher,
		registerUserHandler:      registerUserHandler,
		createBookHandler:        createBookHandler,
		updateBookHandler:        updateBookHandler,
		deleteBookHandler:        deleteBookHandler,
		placeOrderHandler:        placeOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		addReviewHandler:         addReviewHandler,
		deleteReviewHandler:      deleteReviewHandler,
		getUserByEmailHandler:    getUserByEmailHandler,
		getAllBooksHandler:       getAllBooksHandler,
		getBookHandler:           getBookHandler,
		getOrderHandler:          getOrderHandler,
		getOrdersByUserHandler:   getOrdersByUserHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getReviewsHandler:        getReviewsHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance. Catalog
// reads are public, order and review writes need a valid token, and
// catalog mutations plus cross-user listings need the admin role.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	authenticated := requireAuth(s.tokens)
	adminOnly := requireAdmin()

	api.POST("/users/register", s.RegisterUser)
	api.POST("/users/login", s.Login)

	api.GET("/books", s.GetBooks)
	api.GET("/books/:bookId", s.GetBook)
	api.POST("/books", s.CreateBook, authenticated, adminOnly)
	api.PUT("/books/:bookId", s.UpdateBook, authenticated, adminOnly)
	api.DELETE("/books/:bookId", s.DeleteBook, authenticated, adminOnly)

	api.POST("/orders", s.PlaceOrder, authenticated)
	api.GET("/orders", s.GetAllOrders, authenticated, adminOnly)
	api.GET("/orders/:orderId", s.GetOrder, authenticated)
	api.GET("/users/:userId/orders", s.GetOrdersByUser, authenticated)
	api.PATCH("/orders/:orderId/status", s.ChangeOrderStatus, authenticated)
	api.DELETE("/orders/:orderId", s.DeleteOrder, authenticated, adminOnly)

	api.GET("/books/:bookId/reviews", s.GetBookReviews)
	api.GET("/reviews", s.GetReviews, authenticated, adminOnly)
	api.POST("/reviews", s.AddReview, authenticated)
	api.DELETE("/reviews/:reviewId", s.DeleteReview, authenticated, adminOnly)
}
