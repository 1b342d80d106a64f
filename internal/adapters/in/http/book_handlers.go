package http

import (
	"net/http"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetBooks handles GET /api/v1/books - lists the catalog, optionally
// filtered by the category query parameter.
func (s *Server) GetBooks(ctx echo.Context) error {
	query := queries.NewGetAllBooksQuery(ctx.QueryParam("category"))

	books, err := s.getAllBooksHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]bookResponse, len(books))
	for i, item := range books {
		response[i] = toBookResponse(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetBook handles GET /api/v1/books/:bookId - retrieves one book.
func (s *Server) GetBook(ctx echo.Context) error {
	bookID, err := kernel.UUIDFromString(ctx.Param("bookId"))
	if err != nil {
		return badRequest(ctx, "invalid book id")
	}

	query, err := queries.NewGetBookQuery(bookID)
	if err != nil {
		return respondError(ctx, err)
	}

	item, err := s.getBookHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBookResponse(item))
}

// CreateBook handles POST /api/v1/books - adds a book to the catalog.
func (s *Server) CreateBook(ctx echo.Context) error {
	var request bookRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	category, err := book.CategoryFromString(request.Category)
	if err != nil {
		return respondError(ctx, err)
	}

	bookID := kernel.NewUUID()
	cmd, err := commands.NewCreateBookCommand(
		bookID,
		request.Title,
		request.Author,
		request.Description,
		request.Price,
		request.StockQuantity,
		category,
		request.CoverImage,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createBookHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: bookID.String()})
}

// UpdateBook handles PUT /api/v1/books/:bookId - replaces catalog details.
func (s *Server) UpdateBook(ctx echo.Context) error {
	bookID, err := kernel.UUIDFromString(ctx.Param("bookId"))
	if err != nil {
		return badRequest(ctx, "invalid book id")
	}

	var request bookRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	category, err := book.CategoryFromString(request.Category)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateBookCommand(
		bookID,
		request.Title,
		request.Author,
		request.Description,
		request.Price,
		request.StockQuantity,
		category,
		request.CoverImage,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateBookHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteBook handles DELETE /api/v1/books/:bookId - removes a book.
func (s *Server) DeleteBook(ctx echo.Context) error {
	bookID, err := kernel.UUIDFromString(ctx.Param("bookId"))
	if err != nil {
		return badRequest(ctx, "invalid book id")
	}

	cmd, err := commands.NewDeleteBookCommand(bookID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteBookHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func toBookResponse(item queries.BookResponse) bookResponse {
	return bookResponse{
		ID:            item.ID.String(),
		Title:         item.Title,
		Author:        item.Author,
		Description:   item.Description,
		Price:         item.Price,
		StockQuantity: item.StockQuantity,
		Category:      item.Category,
		CoverImage:    item.CoverImage,
	}
}
