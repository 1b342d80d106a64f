package http

import (
	"net/http"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetBookReviews handles GET /api/v1/books/:bookId/reviews - lists a
// book's reviews, most recent first.
func (s *Server) GetBookReviews(ctx echo.Context) error {
	bookID, err := kernel.UUIDFromString(ctx.Param("bookId"))
	if err != nil {
		return badRequest(ctx, "invalid book id")
	}

	query, err := queries.NewGetReviewsByBookQuery(bookID)
	if err != nil {
		return respondError(ctx, err)
	}

	reviews, err := s.getReviewsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toReviewResponses(reviews))
}

// GetReviews handles GET /api/v1/reviews - lists every review, or one
// user's reviews when the userId query parameter is set.
func (s *Server) GetReviews(ctx echo.Context) error {
	var query queries.GetReviewsQuery

	if rawUserID := ctx.QueryParam("userId"); rawUserID != "" {
		userID, err := kernel.UUIDFromString(rawUserID)
		if err != nil {
			return badRequest(ctx, "invalid user id")
		}

		query, err = queries.NewGetReviewsByUserQuery(userID)
		if err != nil {
			return respondError(ctx, err)
		}
	} else {
		query = queries.NewGetAllReviewsQuery()
	}

	reviews, err := s.getReviewsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toReviewResponses(reviews))
}

// AddReview handles POST /api/v1/reviews - records the authenticated
// user's review of a book.
func (s *Server) AddReview(ctx echo.Context) error {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	var request addReviewRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	bookID, err := kernel.UUIDFromString(request.BookID)
	if err != nil {
		return badRequest(ctx, "invalid book id")
	}

	reviewID := kernel.NewUUID()
	cmd, err := commands.NewAddReviewCommand(
		reviewID,
		bookID,
		claims.UserID,
		request.ReviewText,
		request.Rating,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.addReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: reviewID.String()})
}

// DeleteReview handles DELETE /api/v1/reviews/:reviewId - removes a review.
func (s *Server) DeleteReview(ctx echo.Context) error {
	reviewID, err := kernel.UUIDFromString(ctx.Param("reviewId"))
	if err != nil {
		return badRequest(ctx, "invalid review id")
	}

	cmd, err := commands.NewDeleteReviewCommand(reviewID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func toReviewResponses(results []queries.ReviewResponse) []reviewResponse {
	response := make([]reviewResponse, len(results))
	for i, result := range results {
		response[i] = reviewResponse{
			ID:         result.ID.String(),
			BookID:     result.BookID.String(),
			UserID:     result.UserID.String(),
			UserName:   result.UserName,
			ReviewText: result.ReviewText,
			Rating:     result.Rating,
			ReviewDate: result.ReviewDate,
		}
	}
	return response
}
