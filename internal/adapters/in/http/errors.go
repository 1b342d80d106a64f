package http

import (
	"errors"
	"net/http"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError translates application and domain errors into the JSON
// error envelope. Validation failures map to 400, missing objects to
// 404, and business rule conflicts (oversell, duplicate email, illegal
// status moves) to 409. Everything unrecognized is a 500 with a generic
// message so internals never leak to clients.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, book.ErrInsufficientStock),
		errors.Is(err, order.ErrInvalidStatusTransition),
		errors.Is(err, order.ErrOrderAlreadyCancelled),
		errors.Is(err, commands.ErrEmailAlreadyRegistered):
		code = http.StatusConflict
		message = err.Error()
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
