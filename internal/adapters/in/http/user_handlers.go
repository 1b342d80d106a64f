package http

import (
	"errors"
	"net/http"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// RegisterUser handles POST /api/v1/users/register - creates a new account.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var request registerUserRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(),
		request.UserName,
		request.Email,
		request.MobileNumber,
		request.Password,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// Login handles POST /api/v1/users/login - verifies credentials and
// issues a bearer token. Wrong email and wrong password produce the
// same 401 so the endpoint cannot be used to probe registered emails.
func (s *Server) Login(ctx echo.Context) error {
	var request loginRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	query, err := queries.NewGetUserByEmailQuery(request.Email)
	if err != nil {
		return respondError(ctx, err)
	}

	account, err := s.getUserByEmailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return s.unauthorized(ctx)
		}
		return respondError(ctx, err)
	}

	if !s.hasher.Verify(account.PasswordHash, request.Password) {
		return s.unauthorized(ctx)
	}

	token, err := s.tokens.Sign(account.ID, account.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{Token: token})
}

func (s *Server) unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: "invalid email or password",
	})
}
