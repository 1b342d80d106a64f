package queries

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrGetUserByEmailQueryIsNotConstructed = errors.New(
	"GetUserByEmailQuery must be created via NewGetUserByEmailQuery constructor",
)

// GetUserByEmailQuery retrieves an account by login email. Used by the
// login flow, so the read model includes the stored password hash for
// credential verification at the API edge.
type GetUserByEmailQuery struct {
	email string

	guard guard.ConstructorGuard
}

// NewGetUserByEmailQuery creates a query to look up an account by email.
func NewGetUserByEmailQuery(email string) (GetUserByEmailQuery, error) {
	if email == "" {
		return GetUserByEmailQuery{}, errs.NewValueIsRequiredError("email")
	}

	return GetUserByEmailQuery{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserByEmailQuery) Validate() error {
	return q.guard.Validate(ErrGetUserByEmailQueryIsNotConstructed)
}

// Email returns the login email to look up.
func (q GetUserByEmailQuery) Email() string {
	return q.email
}

// UserResponse represents an account in the read model.
// PasswordHash is only consumed by the login flow and never serialized
// to API responses.
type UserResponse struct {
	ID           kernel.UUID
	UserName     string
	Email        string
	MobileNumber string
	PasswordHash string
	Role         string
}
