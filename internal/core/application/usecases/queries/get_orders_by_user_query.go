package queries

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrGetOrdersByUserQueryIsNotConstructed = errors.New(
	"GetOrdersByUserQuery must be created via NewGetOrdersByUserQuery constructor",
)

// GetOrdersByUserQuery retrieves a customer's order history,
// most recent first.
type GetOrdersByUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersByUserQuery creates a query for one customer's orders.
func NewGetOrdersByUserQuery(userID kernel.UUID) (GetOrdersByUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetOrdersByUserQuery{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	return GetOrdersByUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByUserQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByUserQueryIsNotConstructed)
}

// UserID returns the identifier of the customer whose orders are requested.
func (q GetOrdersByUserQuery) UserID() kernel.UUID {
	return q.userID
}
