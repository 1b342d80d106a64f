package user

import (
	"fmt"

	"bookstore/internal/pkg/errs"
)

// Role determines which API surfaces a user may reach.
type Role string

const (
	// RoleUser is the default role for registered customers.
	RoleUser Role = "user"

	// RoleAdmin grants catalog management and order administration.
	RoleAdmin Role = "admin"
)

// RoleFromString parses a role name into a Role.
func RoleFromString(s string) (Role, error) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", s))
	}
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	switch r {
	case RoleUser, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", r))
	}
}

// String returns the role name.
func (r Role) String() string {
	return string(r)
}
