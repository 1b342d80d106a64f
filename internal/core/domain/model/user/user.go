package user

import (
	"errors"
	"regexp"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created through
// the NewUser or RestoreUser factory methods.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User represents a registered customer or administrator account.
//
// The aggregate never stores plaintext passwords: constructors accept a
// bcrypt hash produced by the auth package, and credential checks happen
// outside the domain model.
type User struct {
	id           kernel.UUID
	userName     string
	email        string
	mobileNumber string
	passwordHash string
	role         Role

	isConstructed bool
}

// NewUser creates a user account with the default customer role.
func NewUser(id kernel.UUID, userName, email, mobileNumber, passwordHash string) (*User, error) {
	return newUser(id, userName, email, mobileNumber, passwordHash, RoleUser)
}

// RestoreUser reconstructs a User from persistence.
func RestoreUser(id kernel.UUID, userName, email, mobileNumber, passwordHash string, role Role) (*User, error) {
	return newUser(id, userName, email, mobileNumber, passwordHash, role)
}

func newUser(id kernel.UUID, userName, email, mobileNumber, passwordHash string, role Role) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setUserName(userName),
		u.setEmail(email),
		u.setMobileNumber(mobileNumber),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// UserName returns the display name.
func (u *User) UserName() string {
	return u.userName
}

// Email returns the login email address.
func (u *User) Email() string {
	return u.email
}

// MobileNumber returns the contact phone number.
func (u *User) MobileNumber() string {
	return u.mobileNumber
}

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's access role.
func (u *User) Role() Role {
	return u.role
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUserName(userName string) error {
	if userName == "" {
		return errs.NewValueIsRequiredError("userName")
	}
	u.userName = userName
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setMobileNumber(mobileNumber string) error {
	if mobileNumber == "" {
		return errs.NewValueIsRequiredError("mobileNumber")
	}
	u.mobileNumber = mobileNumber
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
