package commands

import (
	"errors"
	"fmt"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// minPasswordLength mirrors the registration rule enforced at the API edge.
const minPasswordLength = 6

// RegisterUserCommand represents a request to create a customer account.
// Carries the plaintext password; hashing happens in the handler so the
// domain model only ever sees the hash.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID       kernel.UUID
	userName     string
	email        string
	mobileNumber string
	password     string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new account.
func NewRegisterUserCommand(userID kernel.UUID, userName, email, mobileNumber, password string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setUserName(userName),
		cmd.setEmail(email),
		cmd.setMobileNumber(mobileNumber),
		cmd.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier assigned to the new account.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// UserName returns the display name.
func (c RegisterUserCommand) UserName() string {
	return c.userName
}

// Email returns the login email address.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// MobileNumber returns the contact phone number.
func (c RegisterUserCommand) MobileNumber() string {
	return c.mobileNumber
}

// Password returns the plaintext password to be hashed by the handler.
func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setUserName(userName string) error {
	if userName == "" {
		return errs.NewValueIsRequiredError("userName")
	}

	c.userName = userName
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setMobileNumber(mobileNumber string) error {
	if mobileNumber == "" {
		return errs.NewValueIsRequiredError("mobileNumber")
	}

	c.mobileNumber = mobileNumber
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause("password",
			fmt.Errorf("must be at least %d characters", minPasswordLength))
	}

	c.password = password
	return nil
}
