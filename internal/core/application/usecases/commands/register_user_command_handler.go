package commands

import (
	"context"
	"errors"

	"bookstore/internal/core/domain/model/user"
	"bookstore/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is returned when the registration email is
// already taken by an existing account.
var ErrEmailAlreadyRegistered = errors.New("email is already registered")

// RegisterUserCommandHandler handles account registration.
// Hashes the password before the aggregate is constructed so plaintext
// credentials never reach the domain model or storage.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     PasswordHasher
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hasher PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command.
// Fails with ErrEmailAlreadyRegistered when the email is taken.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	if _, err = userRepo.GetByEmail(ctx, cmd.Email()); err == nil {
		return ErrEmailAlreadyRegistered
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := user.NewUser(cmd.UserID(), cmd.UserName(), cmd.Email(), cmd.MobileNumber(), passwordHash)
	if err != nil {
		return err
	}

	if err = userRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
