package queries

import (
	"context"
	"database/sql"
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserByEmailQueryHandler retrieves an account record by login email.
type GetUserByEmailQueryHandler struct {
	db *gorm.DB
}

// NewGetUserByEmailQueryHandler creates a handler for account lookup queries.
func NewGetUserByEmailQueryHandler(db *gorm.DB) GetUserByEmailQueryHandler {
	return GetUserByEmailQueryHandler{db: db}
}

// Handle executes the query to look up one account.
// Returns an ObjectNotFoundError when no account uses the email.
func (h GetUserByEmailQueryHandler) Handle(ctx context.Context, query GetUserByEmailQuery) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_name,
			email,
			mobile_number,
			password_hash,
			role
		FROM users
		WHERE email = ?
	`, query.Email()).Row()

	var response UserResponse
	var id uuid.UUID

	err := row.Scan(
		&id,
		&response.UserName,
		&response.Email,
		&response.MobileNumber,
		&response.PasswordHash,
		&response.Role,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return UserResponse{}, errs.NewObjectNotFoundError("email", query.Email())
		}
		return UserResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return UserResponse{}, err
	}

	return response, nil
}
