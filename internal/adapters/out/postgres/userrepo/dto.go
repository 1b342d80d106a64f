// Package userrepo provides data transfer objects and mapping functions for
// account persistence.
package userrepo

import (
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// Email carries a unique index, it doubles as the login name.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserName     string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	MobileNumber string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		UserName:     aggregate.UserName(),
		Email:        aggregate.Email(),
		MobileNumber: aggregate.MobileNumber(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
	}
}

// toDomain converts a database DTO to a user domain aggregate using RestoreUser.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.UserName, dto.Email, dto.MobileNumber, dto.PasswordHash, role)
}
