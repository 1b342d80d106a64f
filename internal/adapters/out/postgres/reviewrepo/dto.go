// Package reviewrepo provides data transfer objects and mapping functions
// for review persistence.
package reviewrepo

import (
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO represents the database structure for persisting review aggregates.
// Indexed by book for review listings.
type ReviewDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookID     uuid.UUID `gorm:"type:uuid;index;not null"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null"`
	ReviewText string    `gorm:"not null"`
	Rating     int       `gorm:"not null"`
	ReviewDate time.Time `gorm:"not null"`
}

// TableName specifies the database table name for review entities.
func (ReviewDTO) TableName() string {
	return "reviews"
}

// fromDomain converts a review domain aggregate to its database representation.
func fromDomain(aggregate *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:         aggregate.ID().Bytes(),
		BookID:     aggregate.BookID().Bytes(),
		UserID:     aggregate.UserID().Bytes(),
		ReviewText: aggregate.ReviewText(),
		Rating:     aggregate.Rating(),
		ReviewDate: aggregate.ReviewDate(),
	}
}

// toDomain converts a database DTO to a review domain aggregate using RestoreReview.
func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bookID, err := kernel.UUIDFromBytes(dto.BookID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(id, bookID, userID, dto.ReviewText, dto.Rating, dto.ReviewDate)
}
