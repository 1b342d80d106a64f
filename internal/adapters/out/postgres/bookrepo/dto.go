// Package bookrepo provides data transfer objects and mapping functions for
// catalog persistence. Implements the repository pattern for the book domain
// aggregate, handling conversion between domain entities and database rows.
package bookrepo

import (
	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BookDTO represents the database structure for persisting book aggregates.
// The category is indexed for catalog filtering.
type BookDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title         string    `gorm:"not null"`
	Author        string    `gorm:"not null"`
	Description   string
	Price         float64 `gorm:"not null"`
	StockQuantity int     `gorm:"not null"`
	Category      string  `gorm:"index;not null"`
	CoverImage    string
}

// TableName specifies the database table name for book entities.
func (BookDTO) TableName() string {
	return "books"
}

// fromDomain converts a book domain aggregate to its database representation.
func fromDomain(aggregate *book.Book) BookDTO {
	return BookDTO{
		ID:            aggregate.ID().Bytes(),
		Title:         aggregate.Title(),
		Author:        aggregate.Author(),
		Description:   aggregate.Description(),
		Price:         aggregate.Price(),
		StockQuantity: aggregate.StockQuantity(),
		Category:      aggregate.Category().String(),
		CoverImage:    aggregate.CoverImage(),
	}
}

// toDomain converts a database DTO to a book domain aggregate using RestoreBook.
func toDomain(dto BookDTO) (*book.Book, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	category, err := book.CategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}

	return book.RestoreBook(
		id,
		dto.Title,
		dto.Author,
		dto.Description,
		dto.Price,
		dto.StockQuantity,
		category,
		dto.CoverImage,
	)
}
