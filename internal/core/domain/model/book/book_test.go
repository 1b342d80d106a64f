package book_test

import (
	"testing"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBook(t *testing.T) *book.Book {
	t.Helper()
	b, err := book.NewBook(kernel.NewUUID(),
		"The Go Programming Language", "Donovan & Kernighan",
		"A comprehensive introduction to Go", 39.99, 10,
		book.Science, "/uploads/books/gopl.jpg")
	require.NoError(t, err)
	return b
}

func TestNewBook(t *testing.T) {
	t.Run("should create valid book with all valid parameters", func(t *testing.T) {
		b := validBook(t)

		require.NoError(t, b.Validate())
		assert.Equal(t, "The Go Programming Language", b.Title())
		assert.Equal(t, 39.99, b.Price())
		assert.Equal(t, 10, b.StockQuantity())
		assert.Equal(t, book.Science, b.Category())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		b, err := book.NewBook(invalidID, "T", "A", "D", 1, 1, book.Fiction, "/c.jpg")

		require.Error(t, err)
		assert.Nil(t, b)
	})

	t.Run("should fail with empty title", func(t *testing.T) {
		b, err := book.NewBook(kernel.NewUUID(), "", "A", "D", 1, 1, book.Fiction, "/c.jpg")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, b)
	})

	t.Run("should fail with empty description", func(t *testing.T) {
		b, err := book.NewBook(kernel.NewUUID(), "T", "A", "", 1, 1, book.Fiction, "/c.jpg")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, b)
	})

	t.Run("should fail with empty cover image", func(t *testing.T) {
		b, err := book.NewBook(kernel.NewUUID(), "T", "A", "D", 1, 1, book.Fiction, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, b)
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		b, err := book.NewBook(kernel.NewUUID(), "T", "A", "D", -0.01, 1, book.Fiction, "/c.jpg")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, b)
	})

	t.Run("should fail with negative stock quantity", func(t *testing.T) {
		b, err := book.NewBook(kernel.NewUUID(), "T", "A", "D", 1, -1, book.Fiction, "/c.jpg")

		require.Error(t, err)
		assert.Nil(t, b)
	})

	t.Run("should fail with unknown category", func(t *testing.T) {
		b, err := book.NewBook(kernel.NewUUID(), "T", "A", "D", 1, 1, book.Category("Cooking"), "/c.jpg")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, b)
	})

	t.Run("zero stock is allowed", func(t *testing.T) {
		b, err := book.NewBook(kernel.NewUUID(), "T", "A", "D", 1, 0, book.Fiction, "/c.jpg")

		require.NoError(t, err)
		assert.Equal(t, 0, b.StockQuantity())
	})
}

func TestBook_Validate(t *testing.T) {
	t.Run("constructed book is valid", func(t *testing.T) {
		require.NoError(t, validBook(t).Validate())
	})

	t.Run("zero value book is invalid", func(t *testing.T) {
		var b book.Book
		require.ErrorIs(t, b.Validate(), book.ErrBookIsNotConstructed)
	})

	t.Run("nil book is invalid", func(t *testing.T) {
		var b *book.Book
		require.ErrorIs(t, b.Validate(), book.ErrBookIsNotConstructed)
	})
}

func TestBook_RemoveStock(t *testing.T) {
	t.Run("should decrease stock quantity", func(t *testing.T) {
		b := validBook(t)

		require.NoError(t, b.RemoveStock(3))
		assert.Equal(t, 7, b.StockQuantity())
	})

	t.Run("can remove stock down to zero", func(t *testing.T) {
		b := validBook(t)

		require.NoError(t, b.RemoveStock(10))
		assert.Equal(t, 0, b.StockQuantity())
	})

	t.Run("should fail when removal exceeds stock", func(t *testing.T) {
		b := validBook(t)

		err := b.RemoveStock(11)

		require.Error(t, err)
		require.ErrorIs(t, err, book.ErrInsufficientStock)
		assert.Contains(t, err.Error(), "The Go Programming Language")
		assert.Equal(t, 10, b.StockQuantity())
	})

	t.Run("insufficient stock error carries quantities", func(t *testing.T) {
		b := validBook(t)

		err := b.RemoveStock(15)

		var stockErr *book.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 15, stockErr.Requested)
		assert.Equal(t, 10, stockErr.Available)
		assert.Equal(t, "The Go Programming Language", stockErr.BookTitle)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		b := validBook(t)

		require.Error(t, b.RemoveStock(0))
		assert.Equal(t, 10, b.StockQuantity())
	})
}

func TestBook_AddStock(t *testing.T) {
	t.Run("should increase stock quantity", func(t *testing.T) {
		b := validBook(t)

		require.NoError(t, b.AddStock(5))
		assert.Equal(t, 15, b.StockQuantity())
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		b := validBook(t)

		require.Error(t, b.AddStock(0))
		require.Error(t, b.AddStock(-2))
		assert.Equal(t, 10, b.StockQuantity())
	})

	t.Run("remove then add restores original stock", func(t *testing.T) {
		b := validBook(t)

		require.NoError(t, b.RemoveStock(4))
		require.NoError(t, b.AddStock(4))
		assert.Equal(t, 10, b.StockQuantity())
	})
}

func TestBook_Update(t *testing.T) {
	t.Run("should replace catalog details", func(t *testing.T) {
		b := validBook(t)

		err := b.Update("New Title", "New Author", "New description", 24.5, 3, book.Fantasy, "/new.jpg")

		require.NoError(t, err)
		assert.Equal(t, "New Title", b.Title())
		assert.Equal(t, 24.5, b.Price())
		assert.Equal(t, 3, b.StockQuantity())
		assert.Equal(t, book.Fantasy, b.Category())
	})

	t.Run("should reject invalid details", func(t *testing.T) {
		b := validBook(t)

		err := b.Update("", "New Author", "New description", 24.5, 3, book.Fantasy, "/new.jpg")

		require.Error(t, err)
	})
}

func TestCategoryFromString(t *testing.T) {
	t.Run("parses all known categories", func(t *testing.T) {
		for _, c := range book.AllCategories() {
			parsed, err := book.CategoryFromString(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, parsed)
		}
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := book.CategoryFromString("Biography")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
