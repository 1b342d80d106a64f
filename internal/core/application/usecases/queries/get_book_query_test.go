package queries_test

import (
	"testing"

	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetBookQuery(t *testing.T) {
	id := kernel.NewUUID()

	query, err := queries.NewGetBookQuery(id)
	require.NoError(t, err)
	assert.Equal(t, id, query.BookID())

	_, err = queries.NewGetBookQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetAllBooksQuery(t *testing.T) {
	query := queries.NewGetAllBooksQuery("Science")

	require.NoError(t, query.Validate())
	assert.Equal(t, "Science", query.Category())

	unfiltered := queries.NewGetAllBooksQuery("")
	assert.Empty(t, unfiltered.Category())
}

func TestNewGetReviewsByBookQuery(t *testing.T) {
	id := kernel.NewUUID()

	query, err := queries.NewGetReviewsByBookQuery(id)
	require.NoError(t, err)
	assert.Equal(t, id, query.BookID())

	_, err = queries.NewGetReviewsByBookQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetReviewsByUserQuery(t *testing.T) {
	id := kernel.NewUUID()

	query, err := queries.NewGetReviewsByUserQuery(id)
	require.NoError(t, err)
	assert.Equal(t, id, query.UserID())
	require.Error(t, query.BookID().Validate())

	_, err = queries.NewGetReviewsByUserQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetAllReviewsQuery(t *testing.T) {
	query := queries.NewGetAllReviewsQuery()

	require.NoError(t, query.Validate())
	require.Error(t, query.BookID().Validate())
	require.Error(t, query.UserID().Validate())
}

func TestNewGetUserByEmailQuery(t *testing.T) {
	query, err := queries.NewGetUserByEmailQuery("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", query.Email())

	_, err = queries.NewGetUserByEmailQuery("")
	require.Error(t, err)
}
