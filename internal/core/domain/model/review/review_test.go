package review_test

import (
	"testing"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/review"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	t.Run("creates a review", func(t *testing.T) {
		reviewID := kernel.NewUUID()
		bookID := kernel.NewUUID()
		userID := kernel.NewUUID()
		reviewDate := time.Now().UTC()

		r, err := review.NewReview(reviewID, bookID, userID, "A gripping read.", 5, reviewDate)

		require.NoError(t, err)
		assert.Equal(t, reviewID, r.ID())
		assert.Equal(t, bookID, r.BookID())
		assert.Equal(t, userID, r.UserID())
		assert.Equal(t, "A gripping read.", r.ReviewText())
		assert.Equal(t, 5, r.Rating())
		assert.Equal(t, reviewDate, r.ReviewDate())
	})

	t.Run("accepts boundary ratings", func(t *testing.T) {
		for _, rating := range []int{review.MinRating, review.MaxRating} {
			_, err := review.NewReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "ok", rating, time.Now())

			require.NoError(t, err)
		}
	})

	t.Run("rejects out of range ratings", func(t *testing.T) {
		for _, rating := range []int{0, -1, 6, 42} {
			_, err := review.NewReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "ok", rating, time.Now())

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "rating %d", rating)
		}
	})

	t.Run("fails with empty review text", func(t *testing.T) {
		_, err := review.NewReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", 3, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails with empty book id", func(t *testing.T) {
		_, err := review.NewReview(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), "ok", 3, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails with empty user id", func(t *testing.T) {
		_, err := review.NewReview(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, "ok", 3, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestReview_Validate(t *testing.T) {
	t.Run("zero value review is invalid", func(t *testing.T) {
		var r review.Review

		require.ErrorIs(t, r.Validate(), review.ErrReviewIsNotConstructed)
	})

	t.Run("nil review is invalid", func(t *testing.T) {
		var r *review.Review

		require.ErrorIs(t, r.Validate(), review.ErrReviewIsNotConstructed)
	})
}
