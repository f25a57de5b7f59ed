package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/bookstore"
	"github.com/bobinette/bookstore/errors"
)

// TestReviewRepository runs the repository contract against any
// implementation: id assignment, per-book listing order, in-place
// update, deletion, and no id reuse after a delete.
func TestReviewRepository(t *testing.T, repo bookstore.ReviewRepository) {
	reviews := []*bookstore.Review{
		{BookID: 1, UserID: 7, Rating: 4, Comment: "Good"},
		{BookID: 1, UserID: 9, Rating: 2, Comment: "Not my style"},
		{BookID: 2, UserID: 7, Rating: 5, Comment: "A classic"},
	}

	// Insert: ids are assigned, and all different
	seen := make(map[int]bool)
	for _, review := range reviews {
		err := repo.Upsert(review)
		require.NoError(t, err, "insert must not fail")
		require.NotEqual(t, 0, review.ID, "id must be set by insert")
		require.False(t, seen[review.ID], "all ids must be different")
		seen[review.ID] = true
	}

	// Get
	for _, review := range reviews {
		retrieved, err := repo.Get(review.ID)
		require.NoError(t, err, "get must not fail")
		require.NotNil(t, retrieved, "review %d should be found", review.ID)
		assert.Equal(t, *review, *retrieved, "review should be retrieved as inserted")
	}

	retrieved, err := repo.Get(9999)
	require.NoError(t, err, "get on an unknown id must not fail")
	assert.Nil(t, retrieved, "unknown id should yield nil")

	// ListByBook: only the matching book, in creation order
	book1, err := repo.ListByBook(1)
	require.NoError(t, err, "list must not fail")
	require.Len(t, book1, 2)
	assert.Equal(t, *reviews[0], book1[0])
	assert.Equal(t, *reviews[1], book1[1])

	empty, err := repo.ListByBook(42)
	require.NoError(t, err, "list on an unreviewed book must not fail")
	assert.Empty(t, empty)

	// Update in place
	reviews[0].Rating = 5
	reviews[0].Comment = "Even better on a second read"
	err = repo.Upsert(reviews[0])
	require.NoError(t, err, "update must not fail")

	retrieved, err = repo.Get(reviews[0].ID)
	require.NoError(t, err)
	require.NotNil(t, retrieved)
	assert.Equal(t, *reviews[0], *retrieved, "update should be persisted")

	book1, err = repo.ListByBook(1)
	require.NoError(t, err)
	require.Len(t, book1, 2, "update should not duplicate the review")

	// Update: the merge runs in one critical section
	err = repo.Update(reviews[0].ID, func(review *bookstore.Review) error {
		assert.Equal(t, *reviews[0], *review, "the stored review should be passed to the merge")
		review.Comment = "Merged"
		return nil
	})
	require.NoError(t, err, "update must not fail")
	reviews[0].Comment = "Merged"

	retrieved, err = repo.Get(reviews[0].ID)
	require.NoError(t, err)
	require.NotNil(t, retrieved)
	assert.Equal(t, *reviews[0], *retrieved, "the merged review should be persisted")

	// Update: a failing merge leaves the record untouched
	boom := fmt.Errorf("boom")
	err = repo.Update(reviews[0].ID, func(review *bookstore.Review) error {
		review.Comment = "Must not be written"
		return boom
	})
	require.Error(t, err, "the merge error should be returned")
	assert.Equal(t, boom.Error(), err.Error())

	retrieved, err = repo.Get(reviews[0].ID)
	require.NoError(t, err)
	require.NotNil(t, retrieved)
	assert.Equal(t, *reviews[0], *retrieved, "a failed merge should not be persisted")

	// Update: unknown id
	err = repo.Update(9999, func(review *bookstore.Review) error {
		assert.Fail(t, "the merge should not be called for an unknown id")
		return nil
	})
	require.Error(t, err, "update on an unknown id must fail")
	errors.AssertCode(t, err, 404)

	// Delete
	deletedID := reviews[1].ID
	err = repo.Delete(deletedID)
	require.NoError(t, err, "delete must not fail")

	retrieved, err = repo.Get(deletedID)
	require.NoError(t, err)
	assert.Nil(t, retrieved, "deleted review should be gone")

	// Delete: an absent id is an error, so of two racing deletes only
	// one can report success
	err = repo.Delete(deletedID)
	require.Error(t, err, "deleting the same id twice must fail the second time")
	errors.AssertCode(t, err, 404)

	err = repo.Delete(9999)
	require.Error(t, err, "delete on an unknown id must fail")
	errors.AssertCode(t, err, 404)

	// A new review must not take over the deleted id
	fresh := &bookstore.Review{BookID: 3, UserID: 9, Rating: 3, Comment: "ok"}
	err = repo.Upsert(fresh)
	require.NoError(t, err)
	assert.NotEqual(t, deletedID, fresh.ID, "ids must not be reused after a delete")
}
