package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/bookstore"
)

// TestBookRepository runs the repository contract against any
// implementation: insertion order on List, ISBN lookup, upsert by ISBN.
func TestBookRepository(t *testing.T, repo bookstore.BookRepository) {
	books := []bookstore.Book{
		{ISBN: "999", Title: "Last by ISBN, first inserted", Author: "Someone"},
		{ISBN: "123", Title: "The Go Programming Language", Author: "Alan Donovan"},
		{ISBN: "456", Title: "Clean Code", Author: "Robert Martin"},
	}

	for i := range books {
		err := repo.Upsert(&books[i])
		require.NoError(t, err, "insert must not fail")
	}

	// List keeps insertion order, not ISBN order
	listed, err := repo.List()
	require.NoError(t, err, "list must not fail")
	assert.Equal(t, books, listed, "list should return the books in insertion order")

	// Lookup
	book, err := repo.Get("123")
	require.NoError(t, err, "get must not fail")
	require.NotNil(t, book)
	assert.Equal(t, books[1], *book)

	book, err = repo.Get("000")
	require.NoError(t, err, "get on an unknown isbn must not fail")
	assert.Nil(t, book)

	// Upsert replaces the record with the same ISBN
	books[2].Title = "Clean Code, 2nd edition"
	err = repo.Upsert(&books[2])
	require.NoError(t, err, "update must not fail")

	listed, err = repo.List()
	require.NoError(t, err)
	require.Len(t, listed, 3, "upsert should not duplicate the book")
	assert.Equal(t, books[2], listed[2])
}
