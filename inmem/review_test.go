package inmem

import (
	"testing"

	"github.com/bobinette/bookstore/testutil"
)

func TestInMemReviewRepository(t *testing.T) {
	repo := NewInMemReviewRepository()
	testutil.TestReviewRepository(t, repo)
}

func TestInMemBookRepository(t *testing.T) {
	repo := NewInMemBookRepository()
	testutil.TestBookRepository(t, repo)
}

func TestInMemUserRepository(t *testing.T) {
	repo := NewInMemUserRepository()
	testutil.TestUserRepository(t, repo)
}
