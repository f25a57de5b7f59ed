package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/bookstore"
)

func TestUserRepository(t *testing.T, repo bookstore.UserRepository) {
	users := []bookstore.User{
		{ID: 7, Username: "alice"},
		{ID: 9, Username: "bob"},
	}

	for i := range users {
		err := repo.Upsert(&users[i])
		require.NoError(t, err, "insert must not fail")
	}

	for _, expected := range users {
		user, err := repo.Get(expected.ID)
		require.NoError(t, err, "get must not fail")
		require.NotNil(t, user, "user %d should be found", expected.ID)
		assert.Equal(t, expected, *user)
	}

	user, err := repo.Get(12)
	require.NoError(t, err, "get on an unknown id must not fail")
	assert.Nil(t, user)

	listed, err := repo.List()
	require.NoError(t, err, "list must not fail")
	assert.Len(t, listed, 2)

	users[0].Username = "alice2"
	err = repo.Upsert(&users[0])
	require.NoError(t, err, "update must not fail")

	user, err = repo.Get(users[0].ID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice2", user.Username)
}
