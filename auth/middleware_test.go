package auth

import (
	"context"
	"testing"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/bookstore/errors"
)

func TestMiddleware(t *testing.T) {
	key := []byte("test key")

	var got Principal
	next := func(ctx context.Context, req interface{}) (interface{}, error) {
		var err error
		got, err = FromContext(ctx)
		return nil, err
	}
	mw := Middleware(key)(next)

	// No token at all: 401
	_, err := mw(context.Background(), nil)
	require.Error(t, err, "a request without token should be rejected")
	errors.AssertCode(t, err, 401)
	assert.Equal(t, "Access denied", err.(errors.Error).Message())

	// A token signed with another key: 400
	bearer, err := NewEncodeDecoder([]byte("other key")).Encode(7, "alice")
	require.NoError(t, err)
	ctx := context.WithValue(context.Background(), kitjwt.JWTContextKey, bearer)
	_, err = mw(ctx, nil)
	require.Error(t, err, "a forged token should be rejected")
	errors.AssertCode(t, err, 400)
	assert.Equal(t, "Invalid token", err.(errors.Error).Message())

	// A valid token: the principal reaches the endpoint
	bearer, err = NewEncodeDecoder(key).Encode(7, "alice")
	require.NoError(t, err)
	ctx = context.WithValue(context.Background(), kitjwt.JWTContextKey, bearer)
	_, err = mw(ctx, nil)
	require.NoError(t, err, "a valid token should pass")
	assert.Equal(t, Principal{UserID: 7, Username: "alice"}, got)
}

func TestFromContext_Missing(t *testing.T) {
	_, err := FromContext(context.Background())
	require.Error(t, err, "no principal in context should be an error")
	errors.AssertCode(t, err, 401)
}
