package auth

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecoder(t *testing.T) {
	ed := NewEncodeDecoder([]byte("test key"))

	bearer, err := ed.Encode(7, "alice")
	require.NoError(t, err, "encode should not fail")

	principal, err := ed.Decode(bearer)
	require.NoError(t, err, "decode should not fail")
	assert.Equal(t, Principal{UserID: 7, Username: "alice"}, principal)
}

func TestEncodeDecoder_WrongKey(t *testing.T) {
	bearer, err := NewEncodeDecoder([]byte("key one")).Encode(7, "alice")
	require.NoError(t, err, "encode should not fail")

	_, err = NewEncodeDecoder([]byte("key two")).Decode(bearer)
	assert.Error(t, err, "a token signed with another key should not verify")
}

func TestEncodeDecoder_Garbage(t *testing.T) {
	_, err := NewEncodeDecoder([]byte("test key")).Decode("definitely not a jwt")
	assert.Error(t, err, "a malformed token should not verify")
}

func TestEncodeDecoder_Expired(t *testing.T) {
	key := []byte("test key")

	claims := Claims{
		UserID:   7,
		Username: "alice",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
			Issuer:    "bookstore",
		},
	}
	bearer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err, "signing should not fail")

	_, err = NewEncodeDecoder(key).Decode(bearer)
	assert.Error(t, err, "an expired token should not verify")
}
