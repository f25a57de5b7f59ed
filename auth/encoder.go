package auth

import (
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/bobinette/bookstore/errors"
)

type EncodeDecoder struct {
	key []byte
}

type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	jwt.StandardClaims
}

func NewEncodeDecoder(key []byte) *EncodeDecoder {
	return &EncodeDecoder{
		key: key,
	}
}

func (e *EncodeDecoder) Encode(userID int, username string) (string, error) {
	claims := Claims{
		UserID:   userID,
		Username: username,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().AddDate(0, 2, 0).Unix(),
			Issuer:    "bookstore",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(e.key)
}

// Decode verifies the bearer token and returns the identity claim it
// carries. The claim is trusted as-is: no repository lookup happens here.
func (e *EncodeDecoder) Decode(bearer string) (Principal, error) {
	claims := Claims{}

	token, err := jwt.ParseWithClaims(bearer, &claims, func(token *jwt.Token) (interface{}, error) {
		return e.key, nil
	})
	if err != nil {
		return Principal{}, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return Principal{UserID: claims.UserID, Username: claims.Username}, nil
	}

	return Principal{}, errors.New("could not get claims")
}
