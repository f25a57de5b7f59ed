package auth

import (
	"context"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	"github.com/go-kit/kit/endpoint"

	"github.com/bobinette/bookstore/errors"
)

var contextKey = "principal"

// Principal is the identity attached to a request once its bearer token
// has been verified. It only lives for the duration of the request.
type Principal struct {
	UserID   int
	Username string
}

func FromContext(ctx context.Context) (Principal, error) {
	v := ctx.Value(contextKey)
	if v == nil {
		return Principal{}, errors.New("Access denied", errors.Unauthorized())
	}

	principal, ok := v.(Principal)
	if !ok {
		return Principal{}, errors.New("Access denied", errors.Unauthorized())
	}

	return principal, nil
}

// Middleware verifies the bearer token stored in the context by
// kitjwt.HTTPToContext and makes the principal available to the next
// endpoint. A missing token yields a 401, a token that does not verify
// a 400, matching the distinction between no credential at all and a
// bad one.
func Middleware(key []byte) endpoint.Middleware {
	ed := NewEncodeDecoder(key)
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (interface{}, error) {
			bearer, ok := ctx.Value(kitjwt.JWTContextKey).(string)
			if !ok || bearer == "" {
				return nil, errors.New("Access denied", errors.Unauthorized())
			}

			principal, err := ed.Decode(bearer)
			if err != nil {
				return nil, errors.New("Invalid token", errors.BadRequest(), errors.WithCause(err))
			}

			ctx = context.WithValue(ctx, contextKey, principal)
			return next(ctx, request)
		}
	}
}
