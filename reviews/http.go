package reviews

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/bobinette/bookstore/auth"
	"github.com/bobinette/bookstore/errors"
)

// Server defines the interface to register the http handlers.
type Server interface {
	RegisterHandler(path, method string, f http.Handler)
}

func RegisterHTTPRoutes(srv Server, service *Service, jwtKey []byte) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(kitjwt.HTTPToContext()),
	}

	authenticationMiddleware := auth.Middleware(jwtKey)

	ep := NewEndpoint(service)

	listHandler := kithttp.NewServer(
		ep.ListByBook,
		decodeListReviewsRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	createHandler := kithttp.NewServer(
		authenticationMiddleware(ep.Create),
		decodeCreateReviewRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	updateHandler := kithttp.NewServer(
		authenticationMiddleware(ep.Update),
		decodeUpdateReviewRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	deleteHandler := kithttp.NewServer(
		authenticationMiddleware(ep.Delete),
		decodeDeleteReviewRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	srv.RegisterHandler("/books/:bookId/reviews", "GET", listHandler)
	srv.RegisterHandler("/books/:bookId/reviews", "POST", createHandler)
	srv.RegisterHandler("/reviews/:reviewId", "PUT", updateHandler)
	srv.RegisterHandler("/reviews/:reviewId", "DELETE", deleteHandler)
}

func decodeListReviewsRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()
	return bookID(ctx)
}

func decodeCreateReviewRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	id, err := bookID(ctx)
	if err != nil {
		return nil, err
	}

	var body struct {
		Comment string `json:"comment"`
		Rating  *int   `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && err != io.EOF {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}

	return CreateReviewRequest{
		BookID:  id,
		Comment: body.Comment,
		Rating:  body.Rating,
	}, nil
}

func decodeUpdateReviewRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	id, err := reviewID(ctx)
	if err != nil {
		return nil, err
	}

	var body struct {
		Comment string `json:"comment"`
		Rating  *int   `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && err != io.EOF {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}

	return UpdateReviewRequest{
		ReviewID: id,
		Comment:  body.Comment,
		Rating:   body.Rating,
	}, nil
}

func decodeDeleteReviewRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()
	return reviewID(ctx)
}

func bookID(ctx context.Context) (int, error) {
	params := ctx.Value("params").(map[string]string)
	id, err := strconv.Atoi(params["bookId"])
	if err != nil {
		return 0, errors.New("Invalid book ID", errors.BadRequest(), errors.WithCause(err))
	}
	return id, nil
}

func reviewID(ctx context.Context) (int, error) {
	params := ctx.Value("params").(map[string]string)
	id, err := strconv.Atoi(params["reviewId"])
	if err != nil {
		return 0, errors.New("Invalid review ID", errors.BadRequest(), errors.WithCause(err))
	}
	return id, nil
}

// encodeError writes an error as an HTTP response. It handles the status
// code contained in the error, and only exposes the top-level message.
func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	statusCode := http.StatusInternalServerError
	msg := err.Error()
	if err, ok := err.(errors.Error); ok {
		statusCode = err.Code()
		msg = err.Message()
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   msg,
	})
}
