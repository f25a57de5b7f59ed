package books

import (
	"context"
	"encoding/json"
	"net/http"

	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/bobinette/bookstore/errors"
)

// Server defines the interface to register the http handlers.
type Server interface {
	RegisterHandler(path, method string, f http.Handler)
}

func RegisterHTTPRoutes(srv Server, service *Service) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
	}

	ep := NewEndpoint(service)

	listHandler := kithttp.NewServer(
		ep.List,
		decodeListRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	getHandler := kithttp.NewServer(
		ep.Get,
		decodeParamRequest("isbn"),
		kithttp.EncodeJSONResponse,
		opts...,
	)

	searchAuthorHandler := kithttp.NewServer(
		ep.SearchAuthor,
		decodeParamRequest("author"),
		kithttp.EncodeJSONResponse,
		opts...,
	)

	searchTitleHandler := kithttp.NewServer(
		ep.SearchTitle,
		decodeParamRequest("title"),
		kithttp.EncodeJSONResponse,
		opts...,
	)

	srv.RegisterHandler("/books", "GET", listHandler)
	srv.RegisterHandler("/books/isbn/:isbn", "GET", getHandler)
	srv.RegisterHandler("/books/author/:author", "GET", searchAuthorHandler)
	srv.RegisterHandler("/books/title/:title", "GET", searchTitleHandler)
}

func decodeListRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()
	return nil, nil
}

func decodeParamRequest(name string) kithttp.DecodeRequestFunc {
	return func(ctx context.Context, r *http.Request) (interface{}, error) {
		defer r.Body.Close()

		params := ctx.Value("params").(map[string]string)
		return params[name], nil
	}
}

// encodeError writes an error as an HTTP response. It handles the status
// code contained in the error, and only exposes the top-level message:
// causes stay in the logs, not in the payload.
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
