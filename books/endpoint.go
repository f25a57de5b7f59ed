package books

import (
	"context"

	"github.com/bobinette/bookstore/errors"
)

var errInvalidRequest = errors.New("invalid request")

type Endpoint struct {
	service *Service
}

func NewEndpoint(service *Service) *Endpoint {
	return &Endpoint{
		service: service,
	}
}

func (ep *Endpoint) List(ctx context.Context, r interface{}) (interface{}, error) {
	books, err := ep.service.List()
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"success": true,
		"data":    books,
	}, nil
}

func (ep *Endpoint) Get(ctx context.Context, r interface{}) (interface{}, error) {
	isbn, ok := r.(string)
	if !ok {
		return nil, errInvalidRequest
	}

	book, err := ep.service.GetByISBN(isbn)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"success": true,
		"data":    book,
	}, nil
}

func (ep *Endpoint) SearchAuthor(ctx context.Context, r interface{}) (interface{}, error) {
	q, ok := r.(string)
	if !ok {
		return nil, errInvalidRequest
	}

	books, err := ep.service.SearchByAuthor(q)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"success": true,
		"data":    books,
	}, nil
}

func (ep *Endpoint) SearchTitle(ctx context.Context, r interface{}) (interface{}, error) {
	q, ok := r.(string)
	if !ok {
		return nil, errInvalidRequest
	}

	books, err := ep.service.SearchByTitle(q)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"success": true,
		"data":    books,
	}, nil
}
