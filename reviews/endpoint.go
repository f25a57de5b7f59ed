package reviews

import (
	"context"
	"net/http"

	"github.com/bobinette/bookstore/auth"
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

type CreateReviewRequest struct {
	BookID  int
	Comment string
	Rating  *int
}

type UpdateReviewRequest struct {
	ReviewID int
	Comment  string
	Rating   *int
}

// createReviewResponse carries its own status code so the transport
// answers 201 on creation instead of a plain 200.
type createReviewResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    View   `json:"data"`
}

func (createReviewResponse) StatusCode() int { return http.StatusCreated }

func (ep *Endpoint) ListByBook(ctx context.Context, r interface{}) (interface{}, error) {
	bookID, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	views, err := ep.service.ListByBook(bookID)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"success": true,
		"data":    views,
	}, nil
}

func (ep *Endpoint) Create(ctx context.Context, r interface{}) (interface{}, error) {
	principal, err := auth.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	req, ok := r.(CreateReviewRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	view, err := ep.service.Create(principal, req.BookID, req.Comment, req.Rating)
	if err != nil {
		return nil, err
	}

	return createReviewResponse{
		Success: true,
		Message: "Review added successfully",
		Data:    view,
	}, nil
}

func (ep *Endpoint) Update(ctx context.Context, r interface{}) (interface{}, error) {
	principal, err := auth.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	req, ok := r.(UpdateReviewRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	view, err := ep.service.Update(principal, req.ReviewID, req.Comment, req.Rating)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"success": true,
		"message": "Review updated successfully",
		"data":    view,
	}, nil
}

func (ep *Endpoint) Delete(ctx context.Context, r interface{}) (interface{}, error) {
	principal, err := auth.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	reviewID, ok := r.(int)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.Delete(principal, reviewID); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"success": true,
		"message": "Review deleted successfully",
	}, nil
}
