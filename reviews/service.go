package reviews

import (
	"fmt"

	"github.com/bobinette/bookstore"
	"github.com/bobinette/bookstore/auth"
	"github.com/bobinette/bookstore/errors"
)

// unknownReviewer is used in place of the username when the author of a
// review cannot be resolved anymore.
const unknownReviewer = "Unknown"

var (
	errMissingFields = errors.New("Comment and rating are required", errors.BadRequest())
	errInvalidRating = errors.New("Rating must be between 1 and 5", errors.BadRequest())
	errCannotModify  = errors.New("Unauthorized: Can only modify your own reviews", errors.Forbidden())
	errCannotDelete  = errors.New("Unauthorized: Can only delete your own reviews", errors.Forbidden())
)

func errReviewNotFound(id int) error {
	return errors.New("Review not found", errors.NotFound(), errors.WithCause(fmt.Errorf("no review for id %d", id)))
}

// View is a review as served to clients: the author id is resolved into
// the reviewer's username.
type View struct {
	ID       int    `json:"id"`
	BookID   int    `json:"bookId"`
	Reviewer string `json:"reviewer"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

type Service struct {
	reviews bookstore.ReviewRepository
	users   bookstore.UserRepository
}

func NewService(reviews bookstore.ReviewRepository, users bookstore.UserRepository) *Service {
	return &Service{
		reviews: reviews,
		users:   users,
	}
}

// ListByBook returns the reviews of a book in the order they were
// created, each with its reviewer name resolved.
func (s *Service) ListByBook(bookID int) ([]View, error) {
	reviews, err := s.reviews.ListByBook(bookID)
	if err != nil {
		return nil, err
	}

	views := make([]View, len(reviews))
	for i, review := range reviews {
		views[i] = s.view(review)
	}

	return views, nil
}

// Create validates the input, then stores a new review authored by the
// principal. Nothing is written when the input is invalid.
func (s *Service) Create(principal auth.Principal, bookID int, comment string, rating *int) (View, error) {
	if comment == "" || rating == nil {
		return View{}, errMissingFields
	}
	if *rating < 1 || *rating > 5 {
		return View{}, errInvalidRating
	}

	review := bookstore.Review{
		BookID:  bookID,
		UserID:  principal.UserID,
		Rating:  *rating,
		Comment: comment,
	}
	if err := s.reviews.Upsert(&review); err != nil {
		return View{}, err
	}

	return s.view(review), nil
}

// Update modifies the comment and/or rating of a review owned by the
// principal. Omitted fields are left unchanged. The checks and the
// merge run in the repository's critical section, so two concurrent
// updates of the same review cannot lose each other's fields.
func (s *Service) Update(principal auth.Principal, reviewID int, comment string, rating *int) (View, error) {
	var updated bookstore.Review
	err := s.reviews.Update(reviewID, func(review *bookstore.Review) error {
		if !owns(principal, review) {
			return errCannotModify
		}

		if rating != nil && (*rating < 1 || *rating > 5) {
			return errInvalidRating
		}

		if comment != "" {
			review.Comment = comment
		}
		if rating != nil {
			review.Rating = *rating
		}

		updated = *review
		return nil
	})
	if err != nil {
		return View{}, err
	}

	return s.view(updated), nil
}

// Delete removes a review owned by the principal. The repository fails
// with a 404 when the review is already gone, so of two concurrent
// deletes only one reports success.
func (s *Service) Delete(principal auth.Principal, reviewID int) error {
	review, err := s.reviews.Get(reviewID)
	if err != nil {
		return err
	} else if review == nil {
		return errReviewNotFound(reviewID)
	}

	if !owns(principal, review) {
		return errCannotDelete
	}

	return s.reviews.Delete(reviewID)
}

// owns is the sole authorization rule for review mutation: the stored
// author id must be the principal's id. No admin override.
func owns(principal auth.Principal, review *bookstore.Review) bool {
	return review.UserID == principal.UserID
}

func (s *Service) view(review bookstore.Review) View {
	reviewer := unknownReviewer
	if user, err := s.users.Get(review.UserID); err == nil && user != nil {
		reviewer = user.Username
	}

	return View{
		ID:       review.ID,
		BookID:   review.BookID,
		Reviewer: reviewer,
		Rating:   review.Rating,
		Comment:  review.Comment,
	}
}
