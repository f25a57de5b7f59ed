package inmem

import (
	"fmt"
	"sync"

	"github.com/bobinette/bookstore"
	"github.com/bobinette/bookstore/errors"
)

func errReviewNotFound(id int) error {
	return errors.New("Review not found", errors.NotFound(), errors.WithCause(fmt.Errorf("no review for id %d", id)))
}

// InMemReviewRepository keeps the reviews in memory. Mutations and reads
// are guarded by a single lock: create/update/delete serialize against
// each other and against concurrent reads.
type InMemReviewRepository struct {
	mutex   sync.RWMutex
	reviews []*bookstore.Review
	lastID  int
}

func NewInMemReviewRepository() *InMemReviewRepository {
	return &InMemReviewRepository{
		reviews: make([]*bookstore.Review, 0),
	}
}

func (r *InMemReviewRepository) Get(id int) (*bookstore.Review, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, review := range r.reviews {
		if review.ID == id {
			c := *review
			return &c, nil
		}
	}
	return nil, nil
}

func (r *InMemReviewRepository) ListByBook(bookID int) ([]bookstore.Review, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	reviews := make([]bookstore.Review, 0)
	for _, review := range r.reviews {
		if review.BookID == bookID {
			reviews = append(reviews, *review)
		}
	}
	return reviews, nil
}

// Upsert inserts or updates a review, depending on review.ID. The id
// counter only ever increases, so ids are never reused after a delete.
func (r *InMemReviewRepository) Upsert(review *bookstore.Review) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if review.ID <= 0 {
		r.lastID++
		review.ID = r.lastID
		c := *review
		r.reviews = append(r.reviews, &c)
		return nil
	}

	for i, existing := range r.reviews {
		if existing.ID == review.ID {
			c := *review
			r.reviews[i] = &c
			return nil
		}
	}

	c := *review
	r.reviews = append(r.reviews, &c)
	if review.ID > r.lastID {
		r.lastID = review.ID
	}
	return nil
}

// Update applies f to the review defined by id under the write lock:
// the read, the merge and the write cannot interleave with another
// mutation. When f fails the stored review is left untouched.
func (r *InMemReviewRepository) Update(id int, f func(*bookstore.Review) error) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, review := range r.reviews {
		if review.ID == id {
			c := *review
			if err := f(&c); err != nil {
				return err
			}
			c.ID = id
			r.reviews[i] = &c
			return nil
		}
	}
	return errReviewNotFound(id)
}

func (r *InMemReviewRepository) Delete(id int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, review := range r.reviews {
		if review.ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return errReviewNotFound(id)
}
