package bolt

import (
	"encoding/json"
	"fmt"

	"github.com/boltdb/bolt"

	"github.com/bobinette/bookstore"
	"github.com/bobinette/bookstore/errors"
)

func errReviewNotFound(id int) error {
	return errors.New("Review not found", errors.NotFound(), errors.WithCause(fmt.Errorf("no review for id %d", id)))
}

// ReviewRepository stores and retrieves reviews from a bolt database.
// Every mutation is committed durably before it returns: a failed
// transaction fails the whole operation.
type ReviewRepository struct {
	Driver *Driver
}

// Get retrieves the review defined by id. If no review can be found for
// the given id, Get returns nil.
func (r *ReviewRepository) Get(id int) (*bookstore.Review, error) {
	var review *bookstore.Review
	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(reviewBucket)

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		review = &bookstore.Review{}
		return json.Unmarshal(data, review)
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// ListByBook returns the reviews of a book. Keys are the review ids, so
// the cursor yields them in creation order.
func (r *ReviewRepository) ListByBook(bookID int) ([]bookstore.Review, error) {
	reviews := make([]bookstore.Review, 0)

	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(reviewBucket)

		c := bucket.Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var review bookstore.Review
			if err := json.Unmarshal(data, &review); err != nil {
				return err
			}
			if review.BookID == bookID {
				reviews = append(reviews, review)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

// Upsert inserts or updates a review, depending on review.ID. Ids come
// from the bucket sequence, which only ever increases: deleting a review
// never frees its id for reuse.
func (r *ReviewRepository) Upsert(review *bookstore.Review) error {
	return r.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(reviewBucket)

		if review.ID <= 0 {
			id, err := bucket.NextSequence()
			if err != nil {
				return fmt.Errorf("error incrementing id: %v", err)
			}
			review.ID = int(id)
		}

		data, err := json.Marshal(review)
		if err != nil {
			return err
		}

		return bucket.Put(itob(review.ID), data)
	})
}

// Update applies f to the review defined by id inside a single write
// transaction, so the read and the write cannot interleave with another
// mutation. When f fails the transaction is aborted and nothing is
// written.
func (r *ReviewRepository) Update(id int, f func(*bookstore.Review) error) error {
	return r.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(reviewBucket)

		data := bucket.Get(itob(id))
		if data == nil {
			return errReviewNotFound(id)
		}

		var review bookstore.Review
		if err := json.Unmarshal(data, &review); err != nil {
			return err
		}

		if err := f(&review); err != nil {
			return err
		}
		review.ID = id

		data, err := json.Marshal(&review)
		if err != nil {
			return err
		}
		return bucket.Put(itob(id), data)
	})
}

func (r *ReviewRepository) Delete(id int) error {
	return r.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(reviewBucket)

		if bucket.Get(itob(id)) == nil {
			return errReviewNotFound(id)
		}
		return bucket.Delete(itob(id))
	})
}
