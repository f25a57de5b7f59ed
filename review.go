package bookstore

type Review struct {
	ID      int    `json:"id"`
	BookID  int    `json:"bookId"`
	UserID  int    `json:"userId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type ReviewRepository interface {
	// Get retrieves the review defined by id. It returns nil when no
	// review can be found for that id.
	Get(id int) (*Review, error)

	// ListByBook returns the reviews of a book, in insertion order.
	ListByBook(bookID int) ([]Review, error)

	// Upsert inserts or updates a review. On insertion (review.ID == 0)
	// the id is assigned from a sequence persisted with the collection,
	// so ids are never reused after a delete.
	Upsert(*Review) error

	// Update applies f to the review defined by id within a single
	// critical section: no other mutation can interleave between the
	// read and the write. The record is left untouched when f returns
	// an error, and that error is returned as is. Update fails with a
	// 404 error when no review matches the id.
	Update(id int, f func(*Review) error) error

	// Delete removes the review defined by id. It fails with a 404
	// error when no review matches the id.
	Delete(id int) error
}
