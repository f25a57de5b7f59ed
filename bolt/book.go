package bolt

import (
	"encoding/json"
	"fmt"

	"github.com/boltdb/bolt"

	"github.com/bobinette/bookstore"
)

// BookRepository stores and retrieves books from a bolt database. Books
// are keyed by an internal sequence so List returns them in the order
// they were loaded, not in ISBN order.
type BookRepository struct {
	Driver *Driver
}

// Get retrieves the book carrying the given ISBN, nil when there is
// none. The collection is small and loaded once, a scan is fine.
func (r *BookRepository) Get(isbn string) (*bookstore.Book, error) {
	var book *bookstore.Book
	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bookBucket)

		c := bucket.Cursor()
		for k, data := c.First(); k != nil; k, data = c.Next() {
			var b bookstore.Book
			if err := json.Unmarshal(data, &b); err != nil {
				return err
			}
			if b.ISBN == isbn {
				book = &b
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return book, nil
}

func (r *BookRepository) List() ([]bookstore.Book, error) {
	books := make([]bookstore.Book, 0)

	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bookBucket)

		c := bucket.Cursor()
		for k, data := c.First(); k != nil; k, data = c.Next() {
			var book bookstore.Book
			if err := json.Unmarshal(data, &book); err != nil {
				return err
			}
			books = append(books, book)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return books, nil
}

// Upsert inserts the book, or replaces the record already carrying its
// ISBN.
func (r *BookRepository) Upsert(book *bookstore.Book) error {
	return r.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bookBucket)

		var key []byte
		c := bucket.Cursor()
		for k, data := c.First(); k != nil; k, data = c.Next() {
			var b bookstore.Book
			if err := json.Unmarshal(data, &b); err != nil {
				return err
			}
			if b.ISBN == book.ISBN {
				key = append([]byte(nil), k...)
				break
			}
		}

		if key == nil {
			id, err := bucket.NextSequence()
			if err != nil {
				return fmt.Errorf("error incrementing key: %v", err)
			}
			key = itob(int(id))
		}

		data, err := json.Marshal(book)
		if err != nil {
			return err
		}

		return bucket.Put(key, data)
	})
}
