package inmem

import (
	"sync"

	"github.com/bobinette/bookstore"
)

type InMemBookRepository struct {
	mutex sync.RWMutex
	books []bookstore.Book
}

func NewInMemBookRepository() *InMemBookRepository {
	return &InMemBookRepository{
		books: make([]bookstore.Book, 0),
	}
}

func (r *InMemBookRepository) Get(isbn string) (*bookstore.Book, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, book := range r.books {
		if book.ISBN == isbn {
			c := book
			return &c, nil
		}
	}
	return nil, nil
}

func (r *InMemBookRepository) List() ([]bookstore.Book, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	books := make([]bookstore.Book, len(r.books))
	copy(books, r.books)
	return books, nil
}

func (r *InMemBookRepository) Upsert(book *bookstore.Book) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, existing := range r.books {
		if existing.ISBN == book.ISBN {
			r.books[i] = *book
			return nil
		}
	}

	r.books = append(r.books, *book)
	return nil
}
