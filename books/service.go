package books

import (
	"strings"

	"github.com/bobinette/bookstore"
	"github.com/bobinette/bookstore/errors"
)

var errBookNotFound = errors.New("Book not found", errors.NotFound())

type Service struct {
	repository bookstore.BookRepository
}

func NewService(repository bookstore.BookRepository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) List() ([]bookstore.Book, error) {
	return s.repository.List()
}

func (s *Service) GetByISBN(isbn string) (bookstore.Book, error) {
	book, err := s.repository.Get(isbn)
	if err != nil {
		return bookstore.Book{}, err
	} else if book == nil {
		return bookstore.Book{}, errBookNotFound
	}

	return *book, nil
}

// SearchByAuthor returns the books whose author contains q, case
// insensitively. No match is an empty slice, not an error.
func (s *Service) SearchByAuthor(q string) ([]bookstore.Book, error) {
	return s.search(q, func(b bookstore.Book) string { return b.Author })
}

// SearchByTitle is SearchByAuthor against the title field.
func (s *Service) SearchByTitle(q string) ([]bookstore.Book, error) {
	return s.search(q, func(b bookstore.Book) string { return b.Title })
}

func (s *Service) search(q string, field func(bookstore.Book) string) ([]bookstore.Book, error) {
	books, err := s.repository.List()
	if err != nil {
		return nil, err
	}

	q = strings.ToLower(q)
	filtered := make([]bookstore.Book, 0, len(books))
	for _, book := range books {
		if strings.Contains(strings.ToLower(field(book)), q) {
			filtered = append(filtered, book)
		}
	}

	return filtered, nil
}
