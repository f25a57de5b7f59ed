package bookstore

type Book struct {
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

type BookRepository interface {
	// Get retrieves the book identified by its ISBN. It returns nil
	// when no book carries that ISBN.
	Get(isbn string) (*Book, error)

	// List returns every book, in insertion order.
	List() ([]Book, error)

	Upsert(*Book) error
}
