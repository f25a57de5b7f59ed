package bookstore

type SigningKey struct {
	Key string `json:"k"`
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type UserRepository interface {
	// Get retrieves the user defined by id, nil when unknown.
	Get(id int) (*User, error)

	List() ([]User, error)

	Upsert(*User) error
}
