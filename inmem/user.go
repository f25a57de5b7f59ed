package inmem

import (
	"sync"

	"github.com/bobinette/bookstore"
)

type InMemUserRepository struct {
	mutex sync.RWMutex
	users []bookstore.User
}

func NewInMemUserRepository() *InMemUserRepository {
	return &InMemUserRepository{
		users: make([]bookstore.User, 0),
	}
}

func (r *InMemUserRepository) Get(id int) (*bookstore.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			c := user
			return &c, nil
		}
	}
	return nil, nil
}

func (r *InMemUserRepository) List() ([]bookstore.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	users := make([]bookstore.User, len(r.users))
	copy(users, r.users)
	return users, nil
}

func (r *InMemUserRepository) Upsert(user *bookstore.User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, existing := range r.users {
		if existing.ID == user.ID {
			r.users[i] = *user
			return nil
		}
	}

	r.users = append(r.users, *user)
	return nil
}
