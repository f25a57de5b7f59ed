package bolt

import (
	"encoding/json"

	"github.com/boltdb/bolt"

	"github.com/bobinette/bookstore"
)

// UserRepository stores and retrieves users from a bolt database. Ids
// come from the dataset, not from a sequence.
type UserRepository struct {
	Driver *Driver
}

func (r *UserRepository) Get(id int) (*bookstore.User, error) {
	var user *bookstore.User
	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		user = &bookstore.User{}
		return json.Unmarshal(data, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) List() ([]bookstore.User, error) {
	users := make([]bookstore.User, 0)

	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		c := bucket.Cursor()
		for k, data := c.First(); k != nil; k, data = c.Next() {
			var user bookstore.User
			if err := json.Unmarshal(data, &user); err != nil {
				return err
			}
			users = append(users, user)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UserRepository) Upsert(user *bookstore.User) error {
	return r.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		data, err := json.Marshal(user)
		if err != nil {
			return err
		}

		return bucket.Put(itob(user.ID), data)
	})
}
