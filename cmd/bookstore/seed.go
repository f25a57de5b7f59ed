package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/bobinette/bookstore"
	"github.com/bobinette/bookstore/errors"
)

func init() {
	RootCmd.AddCommand(&SeedCommand)
}

// SeedCommand loads the book and user datasets into the store. Running
// it again upserts: existing records are replaced, reviews are kept.
var SeedCommand = cobra.Command{
	Use:   "seed",
	Short: "Load the book and user datasets into the store",
	Long:  "",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(config.Datasets.Books)
		if err != nil {
			return errors.New("could not read book dataset", errors.WithCause(err))
		}

		var bookList []bookstore.Book
		if err := json.Unmarshal(data, &bookList); err != nil {
			return errors.New("could not decode book dataset", errors.WithCause(err))
		}

		for i := range bookList {
			if err := bookRepository.Upsert(&bookList[i]); err != nil {
				return errors.New("could not insert book", errors.WithCause(err))
			}
		}
		logger.Printf("loaded %d books", len(bookList))

		data, err = os.ReadFile(config.Datasets.Users)
		if err != nil {
			return errors.New("could not read user dataset", errors.WithCause(err))
		}

		var userList []bookstore.User
		if err := json.Unmarshal(data, &userList); err != nil {
			return errors.New("could not decode user dataset", errors.WithCause(err))
		}

		for i := range userList {
			if err := userRepository.Upsert(&userList[i]); err != nil {
				return errors.New("could not insert user", errors.WithCause(err))
			}
		}
		logger.Printf("loaded %d users", len(userList))

		return nil
	},
}
