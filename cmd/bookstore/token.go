package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bobinette/bookstore/errors"
)

func init() {
	RootCmd.AddCommand(&TokenCommand)
}

// TokenCommand mints a bearer token for a known user. Development
// tooling only: there is no login flow in the service itself.
var TokenCommand = cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for a user id",
	Long:  "",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("token wants 1 argument: the id of the user")
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.New("id should be an integer", errors.WithCause(err))
		}

		user, err := userRepository.Get(id)
		if err != nil {
			return errors.New("could not get user", errors.WithCause(err))
		} else if user == nil {
			return errors.New(fmt.Sprintf("no user for id %d", id))
		}

		token, err := tokenEncoder.Encode(user.ID, user.Username)
		if err != nil {
			return errors.New("could not encode token", errors.WithCause(err))
		}

		fmt.Println(token)
		return nil
	},
}
