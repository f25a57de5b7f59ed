package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/bobinette/bookstore"
	"github.com/bobinette/bookstore/auth"
	"github.com/bobinette/bookstore/bolt"
	"github.com/bobinette/bookstore/books"
	"github.com/bobinette/bookstore/log"
	"github.com/bobinette/bookstore/reviews"
)

var (
	// flags
	verbose bool
	env     string

	// logger
	logger log.Logger

	// auth
	signingKey   []byte
	tokenEncoder *auth.EncodeDecoder

	// drivers
	boltDriver *bolt.Driver

	// repositories
	bookRepository   bookstore.BookRepository
	userRepository   bookstore.UserRepository
	reviewRepository bookstore.ReviewRepository

	// services
	bookService   *books.Service
	reviewService *reviews.Service
)

type Configuration struct {
	Auth struct {
		Key string `toml:"key"`
	} `toml:"auth"`
	Bolt struct {
		Store string `toml:"store"`
	} `toml:"bolt"`
	HTTP struct {
		Addr string `toml:"addr"`
	} `toml:"http"`
	Datasets struct {
		Books string `toml:"books"`
		Users string `toml:"users"`
	} `toml:"datasets"`
}

var config Configuration

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose mode")
	RootCmd.PersistentFlags().StringVar(&env, "env", "dev", "")
}

var RootCmd = cobra.Command{
	Use:   "bookstore",
	Short: "Book catalog and review service",
	Long:  "",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load configuration
		cfgData, err := os.ReadFile(fmt.Sprintf("configuration/config.%s.toml", env))
		if err != nil {
			fmt.Println("error reading configuration:", err)
			os.Exit(1)
		}

		err = toml.Unmarshal(cfgData, &config)
		if err != nil {
			fmt.Println("error unmarshalling configuration:", err)
			os.Exit(1)
		}

		// Create logger
		logger = log.New(env, verbose)

		// Create encoder
		keyData, err := os.ReadFile(config.Auth.Key)
		if err != nil {
			logger.Fatal("could not open key file:", err)
		}
		var key bookstore.SigningKey
		err = json.Unmarshal(keyData, &key)
		if err != nil {
			logger.Fatal("could not read key file:", err)
		}
		signingKey = []byte(key.Key)
		tokenEncoder = auth.NewEncodeDecoder(signingKey)

		// Create repositories
		boltDriver = &bolt.Driver{}
		if err := boltDriver.Open(config.Bolt.Store); err != nil {
			logger.Fatal("could not open bolt:", err)
		}
		bookRepository = &bolt.BookRepository{Driver: boltDriver}
		userRepository = &bolt.UserRepository{Driver: boltDriver}
		reviewRepository = &bolt.ReviewRepository{Driver: boltDriver}

		// Create services
		bookService = books.NewService(bookRepository)
		reviewService = reviews.NewService(reviewRepository, userRepository)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		boltDriver.Close()
	},
}
