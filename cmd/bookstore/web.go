package main

import (
	"github.com/spf13/cobra"

	"github.com/bobinette/bookstore/books"
	"github.com/bobinette/bookstore/reviews"
	"github.com/bobinette/bookstore/web"
)

func init() {
	RootCmd.AddCommand(&WebCommand)
}

var WebCommand = cobra.Command{
	Use:   "web",
	Short: "Start the web server",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		srv := web.NewServer(logger)

		books.RegisterHTTPRoutes(srv, bookService)
		reviews.RegisterHTTPRoutes(srv, reviewService, signingKey)

		addr := config.HTTP.Addr
		if addr == "" {
			addr = ":8080"
		}

		if err := srv.Start(addr); err != nil {
			logger.Fatal("server stopped:", err)
		}
	},
}
