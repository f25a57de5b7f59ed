package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bobinette/bookstore/log"
)

// Server wraps a gin engine behind the RegisterHandler interface the
// service packages expect.
type Server struct {
	router *gin.Engine
	logger log.Logger
}

func NewServer(logger log.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, PUT, POST, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
		}
		c.Next()
	})

	return &Server{
		router: router,
		logger: logger,
	}
}

// RegisterHandler mounts f on the router. The URL parameters are made
// available to the handler in the request context under "params".
func (s *Server) RegisterHandler(path, method string, f http.Handler) {
	s.router.Handle(method, path, func(c *gin.Context) {
		params := make(map[string]string, len(c.Params))
		for _, p := range c.Params {
			params[p.Key] = p.Value
		}

		ctx := context.WithValue(c.Request.Context(), "params", params)
		f.ServeHTTP(c.Writer, c.Request.WithContext(ctx))
	})
}

// Handler exposes the underlying router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(addr string) error {
	s.logger.Print("server started, listening on ", addr)
	return http.ListenAndServe(addr, s.router)
}
