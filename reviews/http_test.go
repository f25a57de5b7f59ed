package reviews_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/bookstore"
	"github.com/bobinette/bookstore/auth"
	"github.com/bobinette/bookstore/books"
	"github.com/bobinette/bookstore/inmem"
	"github.com/bobinette/bookstore/log"
	"github.com/bobinette/bookstore/reviews"
	"github.com/bobinette/bookstore/web"
)

var jwtKey = []byte("test key")

func createServer(t *testing.T) http.Handler {
	bookRepo := inmem.NewInMemBookRepository()
	userRepo := inmem.NewInMemUserRepository()
	reviewRepo := inmem.NewInMemReviewRepository()

	if err := bookRepo.Upsert(&bookstore.Book{ISBN: "123", Title: "The Go Programming Language", Author: "Alan Donovan"}); err != nil {
		t.Fatal("could not insert book:", err)
	}
	for _, user := range []bookstore.User{{ID: 7, Username: "alice"}, {ID: 9, Username: "bob"}} {
		u := user
		if err := userRepo.Upsert(&u); err != nil {
			t.Fatal("could not insert user:", err)
		}
	}

	srv := web.NewServer(log.New("test", false))
	books.RegisterHTTPRoutes(srv, books.NewService(bookRepo))
	reviews.RegisterHTTPRoutes(srv, reviews.NewService(reviewRepo, userRepo), jwtKey)

	return srv.Handler()
}

func token(t *testing.T, userID int, username string) string {
	bearer, err := auth.NewEncodeDecoder(jwtKey).Encode(userID, username)
	if err != nil {
		t.Fatal("could not encode token:", err)
	}
	return "Bearer " + bearer
}

func do(t *testing.T, handler http.Handler, method, path, bearer string, body interface{}) (int, map[string]interface{}) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal("could not marshal body:", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	payload := make(map[string]interface{})
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("could not decode response as JSON: %v (%s)", err, resp.Body.String())
	}

	return resp.Code, payload
}

func TestReviewLifecycle(t *testing.T) {
	handler := createServer(t)

	// The catalog is up
	code, payload := do(t, handler, "GET", "/books/isbn/123", "", nil)
	require.Equal(t, 200, code)
	assert.Equal(t, true, payload["success"])

	// alice posts a review
	code, payload = do(t, handler, "POST", "/books/1/reviews", token(t, 7, "alice"), map[string]interface{}{
		"rating":  4,
		"comment": "Good",
	})
	require.Equal(t, 201, code, "creation should answer 201: %v", payload)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "Review added successfully", payload["message"])
	assert.Equal(t, map[string]interface{}{
		"id":       float64(1),
		"bookId":   float64(1),
		"reviewer": "alice",
		"rating":   float64(4),
		"comment":  "Good",
	}, payload["data"])

	// The review shows on the book, with the same fields
	code, payload = do(t, handler, "GET", "/books/1/reviews", "", nil)
	require.Equal(t, 200, code)
	data := payload["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, map[string]interface{}{
		"id":       float64(1),
		"bookId":   float64(1),
		"reviewer": "alice",
		"rating":   float64(4),
		"comment":  "Good",
	}, data[0])

	// bob cannot touch it
	code, payload = do(t, handler, "PUT", "/reviews/1", token(t, 9, "bob"), map[string]interface{}{
		"comment": "Trash",
	})
	require.Equal(t, 403, code)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "Unauthorized: Can only modify your own reviews", payload["error"])

	// alice can
	code, payload = do(t, handler, "PUT", "/reviews/1", token(t, 7, "alice"), map[string]interface{}{
		"rating": 5,
	})
	require.Equal(t, 200, code)
	assert.Equal(t, "Review updated successfully", payload["message"])
	assert.Equal(t, "Good", payload["data"].(map[string]interface{})["comment"], "the comment should be unchanged")

	// bob cannot delete it either
	code, payload = do(t, handler, "DELETE", "/reviews/1", token(t, 9, "bob"), nil)
	require.Equal(t, 403, code)
	assert.Equal(t, "Unauthorized: Can only delete your own reviews", payload["error"])

	// alice deletes it
	code, payload = do(t, handler, "DELETE", "/reviews/1", token(t, 7, "alice"), nil)
	require.Equal(t, 200, code)
	assert.Equal(t, "Review deleted successfully", payload["message"])

	// Gone: empty list, and a second delete is a 404
	code, payload = do(t, handler, "GET", "/books/1/reviews", "", nil)
	require.Equal(t, 200, code)
	assert.Empty(t, payload["data"])

	code, payload = do(t, handler, "DELETE", "/reviews/1", token(t, 7, "alice"), nil)
	require.Equal(t, 404, code)
	assert.Equal(t, "Review not found", payload["error"])
}

func TestReviewAuth(t *testing.T) {
	handler := createServer(t)

	// No Authorization header: 401
	code, payload := do(t, handler, "POST", "/books/1/reviews", "", map[string]interface{}{
		"rating":  4,
		"comment": "Good",
	})
	require.Equal(t, 401, code)
	assert.Equal(t, "Access denied", payload["error"])

	// Unverifiable token: 400
	code, payload = do(t, handler, "POST", "/books/1/reviews", "Bearer not.a.token", map[string]interface{}{
		"rating":  4,
		"comment": "Good",
	})
	require.Equal(t, 400, code)
	assert.Equal(t, "Invalid token", payload["error"])

	// Reading reviews needs no token
	code, _ = do(t, handler, "GET", "/books/1/reviews", "", nil)
	require.Equal(t, 200, code)
}

func TestReviewValidation(t *testing.T) {
	handler := createServer(t)
	bearer := token(t, 7, "alice")

	tts := []struct {
		name string
		body map[string]interface{}
		msg  string
	}{
		{
			name: "missing comment",
			body: map[string]interface{}{"rating": 4},
			msg:  "Comment and rating are required",
		},
		{
			name: "missing rating",
			body: map[string]interface{}{"comment": "Good"},
			msg:  "Comment and rating are required",
		},
		{
			name: "rating out of range",
			body: map[string]interface{}{"rating": 6, "comment": "Good"},
			msg:  "Rating must be between 1 and 5",
		},
	}

	for _, tt := range tts {
		code, payload := do(t, handler, "POST", "/books/1/reviews", bearer, tt.body)
		require.Equal(t, 400, code, "%s - incorrect code", tt.name)
		assert.Equal(t, tt.msg, payload["error"], "%s - incorrect error", tt.name)
	}

	// Non-integer book id
	code, payload := do(t, handler, "POST", "/books/abc/reviews", bearer, map[string]interface{}{
		"rating":  4,
		"comment": "Good",
	})
	require.Equal(t, 400, code)
	assert.Equal(t, "Invalid book ID", payload["error"])

	// Non-integer review id
	code, payload = do(t, handler, "PUT", "/reviews/abc", bearer, map[string]interface{}{
		"rating": 4,
	})
	require.Equal(t, 400, code)
	assert.Equal(t, "Invalid review ID", payload["error"])
}
