package ui

import (
	"net/http"

	"github.com/google/uuid"
)

// requestIDHeader carries the identifier assigned to each request.
const requestIDHeader = "X-Request-Id"

// requestID mints a fresh identifier per request unless the client already
// sent one, and echoes it in the response.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}
