package middleware

import (
	"context"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const maxRequestIDLength = 128

// validRequestID accepts 1..128 bytes of printable ASCII so client IDs are safe to log.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := range len(id) {
		if c := id[i]; c < 0x20 || c > 0x7E {
			return false
		}
	}
	return true
}

// RequestID reuses a valid incoming X-Request-Id or generates a UUIDv4, stores it
// under chi's request ID key and echoes it on the response.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(chimiddleware.RequestIDHeader)
			if !validRequestID(reqID) {
				reqID = uuid.NewString()
			}
			w.Header().Set(chimiddleware.RequestIDHeader, reqID)
			ctx := context.WithValue(r.Context(), chimiddleware.RequestIDKey, reqID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
