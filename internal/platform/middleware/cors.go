package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns a middleware that lets browser clients on any origin read responses.
// Preflight requests are answered here and never reach the router; any
// requested header is reflected back as allowed.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	})
}
