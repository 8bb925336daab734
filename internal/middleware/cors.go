// Package middleware provides the HTTP middleware chain of the outlet board API.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// preflightMaxAge is how long, in seconds, browsers may cache a preflight.
const preflightMaxAge = 600

// NewCORSHandler returns a middleware that lets the board UI at
// allowedOrigins call the API. Origins are full scheme+host values with no
// trailing slash. Content-Disposition is exposed so the UI can name the
// export download; X-Request-Id so it can quote a request in bug reports.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Content-Disposition", "X-Request-Id"},
		MaxAge:         preflightMaxAge,
	})
	return c.Handler
}
