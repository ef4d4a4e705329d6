package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows any origin. The API is a public read proxy consumed by browser
// dashboards on other hosts.
func CORS() func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler
}
