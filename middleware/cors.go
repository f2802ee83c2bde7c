package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows any origin, method and header, which is what the browser
// frontend expects.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
