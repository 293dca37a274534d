package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/airjam-co/booking-resolver/internal/api/handlers"
)

const apiKeyHeader = "X-API-Key"

// APIKey guards mutating routes with a shared key. Requests with a missing
// or mismatching key are rejected.
func APIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(apiKeyHeader)
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
				handlers.RespondUnauthorized(w, "missing or invalid API key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
