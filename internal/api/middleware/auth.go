package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/recallgate/graphmem/internal/api"
)

type contextKey string

// APIKeyHeader is the header clients present the shared gateway key in.
const APIKeyHeader = "X-API-KEY"

// APIKeyAuth rejects requests whose X-API-KEY header does not match the
// configured gateway key. The comparison is constant-time so the key cannot
// be probed byte by byte.
func APIKeyAuth(apiKey string) func(http.Handler) http.Handler {
	secret := []byte(apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get(APIKeyHeader)
			if presented == "" {
				api.Error(w, http.StatusUnauthorized, "missing api key")
				return
			}

			if subtle.ConstantTimeCompare([]byte(presented), secret) != 1 {
				api.Error(w, http.StatusUnauthorized, "invalid api key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
