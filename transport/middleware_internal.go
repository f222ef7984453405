package transport

import (
	"net/http"

	"github.com/muhammadheryan/humidor-club/constant"
	"github.com/muhammadheryan/humidor-club/utils/errors"
)

// InternalMiddleware checks for the static API key in the Authorization
// header. An empty key locks the routes.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" || r.Header.Get("Authorization") != "Bearer "+apiKey {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
