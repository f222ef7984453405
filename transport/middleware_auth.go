package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/humidor-club/application/user"
	"github.com/muhammadheryan/humidor-club/constant"
	utilsContext "github.com/muhammadheryan/humidor-club/utils/context"
	"github.com/muhammadheryan/humidor-club/utils/errors"
)

// AuthMiddleware returns a middleware that validates JWT sessions using UserApp.
// Public endpoints (sign-in, browsing, ops) pass through without a token.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r.Method, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			userID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			next.ServeHTTP(w, r.WithContext(utilsContext.WithUserID(r.Context(), userID)))
		})
	}
}

// isPublic lists the endpoints that need no session. /internal/ has its own
// API key check.
func isPublic(method, path string) bool {
	switch {
	case strings.HasPrefix(path, "/swagger/"), strings.HasPrefix(path, "/internal/"):
		return true
	case path == "/metrics", path == "/health":
		return true
	case method == http.MethodPost && strings.HasPrefix(path, "/auth/"):
		return true
	}

	if method != http.MethodGet {
		return false
	}
	// browsing the marketplace and catalog is anonymous
	return path == "/listings" || strings.HasPrefix(path, "/listings/") ||
		path == "/cigars" || strings.HasPrefix(path, "/cigars/")
}
