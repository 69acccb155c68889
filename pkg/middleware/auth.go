package middleware

import (
	"net/http"
	"strings"

	"github.com/ahmadsvu/stationery-hub-frontend/internal/adminsession"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/response"
)

// SessionCookie is the name of the admin session cookie set at login.
const SessionCookie = "admin_session"

// AdminGuard rejects requests without a valid admin session token. The
// token is read from the session cookie, falling back to an Authorization
// bearer header for CLI and script callers.
func AdminGuard(sessions *adminsession.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ""
			if cookie, err := r.Cookie(SessionCookie); err == nil {
				token = cookie.Value
			}
			if token == "" {
				token = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			}

			if token == "" {
				response.Unauthorized(w)
				return
			}
			if _, err := sessions.Verify(token); err != nil {
				response.Error(w, http.StatusUnauthorized, "Invalid session")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
