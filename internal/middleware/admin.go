package middleware

import "net/http"

type adminSessions interface {
	Admin(r *http.Request) (string, bool)
}

// AdminOnly serves requests without an admin session with reject. A nil
// reject answers 403 with a JSON error.
func AdminOnly(sessions adminSessions, reject http.Handler) Middleware {
	if reject == nil {
		reject = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusForbidden, "admin login required")
		})
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := sessions.Admin(r); !ok {
				reject.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
