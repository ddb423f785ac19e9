package auth

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	adminSessionName = "portal_admin"
	adminKey         = "admin"
)

// Sessions stores the admin flag in a signed cookie.
type Sessions struct {
	store sessions.Store
}

// NewSessions builds cookie sessions signed with secret.
func NewSessions(secret []byte) *Sessions {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   8 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Sessions{store: store}
}

// Store exposes the underlying store so other cookies share the secret.
func (s *Sessions) Store() sessions.Store {
	return s.store
}

// Login marks the request's session as belonging to username.
func (s *Sessions) Login(w http.ResponseWriter, r *http.Request, username string) error {
	sess, _ := s.store.Get(r, adminSessionName)
	sess.Values[adminKey] = username
	return sess.Save(r, w)
}

// Logout drops the admin session cookie.
func (s *Sessions) Logout(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.store.Get(r, adminSessionName)
	delete(sess.Values, adminKey)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// Admin returns the logged-in admin name, if any.
func (s *Sessions) Admin(r *http.Request) (string, bool) {
	sess, err := s.store.Get(r, adminSessionName)
	if err != nil {
		return "", false
	}
	name, ok := sess.Values[adminKey].(string)
	return name, ok
}
