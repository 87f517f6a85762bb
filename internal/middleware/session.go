package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName   = "session"
	sessionUserID = "user_id"
)

// NewSessionStore builds the cookie store backing login state.
func NewSessionStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// SignIn binds the session cookie to the given user id.
func SignIn(store *sessions.CookieStore, w http.ResponseWriter, r *http.Request, userID int64) error {
	session, _ := store.Get(r, sessionName)
	session.Values[sessionUserID] = userID
	return session.Save(r, w)
}

// SignOut clears the session cookie.
func SignOut(store *sessions.CookieStore, w http.ResponseWriter, r *http.Request) error {
	session, _ := store.Get(r, sessionName)
	delete(session.Values, sessionUserID)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// SessionUserID returns the logged-in user id, if any.
func SessionUserID(store *sessions.CookieStore, r *http.Request) (int64, bool) {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return 0, false
	}
	id, ok := session.Values[sessionUserID].(int64)
	return id, ok
}

// RequireSession guards a route group behind an active login session.
func RequireSession(store *sessions.CookieStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := SessionUserID(store, r); !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": "Authentication required"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
