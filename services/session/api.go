package session

import (
	"context"
	"net/http"
)

const (
	// CookieName carries the browser-session UID that keys the token vault.
	CookieName = "shopfront_session"
)

// Session is the identity attached to one browser session.
type Session struct {
	UID         string
	DisplayName string
	AccessToken string
}

func (s Session) IsAuthenticated() bool {
	return s.AccessToken != ""
}

// Sessions is the explicit session-context that consuming services get
// injected instead of reaching for ambient global state.
//
//go:generate mockgen -source=api.go -package session -destination sessions_mock.go Sessions
type Sessions interface {
	FromRequest(c context.Context, r *http.Request) (Session, bool, error)
}
