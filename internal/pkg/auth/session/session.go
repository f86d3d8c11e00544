/*
Package session binds an authenticated user id to the client through a signed cookie.

Two backends implement Manager: a gorilla/sessions cookie store (signed and encrypted)
and an HS256 JWT stored in an HttpOnly cookie. A request whose cookie is missing,
expired or tampered with resolves to anonymous.
*/
package session

import (
	"fmt"
	"net/http"
	"time"
)

// CookieName is the name of the cookie that carries the session.
const CookieName = "authsite_session"

const (
	BackendCookie = "cookie"
	BackendJWT    = "jwt"
)

// Manager establishes, destroys and resolves sessions.
type Manager interface {
	// Establish binds userID to the client, replacing any previous session.
	Establish(w http.ResponseWriter, r *http.Request, userID int64) error

	// Destroy ends the current session. Destroying an anonymous session is not an error.
	Destroy(w http.ResponseWriter, r *http.Request) error

	// Resolve returns the user id of the request's session, or false when anonymous.
	Resolve(r *http.Request) (int64, bool)
}

// Options configures either backend.
type Options struct {
	// Secret signs (and for the cookie backend, encrypts) the session.
	Secret string

	// MaxAge bounds how long a session stays valid after Establish.
	MaxAge time.Duration

	// Secure marks the cookie as HTTPS-only.
	Secure bool
}

// New returns the Manager for the named backend.
func New(backend string, opts Options) (Manager, error) {
	if opts.Secret == "" {
		return nil, fmt.Errorf("session secret must not be empty")
	}
	if opts.MaxAge <= 0 {
		return nil, fmt.Errorf("session max age must be positive, got %s", opts.MaxAge)
	}

	switch backend {
	case BackendCookie:
		return NewCookieManager(opts), nil
	case BackendJWT:
		return NewJWTManager(opts), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", backend)
	}
}

func baseCookie(opts Options) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Path:     "/",
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
