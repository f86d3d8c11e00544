package session

import (
	"fmt"
	"net/http"
	"time"

	"authsite/internal/pkg/auth/jwt"
	"authsite/internal/pkg/logx"
)

// JWTManager stores a signed JWT carrying the user id in the session cookie.
// Tokens are stateless: Destroy clears the cookie but a copied token stays valid until it expires.
type JWTManager struct {
	opts Options
}

func NewJWTManager(opts Options) *JWTManager {
	return &JWTManager{opts: opts}
}

func (m *JWTManager) Establish(w http.ResponseWriter, _ *http.Request, userID int64) error {
	token, err := jwt.GenerateToken(&jwt.Payload{UserID: userID}, m.opts.Secret, m.opts.MaxAge)
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}

	cookie := baseCookie(m.opts)
	cookie.Value = token
	cookie.MaxAge = int(m.opts.MaxAge.Seconds())
	cookie.Expires = time.Now().Add(m.opts.MaxAge)
	http.SetCookie(w, cookie)
	return nil
}

func (m *JWTManager) Destroy(w http.ResponseWriter, _ *http.Request) error {
	cookie := baseCookie(m.opts)
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(1, 0)
	http.SetCookie(w, cookie)
	return nil
}

func (m *JWTManager) Resolve(r *http.Request) (int64, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return 0, false
	}

	payload, err := jwt.ParseToken(cookie.Value, m.opts.Secret)
	if err != nil {
		logx.Ctx(r.Context()).Warn().Err(err).Msg("Invalid or expired session token, treating as anonymous")
		return 0, false
	}

	if payload.UserID <= 0 {
		return 0, false
	}
	return payload.UserID, true
}
